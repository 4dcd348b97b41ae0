// Package wordpress pushes rendered campaign pages to a WordPress site over
// its REST API.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"promo-pages/internal/campaign"
	"promo-pages/internal/logfields"
	"promo-pages/internal/observability"
	"promo-pages/internal/render"
)

const (
	SuccessMessage = "Page updated successfully."

	pagesPath        = "/wp-json/wp/v2/pages/"
	maxErrorBodySize = 1 << 20
)

// Result is what callers display. Message is never empty on failure.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Kind    FailureKind `json:"kind,omitempty"`
}

// Publisher replaces the content of one WordPress page per call. It holds no
// per-call state and is safe for concurrent use.
type Publisher struct {
	client   *http.Client
	renderer *render.Renderer
	recorder observability.Recorder
	logger   zerolog.Logger
}

type Option func(*Publisher)

func WithHTTPClient(c *http.Client) Option { return func(p *Publisher) { p.client = c } }

func WithRenderer(r *render.Renderer) Option { return func(p *Publisher) { p.renderer = r } }

func WithRecorder(r observability.Recorder) Option { return func(p *Publisher) { p.recorder = r } }

func WithLogger(l zerolog.Logger) Option { return func(p *Publisher) { p.logger = l } }

func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{
		client:   &http.Client{},
		renderer: render.New(),
		recorder: observability.NoopRecorder{},
		logger:   log.Logger,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Validate reports every empty target field.
func Validate(t campaign.WPTarget) error {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"siteUrl", t.SiteURL},
		{"pageId", t.PageID},
		{"username", t.Username},
		{"appPassword", t.AppPassword},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}

// Endpoint returns the REST address of the page. One trailing slash is
// stripped from siteURL and pageID is path-escaped.
func Endpoint(siteURL, pageID string) string {
	return strings.TrimSuffix(siteURL, "/") + pagesPath + url.PathEscape(pageID)
}

type pageUpdate struct {
	Content string `json:"content"`
}

// EncodeBody returns the request body that replaces a page's content with doc.
func EncodeBody(doc string) ([]byte, error) {
	body, err := json.Marshal(pageUpdate{Content: doc})
	if err != nil {
		return nil, fmt.Errorf("encode page body: %w", err)
	}
	return body, nil
}

// Publish renders campaigns and overwrites the target page with the result.
// It blocks until the exchange completes and never returns an error: every
// failure is folded into the Result.
func (p *Publisher) Publish(ctx context.Context, campaigns []campaign.Campaign, settings campaign.SiteSettings, target campaign.WPTarget) (res Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Message: fmt.Sprintf("publish failed: %v", r), Kind: KindInternal}
		}
		outcome := "success"
		if !res.Success {
			outcome = string(res.Kind)
		}
		p.recorder.ObservePublish(outcome, time.Since(start))
	}()

	err := p.publish(ctx, campaigns, settings, target)
	ev := p.logger.Info()
	if err != nil {
		ev = p.logger.Warn().Err(err).Str(logfields.Kind, string(Classify(err)))
	}
	ev.Str(logfields.PageID, target.PageID).
		Int(logfields.Campaigns, len(campaigns)).
		Dur(logfields.Duration, time.Since(start)).
		Msg("wordpress publish")

	return resultFor(err)
}

func resultFor(err error) Result {
	if err == nil {
		return Result{Success: true, Message: SuccessMessage}
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = connectionErrorMessage
	}
	return Result{Message: msg, Kind: Classify(err)}
}

func (p *Publisher) publish(ctx context.Context, campaigns []campaign.Campaign, settings campaign.SiteSettings, target campaign.WPTarget) error {
	if err := Validate(target); err != nil {
		return err
	}

	renderStart := time.Now()
	doc := p.renderer.Render(campaigns, settings)
	p.recorder.ObserveRender(time.Since(renderStart), len(campaigns))

	body, err := EncodeBody(doc)
	if err != nil {
		return err
	}

	endpoint := Endpoint(target.SiteURL, target.PageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &ConfigurationError{Err: fmt.Errorf("siteUrl: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(target.Username, target.AppPassword)

	p.logger.Debug().Str(logfields.Endpoint, endpoint).Int(logfields.Bytes, len(body)).Msg("posting page content")

	resp, err := p.client.Do(req)
	if err != nil {
		return &TransportFailure{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return rejection(resp)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func rejection(resp *http.Response) *RemoteRejection {
	rej := &RemoteRejection{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err == nil {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			rej.Code = eb.Code
			rej.Message = strings.TrimSpace(eb.Message)
		}
	}
	if rej.Message == "" {
		rej.Message = strings.TrimSpace(fmt.Sprintf("Error: %d %s", resp.StatusCode, statusText(resp)))
	}
	return rej
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	if s := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
