package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"promo-pages/internal/campaign"
	"promo-pages/internal/logfields"
	"promo-pages/internal/render"
	"promo-pages/internal/storage"
	"promo-pages/internal/wordpress"
)

// Publisher is the part of wordpress.Publisher the handlers use.
type Publisher interface {
	Publish(ctx context.Context, campaigns []campaign.Campaign, settings campaign.SiteSettings, target campaign.WPTarget) wordpress.Result
}

type Handler struct {
	Cache     *storage.Cache
	Source    storage.Source
	Renderer  *render.Renderer
	Publisher Publisher

	// DefaultTarget fills target fields a publish request leaves empty.
	DefaultTarget campaign.WPTarget
	MaxBodyBytes  int64
}

func decodeJSONStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeDecodeError maps a body over the size limit to 413, anything else to 400.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeProblem(w, http.StatusRequestEntityTooLarge, "request too large",
			fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit), nil)
		return
	}
	writeProblem(w, http.StatusBadRequest, "invalid json", err.Error(), nil)
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.Source.Ping(r.Context()); err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "not ready", "campaign source not reachable", nil)
		return
	}
	if _, ok := h.Cache.Get(); !ok {
		writeProblem(w, http.StatusServiceUnavailable, "not ready", "catalog not loaded yet", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handler) catalog(w http.ResponseWriter) (storage.Catalog, bool) {
	cat, ok := h.Cache.Get()
	if !ok {
		writeProblem(w, http.StatusServiceUnavailable, "catalog unavailable", "catalog not loaded yet", nil)
	}
	return cat, ok
}

func (h *Handler) Catalog(w http.ResponseWriter, _ *http.Request) {
	cat, ok := h.catalog(w)
	if !ok {
		return
	}
	if cat.Campaigns == nil {
		cat.Campaigns = []campaign.Campaign{}
	}
	writeJSON(w, http.StatusOK, cat)
}

func (h *Handler) Preview(w http.ResponseWriter, _ *http.Request) {
	cat, ok := h.catalog(w)
	if !ok {
		return
	}
	writeHTML(w, h.Renderer.Render(cat.Campaigns, cat.Settings))
}

type renderRequest struct {
	Campaigns []campaign.Campaign   `json:"campaigns"`
	Settings  campaign.SiteSettings `json:"settings"`
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := campaign.CheckUnique(req.Campaigns); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid campaigns", err.Error(), nil)
		return
	}
	writeHTML(w, h.Renderer.Render(req.Campaigns, req.Settings))
}

type publishRequest struct {
	// nil campaigns/settings publish the current catalog
	Campaigns *[]campaign.Campaign   `json:"campaigns"`
	Settings  *campaign.SiteSettings `json:"settings"`
	Target    campaign.WPTarget      `json:"target"`
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	var (
		campaigns []campaign.Campaign
		settings  campaign.SiteSettings
	)
	if req.Campaigns == nil || req.Settings == nil {
		cat, ok := h.catalog(w)
		if !ok {
			return
		}
		campaigns, settings = cat.Campaigns, cat.Settings
	}
	if req.Campaigns != nil {
		campaigns = *req.Campaigns
		if err := campaign.CheckUnique(campaigns); err != nil {
			writeProblem(w, http.StatusBadRequest, "invalid campaigns", err.Error(), nil)
			return
		}
	}
	if req.Settings != nil {
		settings = *req.Settings
	}

	res := h.Publisher.Publish(r.Context(), campaigns, settings, req.Target.Merge(h.DefaultTarget))
	log.Info().Bool("success", res.Success).Str(logfields.Kind, string(res.Kind)).Msg("publish request")
	writeJSON(w, statusFor(res), res)
}

func statusFor(res wordpress.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Kind {
	case wordpress.KindConfiguration:
		return http.StatusBadRequest
	case wordpress.KindRemoteRejection, wordpress.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
