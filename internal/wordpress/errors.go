package wordpress

import (
	"errors"
	"strings"
)

// FailureKind classifies why a publish did not succeed.
type FailureKind string

const (
	KindConfiguration   FailureKind = "configuration"    // target incomplete or unusable, no request made
	KindRemoteRejection FailureKind = "remote_rejection" // WordPress answered with a non-2xx status
	KindTransport       FailureKind = "transport"        // no response received
	KindInternal        FailureKind = "internal"
)

const connectionErrorMessage = "WordPress connection error."

// ConfigurationError is returned before any network I/O.
type ConfigurationError struct {
	Missing []string // wire names of the empty fields
	Err     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing WordPress settings: " + strings.Join(e.Missing, ", ")
	}
	return "invalid WordPress settings: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// RemoteRejection carries the message WordPress returned, or one built from
// the status line.
type RemoteRejection struct {
	StatusCode int
	Code       string // WordPress error code such as rest_forbidden, when present
	Message    string
}

func (e *RemoteRejection) Error() string { return e.Message }

// TransportFailure wraps an error from the HTTP round trip.
type TransportFailure struct {
	Err error
}

func (e *TransportFailure) Error() string {
	if e.Err == nil || strings.TrimSpace(e.Err.Error()) == "" {
		return connectionErrorMessage
	}
	return e.Err.Error()
}

func (e *TransportFailure) Unwrap() error { return e.Err }

// Classify maps err onto a FailureKind. A nil error has no kind.
func Classify(err error) FailureKind {
	var (
		cfgErr   *ConfigurationError
		rejected *RemoteRejection
		tErr     *TransportFailure
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &rejected):
		return KindRemoteRejection
	case errors.As(err, &tErr):
		return KindTransport
	default:
		return KindInternal
	}
}
