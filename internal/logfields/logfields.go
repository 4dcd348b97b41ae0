// Package logfields holds the structured log keys shared across packages.
package logfields

const (
	Endpoint  = "endpoint"
	PageID    = "page_id"
	Status    = "status"
	Kind      = "kind"
	Duration  = "duration"
	Campaigns = "campaigns"
	Bytes     = "bytes"
	Source    = "source"
	Channel   = "channel"
	Addr      = "addr"
	RetryIn   = "retry_in"
)
