package domain

import "time"

// SnapshotStatus describes the lifecycle of the current data snapshot.
type SnapshotStatus string

const (
	// StatusLoading means no refresh cycle has completed yet.
	StatusLoading SnapshotStatus = "loading"
	// StatusReady means the last refresh cycle succeeded.
	StatusReady SnapshotStatus = "ready"
	// StatusStaleError means the last refresh cycle failed. If a prior
	// snapshot exists it stays visible; otherwise there is no data at all.
	StatusStaleError SnapshotStatus = "stale_error"
)

// StatusInfo is the loading/error/last-updated tuple exposed alongside every
// snapshot accessor.
type StatusInfo struct {
	Status      SnapshotStatus `json:"status"`
	HasData     bool           `json:"has_data"`
	LastError   string         `json:"last_error,omitempty"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
}
