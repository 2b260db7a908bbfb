package reduce

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"time"

	"github.com/orizon-lang/orizon-reduce/internal/runtime/netstack"
)

// Summary is the JSON body pushed to an external status collector
// (cmd/orizon-reduce pushes one at the end of a session), standing in for the out-of-scope "status reporting"
// collaborator spec.md §1 names but leaves unspecified.
type Summary struct {
	TotalMinBitmapSize uint64 `json:"total_min_bitmap_size"`
	GlobalMinHitCount  uint64 `json:"global_min_hit_count,omitempty"`
	QueuedPaths        uint64 `json:"queued_paths"`
	QueuedWithCov      uint64 `json:"queued_with_cov"`
	UniqueCrashes      uint64 `json:"unique_crashes"`
	UniqueTmouts       uint64 `json:"unique_tmouts"`
}

// SummaryOf snapshots rs into a Summary for a telemetry push.
func SummaryOf(rs *ReductionState) Summary {
	global := rs.GlobalMinHitCount()

	return Summary{
		TotalMinBitmapSize: rs.TotalMinBitmapSize(),
		GlobalMinHitCount:  global.Value(),
		QueuedPaths:        rs.QueuedPaths,
		QueuedWithCov:      rs.QueuedWithCov,
		UniqueCrashes:      rs.UniqueCrashes,
		UniqueTmouts:       rs.UniqueTmouts,
	}
}

// TelemetryClient is a best-effort HTTP/3 push client for Summary reports.
// A push failure is polite-class (spec §7): log and continue, a dropped
// status update never affects admission decisions.
type TelemetryClient struct {
	endpoint string
	client   *http.Client
}

// NewTelemetryClient builds a client targeting endpoint (a full URL,
// typically https://collector.example/reduce-status) over HTTP/3.
func NewTelemetryClient(endpoint string, timeout time.Duration, tlsCfg *tls.Config) *TelemetryClient {
	return &TelemetryClient{
		endpoint: endpoint,
		client:   netstack.HTTP3Client(tlsCfg, timeout),
	}
}

// Push POSTs s as JSON to the configured endpoint. Errors are returned, not
// swallowed, so the caller can decide whether to log or ignore them per
// its own verbosity setting — Push itself never panics or blocks the
// admission path on a slow collector beyond the client's timeout.
func (c *TelemetryClient) Push(s Summary) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	return nil
}

// Close releases the underlying HTTP/3 transport.
func (c *TelemetryClient) Close() {
	netstack.ShutdownHTTP3(c.client)
}
