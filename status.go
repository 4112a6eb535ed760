package sponsorblock

import (
	"context"
	"time"
)

// APIStatus is a read-only snapshot of server health from the status
// endpoint.
type APIStatus struct {
	// Uptime is how long the server process has been running.
	Uptime time.Duration
	// Commit is the hash of the commit the server is running.
	Commit string
	// DBVersion is the database schema version.
	DBVersion int64
	// RequestStartTime is when the server received the status request.
	RequestStartTime time.Time
	// RequestTimeTaken is how long the server took to produce the reply.
	RequestTimeTaken time.Duration
	// LoadAverage holds the server's 5- and 15-minute load averages.
	LoadAverage [2]float64
}

type rawStatus struct {
	Uptime      float64   `json:"uptime"`
	Commit      string    `json:"commit"`
	DB          int64     `json:"db"`
	StartTime   int64     `json:"startTime"`
	ProcessTime float64   `json:"processTime"`
	LoadAvg     []float64 `json:"loadavg"`
}

// FetchStatus fetches the API server's status snapshot.
func (c *Client) FetchStatus(ctx context.Context) (*APIStatus, error) {
	var raw rawStatus
	if err := c.getJSON(ctx, "status", "/status", nil, &raw); err != nil {
		return nil, err
	}

	status := &APIStatus{
		Uptime:           time.Duration(raw.Uptime * float64(time.Second)),
		Commit:           raw.Commit,
		DBVersion:        raw.DB,
		RequestStartTime: time.UnixMilli(raw.StartTime).UTC(),
		RequestTimeTaken: time.Duration(raw.ProcessTime * float64(time.Millisecond)),
	}
	copy(status.LoadAverage[:], raw.LoadAvg)
	return status, nil
}
