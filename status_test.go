package sponsorblock

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestFetchStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status" {
			t.Errorf("path = %s, want /status", r.URL.Path)
		}
		w.Write([]byte(`{"uptime":3600.5,"commit":"2d74e101",
			"db":42,"startTime":1700000000000,"processTime":12.5,
			"loadavg":[0.5,0.25]}`))
	})

	status, err := client.FetchStatus(context.Background())
	if err != nil {
		t.Fatalf("FetchStatus error: %v", err)
	}

	if want := time.Duration(3600.5 * float64(time.Second)); status.Uptime != want {
		t.Errorf("Uptime = %v, want %v", status.Uptime, want)
	}
	if status.Commit != "2d74e101" {
		t.Errorf("Commit = %q, want 2d74e101", status.Commit)
	}
	if status.DBVersion != 42 {
		t.Errorf("DBVersion = %d, want 42", status.DBVersion)
	}
	if got := status.RequestStartTime.UnixMilli(); got != 1700000000000 {
		t.Errorf("RequestStartTime = %d ms, want 1700000000000", got)
	}
	if want := time.Duration(12.5 * float64(time.Millisecond)); status.RequestTimeTaken != want {
		t.Errorf("RequestTimeTaken = %v, want %v", status.RequestTimeTaken, want)
	}
	if status.LoadAverage != [2]float64{0.5, 0.25} {
		t.Errorf("LoadAverage = %v, want [0.5 0.25]", status.LoadAverage)
	}
}
