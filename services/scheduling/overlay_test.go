package scheduling

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//barkbook test//EN
BEGIN:VEVENT
UID:evt-1
DTSTART:20260907T140000Z
DTEND:20260907T150000Z
SUMMARY:Vet appointment
END:VEVENT
BEGIN:VEVENT
UID:evt-2
DTSTART:20260908T090000Z
DTEND:20260908T100000Z
SUMMARY:School pickup
END:VEVENT
BEGIN:VEVENT
UID:evt-outside
DTSTART:20261001T090000Z
DTEND:20261001T100000Z
SUMMARY:Far future
END:VEVENT
END:VCALENDAR
`

func TestICSBusyFeedIntervals(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleICS))
	}))
	defer srv.Close()

	feed := &ICSBusyFeed{URL: srv.URL}
	from := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	busy, err := feed.BusyIntervals(context.Background(), from, to)
	if err != nil {
		t.Fatalf("BusyIntervals() error = %v", err)
	}
	if len(busy) != 2 {
		t.Fatalf("len(busy) = %d, want 2 inside the range", len(busy))
	}
	if busy[0].Summary != "Vet appointment" || busy[1].Summary != "School pickup" {
		t.Errorf("busy order/summaries = %q, %q", busy[0].Summary, busy[1].Summary)
	}
	wantStart := time.Date(2026, time.September, 7, 14, 0, 0, 0, time.UTC)
	if !busy[0].StartTime.Equal(wantStart) {
		t.Errorf("busy[0].StartTime = %v, want %v", busy[0].StartTime, wantStart)
	}
	if got := busy[0].EndTime.Sub(busy[0].StartTime); got != time.Hour {
		t.Errorf("busy[0] duration = %v, want 1h", got)
	}
	if hits != 1 {
		t.Errorf("upstream hit %d times, want 1", hits)
	}
}

func TestICSBusyFeedUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	feed := &ICSBusyFeed{URL: srv.URL}
	from := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	if _, err := feed.BusyIntervals(context.Background(), from, from.AddDate(0, 0, 7)); err == nil {
		t.Fatal("BusyIntervals() error = nil, want error on non-200 upstream")
	}
}
