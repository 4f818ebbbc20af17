package scheduling

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"barkbook/models"

	ical "github.com/arran4/golang-ical"
	"github.com/go-redis/redis/v8"
)

// BusyFeed is the read-only external calendar overlay. Implementations must
// not be consulted by the booking transaction.
type BusyFeed interface {
	BusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error)
}

const busyFeedCacheKey = "busyfeed:ics"

// ICSBusyFeed reads busy intervals from a hosted ICS feed. The raw feed body
// is cached in Redis between refreshes so availability listings do not hammer
// the upstream calendar.
type ICSBusyFeed struct {
	URL        string
	Cache      *redis.Client
	TTL        time.Duration
	HTTPClient *http.Client
}

func (f *ICSBusyFeed) BusyIntervals(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	body, err := f.feedBody(ctx)
	if err != nil {
		return nil, err
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse busy feed: %w", err)
	}

	var busy []models.BusyInterval
	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil || !end.After(start) {
			continue
		}
		// Keep only events overlapping the requested range.
		if !start.Before(to) || !end.After(from) {
			continue
		}

		var summary string
		if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
			summary = p.Value
		}
		busy = append(busy, models.BusyInterval{
			StartTime: start,
			EndTime:   end,
			Summary:   summary,
		})
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].StartTime.Before(busy[j].StartTime)
	})
	return busy, nil
}

func (f *ICSBusyFeed) feedBody(ctx context.Context) ([]byte, error) {
	if f.Cache != nil {
		if cached, err := f.Cache.Get(ctx, busyFeedCacheKey).Bytes(); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	client := f.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build busy feed request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch busy feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("busy feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read busy feed: %w", err)
	}

	if f.Cache != nil {
		ttl := f.TTL
		if ttl <= 0 {
			ttl = 15 * time.Minute
		}
		_ = f.Cache.Set(ctx, busyFeedCacheKey, body, ttl).Err()
	}
	return body, nil
}
