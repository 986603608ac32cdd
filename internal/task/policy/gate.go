package policy

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"daily-three/pkg/datemath"
	"daily-three/pkg/kvstore"
)

const markerKeyPrefix = "last-reset"

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// ShouldRunDailyReset decides whether cleanup runs for now given the stored marker.
// An empty lastResetDate means no marker was ever written. The returned date is
// the marker value the caller must persist.
func ShouldRunDailyReset(now time.Time, cal *datemath.Calendar, lastResetDate string) (bool, string) {
	today := cal.LocalDate(now)
	if lastResetDate == "" {
		return false, today
	}
	if lastResetDate != today {
		return true, today
	}
	return false, lastResetDate
}

// MarkerKey is the kvstore key of the reset marker for one user on one device.
func MarkerKey(ownerID, deviceID string) string {
	key := fmt.Sprintf("%s_%s_%s", markerKeyPrefix, ownerID, deviceID)
	key = unsafeKeyChars.ReplaceAllString(key, "-")
	if len(key) > 200 {
		key = key[:200]
	}
	return key
}

// Gate evaluates ShouldRunDailyReset against markers held in a kvstore.
type Gate struct {
	mu sync.Mutex
	kv kvstore.Store
}

func NewGate(kv kvstore.Store) *Gate {
	if kv == nil {
		panic("policy: kvstore is required")
	}
	return &Gate{kv: kv}
}

// Check reports whether the reset should run now for key. A changed marker is
// persisted before Check returns.
func (g *Gate) Check(key string, now time.Time, cal *datemath.Calendar) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	last, _, err := g.kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("policy: read reset marker: %w", err)
	}

	run, next := ShouldRunDailyReset(now, cal, last)
	if next != last {
		if err := g.kv.Set(key, next); err != nil {
			return false, fmt.Errorf("policy: write reset marker: %w", err)
		}
	}
	return run, nil
}
