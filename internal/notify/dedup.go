package notify

import (
	"fmt"

	"github.com/blaisecz/zenith/internal/calendar"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultDedupCapacity bounds how many signaled keys are remembered.
const DefaultDedupCapacity = 100

// DedupSet remembers recently signaled keys. Once full, the oldest key is
// evicted first. Safe for concurrent use.
type DedupSet struct {
	keys *lru.Cache[string, struct{}]
}

func NewDedupSet(capacity int) *DedupSet {
	if capacity <= 0 {
		capacity = DefaultDedupCapacity
	}
	// lru.New only fails for non-positive sizes
	keys, _ := lru.New[string, struct{}](capacity)
	return &DedupSet{keys: keys}
}

// Mark records key and reports whether it was new. Checking and recording
// happen atomically, so two concurrent ticks cannot both see a key as new.
func (d *DedupSet) Mark(key string) bool {
	seen, _ := d.keys.ContainsOrAdd(key, struct{}{})
	return !seen
}

// Len returns the number of remembered keys.
func (d *DedupSet) Len() int {
	return d.keys.Len()
}

// Key identifies one protocol window: (protocol, local day, HH:MM).
func Key(habitID uuid.UUID, day calendar.Day, clock string) string {
	return fmt.Sprintf("%s:%s:%s", habitID, day, clock)
}
