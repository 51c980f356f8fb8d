// matchmaking/teamid/allocator.go
package teamid

import (
	"context"
	"fmt"
	"log"

	"github.com/findrivals/go-backend/shared/models"
)

// FallbackPrefix tags identifiers minted for a sport outside the known set.
// The enumeration is closed at the API boundary, so this is a defensive
// default rather than a reachable path.
const FallbackPrefix = "TMP"

// idBase offsets the per-sport counter so identifiers start at <prefix>-100.
const idBase = 100

var sportPrefixes = map[models.Sport]string{
	models.SportCricket:  "CRK",
	models.SportFootball: "FTB",
	models.SportKabaddi:  "KBD",
	models.SportShuttle:  "SHT",
	models.SportTennis:   "TNS",
}

// Prefix returns the fixed 3-letter tag for a sport, or FallbackPrefix for an
// unrecognized value.
func Prefix(sport models.Sport) string {
	if p, ok := sportPrefixes[sport]; ok {
		return p
	}
	return FallbackPrefix
}

// SportCounter reports how many teams currently exist for a sport. The live
// count against shared storage is the single source of truth; the allocator
// performs no caching.
type SportCounter interface {
	CountBySport(ctx context.Context, sport models.Sport) (int64, error)
}

// Allocator derives short human-readable team identifiers of the form
// <prefix>-<100+count>, e.g. "CRK-104" for the fifth cricket team counted.
//
// Uniqueness is best-effort: two concurrent registrations of the same sport
// can read the same count and mint the same identifier. That trade is
// accepted in exchange for availability (see Allocate).
type Allocator struct {
	counter SportCounter
}

// NewAllocator creates an Allocator backed by the given counter.
func NewAllocator(counter SportCounter) *Allocator {
	return &Allocator{counter: counter}
}

// Allocate mints an identifier for the sport. The allocator only reads; the
// caller persists the team with the returned identifier.
//
// If the count query fails the failure is absorbed: the count degrades to
// zero and a validly formatted identifier is still returned, so a storage
// outage never blocks registration.
func (a *Allocator) Allocate(ctx context.Context, sport models.Sport) string {
	count, err := a.counter.CountBySport(ctx, sport)
	if err != nil {
		log.Printf("WARN: Team count for sport %q unavailable, falling back to 0: %v", sport, err)
		count = 0
	}
	return fmt.Sprintf("%s-%d", Prefix(sport), idBase+count)
}
