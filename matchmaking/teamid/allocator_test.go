// matchmaking/teamid/allocator_test.go
package teamid

import (
	"context"
	"errors"
	"testing"

	"github.com/findrivals/go-backend/shared/models"
	"github.com/stretchr/testify/assert"
)

type stubCounter struct {
	count int64
	err   error
}

func (s *stubCounter) CountBySport(ctx context.Context, sport models.Sport) (int64, error) {
	return s.count, s.err
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name  string
		sport models.Sport
		count int64
		want  string
	}{
		{"first cricket team", models.SportCricket, 0, "CRK-100"},
		{"thirtieth cricket team", models.SportCricket, 29, "CRK-129"},
		{"football", models.SportFootball, 4, "FTB-104"},
		{"kabaddi", models.SportKabaddi, 0, "KBD-100"},
		{"shuttle", models.SportShuttle, 7, "SHT-107"},
		{"tennis", models.SportTennis, 12, "TNS-112"},
		{"unknown sport falls back to TMP", models.Sport("unknownsport"), 0, "TMP-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAllocator(&stubCounter{count: tt.count})
			assert.Equal(t, tt.want, a.Allocate(context.Background(), tt.sport))
		})
	}
}

func TestAllocate_CountFailureDegradesToZero(t *testing.T) {
	a := NewAllocator(&stubCounter{count: 99, err: errors.New("storage unavailable")})

	// A count outage must not fail the request; the identifier is still
	// validly formatted with the count treated as zero.
	assert.Equal(t, "CRK-100", a.Allocate(context.Background(), models.SportCricket))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "CRK", Prefix(models.SportCricket))
	assert.Equal(t, "TMP", Prefix(models.Sport("frisbee")))
}
