package deploy

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// runIDs hands out lexically sortable run identifiers. ULIDs encode their
// creation time, so sorting run IDs sorts runs chronologically.
type runIDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newRunIDs() *runIDs {
	return &runIDs{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *runIDs) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		// Monotonic counter overflowed within one millisecond. Re-seed
		// and take the fresh sequence.
		g.entropy = ulid.Monotonic(rand.Reader, 0)
		id = ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
	}
	return id.String()
}

// newDeployerID returns a random identifier for one Deployer instance.
func newDeployerID() string {
	return uuid.NewString()
}
