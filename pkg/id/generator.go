package id

import (
	"errors"
	"sync"
	"time"
)

const (
	// DefaultRollbackAllowance is the largest backward clock jump, in
	// milliseconds, that Generate and GenerateOrAbort absorb by advancing
	// counters instead of treating it as a rollback.
	DefaultRollbackAllowance = 10_000

	// counterHiRefreshInterval bounds, in generator-perceived milliseconds,
	// how long counter_hi is reused before a fresh draw.
	counterHiRefreshInterval = 1_000
)

// ErrClockRollback is returned by the abort-on-rollback entry points when the
// clock regressed beyond the rollback allowance. Generator state is left
// untouched, so the caller may retry later or fall back to Generate.
var ErrClockRollback = errors.New("id: clock moved back beyond rollback allowance")

// NowMs returns current time in milliseconds since Unix epoch.
var NowMs = func() uint64 { return uint64(time.Now().UnixMilli()) }

// Generator produces monotonically increasing IDs per process. All state is
// guarded by a single mutex; the Core entry points skip that mutex and demand
// external serialization instead.
type Generator struct {
	mu sync.Mutex

	// timestamp is the last used millisecond timestamp; 0 means the
	// generator has never run.
	timestamp   uint64
	counterHi   uint32
	counterLo   uint32
	tsCounterHi uint64

	rng Rand
}

// NewGenerator creates a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rng: newCryptoRand()}
}

// NewGeneratorWithRand creates a Generator drawing entropy from rng. The
// Generator serializes access to rng under its own lock; per-goroutine
// generators need independently seeded sources.
func NewGeneratorWithRand(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns a new ID for the current time. It is safe for concurrent
// use. A clock regression beyond DefaultRollbackAllowance resets the
// generator and restarts from the regressed time, so Generate always
// succeeds but forfeits monotonicity across that single boundary.
func (g *Generator) Generate() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.GenerateCore(NowMs(), DefaultRollbackAllowance)
}

// GenerateOrAbort returns a new ID for the current time, or ErrClockRollback
// when the clock regressed beyond DefaultRollbackAllowance. It is safe for
// concurrent use and mutates no state on the error path.
func (g *Generator) GenerateOrAbort() (ID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.GenerateCoreNoRewind(NowMs(), DefaultRollbackAllowance)
}

// GenerateCore returns a new ID for the given timestamp, recovering from a
// rollback beyond rollbackAllowance by resetting state and restarting from
// the regressed timestamp. It is NOT safe for concurrent use. timestamp must
// be in 1..MaxTimestamp and rollbackAllowance at most MaxTimestamp; a
// violation panics.
func (g *Generator) GenerateCore(timestamp, rollbackAllowance uint64) ID {
	i, err := g.generate(timestamp, rollbackAllowance)
	if err != nil {
		// Rollback beyond allowance: forget history and restart from the
		// regressed timestamp. Any valid timestamp now opens a new window.
		g.timestamp = 0
		g.tsCounterHi = 0
		i, _ = g.generate(timestamp, rollbackAllowance)
	}
	return i
}

// GenerateCoreNoRewind returns a new ID for the given timestamp, or
// ErrClockRollback when the clock regressed beyond rollbackAllowance,
// leaving state untouched. It is NOT safe for concurrent use and shares
// GenerateCore's argument preconditions.
func (g *Generator) GenerateCoreNoRewind(timestamp, rollbackAllowance uint64) (ID, error) {
	return g.generate(timestamp, rollbackAllowance)
}

func (g *Generator) generate(timestamp, rollbackAllowance uint64) (ID, error) {
	if timestamp == 0 || timestamp > MaxTimestamp {
		panic("id: timestamp must be in 1..2^48-1")
	}
	if rollbackAllowance > MaxTimestamp {
		panic("id: rollback allowance exceeds 48 bits")
	}

	if timestamp > g.timestamp {
		// New time window.
		g.timestamp = timestamp
		g.counterLo = g.rng.Uint32() & MaxCounter
	} else if timestamp+rollbackAllowance > g.timestamp {
		// Same or slightly earlier window: keep ordering via the counters.
		g.counterLo++
		if g.counterLo > MaxCounter {
			g.counterLo = 0
			g.counterHi++
			if g.counterHi > MaxCounter {
				g.counterHi = 0
				// Both counters exhausted: borrow one millisecond.
				g.timestamp++
				g.counterLo = g.rng.Uint32() & MaxCounter
			}
		}
	} else {
		return ID{}, ErrClockRollback
	}

	if g.timestamp-g.tsCounterHi >= counterHiRefreshInterval || g.tsCounterHi == 0 {
		g.tsCounterHi = g.timestamp
		g.counterHi = g.rng.Uint32() & MaxCounter
	}

	return MustFromFields(g.timestamp, g.counterHi, g.counterLo, g.rng.Uint32()), nil
}
