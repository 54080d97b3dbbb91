package game

import (
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snake/internal/telemetry"
)

const (
	// speed scales the tick; a tick lasts speed*10ms.
	speed = 10
	// TickInterval is the fixed delay between simulation steps.
	TickInterval = speed * 10 * time.Millisecond
)

// Config holds game configuration options.
type Config struct {
	// Seed for apple placement. A seed of 0 means a time-based seed.
	Seed int64
	// SessionID tags logs and spans for one run of the game.
	SessionID string
	// Tracer records spans. Nil means the global provider's "game" tracer.
	Tracer trace.Tracer
}

func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) tracer() trace.Tracer {
	if c.Tracer != nil {
		return c.Tracer
	}
	return telemetry.Tracer("game")
}
