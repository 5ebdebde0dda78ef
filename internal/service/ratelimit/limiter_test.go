package ratelimit

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestLimiterBurstAndRefill(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(1, 2, WithClock(clock))

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"), "keys have separate buckets")

	clock.Advance(time.Second)
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestLimiterDropsIdleKeys(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(1, 1, WithClock(clock), WithIdleExpiry(time.Minute))

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	clock.Advance(2 * time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}
