package debounce

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectsWithinInterval(t *testing.T) {
	d := New(EdgeIntervalMicros)

	assert.True(t, d.Accept(500000))
	assert.False(t, d.Accept(500000+199999))
	assert.Equal(t, uint32(500000), d.Last())
}

func TestAcceptsAtInterval(t *testing.T) {
	d := New(EdgeIntervalMicros)

	assert.True(t, d.Accept(300000))
	assert.True(t, d.Accept(300000+200000))
	assert.Equal(t, uint32(500000), d.Last())
}

func TestRejectedEventDoesNotExtendWindow(t *testing.T) {
	d := New(PollIntervalMillis)

	assert.True(t, d.Accept(100))
	assert.False(t, d.Accept(140))
	// Measured from 100, not from the rejected 140.
	assert.True(t, d.Accept(150))
}

func TestStartupWindow(t *testing.T) {
	d := New(EdgeIntervalMicros)

	assert.False(t, d.Accept(150000), "events inside the first window after startup are dropped")
	assert.True(t, d.Accept(200000))
}

func TestAcrossCounterWrap(t *testing.T) {
	d := New(EdgeIntervalMicros)
	nearWrap := uint32(math.MaxUint32 - 50000)

	assert.True(t, d.Accept(nearWrap))
	assert.False(t, d.Accept(nearWrap+100000))
	assert.True(t, d.Accept(nearWrap+200000))
}

func TestConcurrentAcceptOnce(t *testing.T) {
	d := New(EdgeIntervalMicros)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d.Accept(1000000) {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
}
