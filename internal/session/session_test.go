package session_test

import (
	"context"
	"errors"
	"starlight/config"
	"starlight/internal/page"
	"starlight/internal/session"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func factory(builds *int) session.Factory {
	return func(_ context.Context, _ string) (*page.Document, error) {
		*builds++

		return page.Parse(strings.NewReader(`<html><body></body></html>`))
	}
}

func TestDocumentReuse(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	builds := 0
	m := session.NewWithClock(10*time.Minute, 0, factory(&builds), c.Now)

	id := session.NewID()

	first, created, err := m.Document(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, created)

	c.Advance(9 * time.Minute)

	again, created, err := m.Document(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, again)

	c.Advance(9 * time.Minute)

	_, ok := m.Lookup(id)
	assert.True(t, ok, "access extends the session")
	assert.Equal(t, 1, builds)
}

func TestDocumentExpiry(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	builds := 0
	m := session.NewWithClock(time.Minute, 0, factory(&builds), c.Now)

	first, _, err := m.Document(context.Background(), "a")
	require.NoError(t, err)

	_, _, err = m.Document(context.Background(), "b")
	require.NoError(t, err)

	c.Advance(2 * time.Minute)

	_, ok := m.Lookup("a")
	assert.False(t, ok)

	fresh, created, err := m.Document(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotSame(t, first, fresh)
	assert.Equal(t, 1, m.Len(), "expired sessions are swept")
}

func TestFactoryFailure(t *testing.T) {
	m := session.NewWithClock(time.Minute, 0, func(context.Context, string) (*page.Document, error) {
		return nil, errors.New("markup missing")
	}, time.Now)

	_, _, err := m.Document(context.Background(), "a")

	require.Error(t, err)
	assert.Zero(t, m.Len())
}

func TestDrop(t *testing.T) {
	builds := 0
	m := session.New(&config.Config{}, factory(&builds))

	_, _, err := m.Document(context.Background(), "a")
	require.NoError(t, err)

	m.Drop("a")

	_, ok := m.Lookup("a")
	assert.False(t, ok)
}

func TestSessionLimit(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	builds := 0
	m := session.NewWithClock(time.Minute, 3, factory(&builds), c.Now)
	ctx := context.Background()

	for i := range 10 {
		_, _, err := m.Document(ctx, session.NewID())
		require.NoError(t, err)
		assert.LessOrEqual(t, m.Len(), 3, "after %d visitors", i+1)

		c.Advance(time.Second)
	}

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 10, builds)
}

func TestSessionLimitEvictsIdlest(t *testing.T) {
	c := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	builds := 0
	m := session.NewWithClock(time.Minute, 2, factory(&builds), c.Now)
	ctx := context.Background()

	_, _, err := m.Document(ctx, "a")
	require.NoError(t, err)
	c.Advance(time.Second)

	_, _, err = m.Document(ctx, "b")
	require.NoError(t, err)
	c.Advance(time.Second)

	// touching a makes b the idlest
	_, created, err := m.Document(ctx, "a")
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = m.Document(ctx, "c")
	require.NoError(t, err)

	_, ok := m.Lookup("a")
	assert.True(t, ok)

	_, ok = m.Lookup("b")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestValidID(t *testing.T) {
	assert.True(t, session.ValidID(session.NewID()))
	assert.False(t, session.ValidID("not-a-visitor"))
	assert.False(t, session.ValidID(""))
}
