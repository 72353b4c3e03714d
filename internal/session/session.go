// Package session keeps one live page document per visitor.
package session

import (
	"context"
	"fmt"
	"starlight/config"
	"starlight/internal/page"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTTL = 30 * time.Minute
	DefaultMax = 10000
)

// Factory builds a booted document for a visitor.
type Factory func(ctx context.Context, owner string) (*page.Document, error)

type entry struct {
	doc       *page.Document
	expiresAt time.Time
}

// Manager holds documents in memory. Idle sessions expire lazily: an expired
// session is replaced on its next access and swept when new ones are made.
// At most max sessions are held; a full manager evicts the one expiring first.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	max      int
	factory  Factory
	now      func() time.Time
}

func New(cfg *config.Config, factory Factory) *Manager {
	ttl := time.Duration(cfg.Site.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return NewWithClock(ttl, cfg.Site.SessionMax, factory, time.Now)
}

func NewWithClock(ttl time.Duration, maxSessions int, factory Factory, now func() time.Time) *Manager {
	if maxSessions <= 0 {
		maxSessions = DefaultMax
	}

	return &Manager{
		sessions: map[string]*entry{},
		ttl:      ttl,
		max:      maxSessions,
		factory:  factory,
		now:      now,
	}
}

// NewID returns a fresh visitor identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an identifier NewID produced.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)

	return err == nil
}

// Document returns the visitor's live document, building a new one when the
// visitor has none or it expired. created reports a fresh build.
func (m *Manager) Document(ctx context.Context, id string) (doc *page.Document, created bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	if e, ok := m.sessions[id]; ok && now.Before(e.expiresAt) {
		e.expiresAt = now.Add(m.ttl)

		return e.doc, false, nil
	}

	m.sweep(now)

	doc, err = m.factory(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("visitor", id).Msg("failed to build visitor page")

		return nil, false, fmt.Errorf("failed to build visitor page: %w", err)
	}

	if _, ok := m.sessions[id]; !ok && len(m.sessions) >= m.max {
		m.evictOldest()
	}

	m.sessions[id] = &entry{doc: doc, expiresAt: now.Add(m.ttl)}

	return doc, true, nil
}

// Lookup returns the visitor's document if it is still live.
func (m *Manager) Lookup(id string) (*page.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, false
	}

	e.expiresAt = m.now().Add(m.ttl)

	return e.doc, true
}

// Drop forgets the visitor's document.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// Len counts the sessions held, expired ones included until swept.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

func (m *Manager) sweep(now time.Time) {
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, id)
		}
	}
}

func (m *Manager) evictOldest() {
	var (
		oldest string
		at     time.Time
	)

	for id, e := range m.sessions {
		if oldest == "" || e.expiresAt.Before(at) {
			oldest, at = id, e.expiresAt
		}
	}

	if oldest != "" {
		log.Debug().Str("visitor", oldest).Msg("session limit reached, evicting the idlest page")
		delete(m.sessions, oldest)
	}
}
