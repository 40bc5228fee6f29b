// Package theme tracks the light/dark preference. Independent of the table
// view state, persisted under a long-lived key so it survives across
// sessions.
package theme

import (
	"context"

	"github.com/fabienvalero1/userdir/internal/client/storage"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Manager owns the current theme. Persistence is best-effort: with a
// disabled store the preference simply lives for the current run only.
type Manager struct {
	store   storage.Store
	current Theme
}

// NewManager restores the stored preference, defaulting to light when
// nothing valid is stored.
func NewManager(ctx context.Context, store storage.Store) *Manager {
	m := &Manager{store: store, current: Light}

	data, err := store.Get(ctx, storage.ThemeKey)
	if err == nil {
		if t := Theme(data); t == Light || t == Dark {
			m.current = t
		}
	}
	return m
}

func (m *Manager) Current() Theme {
	return m.current
}

func (m *Manager) Set(ctx context.Context, t Theme) {
	if t != Light && t != Dark {
		return
	}
	m.current = t
	_ = m.store.Set(ctx, storage.ThemeKey, []byte(t))
}

// Toggle flips the preference and returns the new value.
func (m *Manager) Toggle(ctx context.Context) Theme {
	next := Light
	if m.current == Light {
		next = Dark
	}
	m.Set(ctx, next)
	return next
}
