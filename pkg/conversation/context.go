// Package conversation keeps per-session chat memory: the ordered history of
// classified turns, accumulated category preferences and the last intent.
package conversation

import (
	"context"
	"strings"
	"time"

	"GlamoraBackend/pkg/intent"
)

type Turn struct {
	Intent intent.Intent `json:"intent"`
	Query  string        `json:"query"`
	At     time.Time     `json:"at"`
}

type Context struct {
	SessionID   string        `json:"session_id"`
	History     []Turn        `json:"history"`
	Preferences []string      `json:"preferences"`
	LastIntent  intent.Intent `json:"last_intent,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Store persists conversation contexts. Get creates the context when absent
// and returns a snapshot; Update is the only way to mutate a stored context.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Context, error)
	Update(ctx context.Context, sessionID string, in intent.Intent, query string, preferences ...string) error
	Delete(ctx context.Context, sessionID string) error
	// Exists reports whether a live context is stored, without creating one.
	Exists(ctx context.Context, sessionID string) (bool, error)
}

func newContext(sessionID string, now time.Time) *Context {
	return &Context{
		SessionID:   sessionID,
		History:     []Turn{},
		Preferences: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *Context) Clone() *Context {
	clone := *c
	clone.History = append([]Turn(nil), c.History...)
	clone.Preferences = append([]string(nil), c.Preferences...)
	return &clone
}

// LastTurn returns the most recent turn, if any.
func (c *Context) LastTurn() (Turn, bool) {
	if len(c.History) == 0 {
		return Turn{}, false
	}
	return c.History[len(c.History)-1], true
}

func (c *Context) HasPreference(category string) bool {
	category = normalizePreference(category)
	for _, p := range c.Preferences {
		if p == category {
			return true
		}
	}
	return false
}

// Intents lists the intent of every turn in order.
func (c *Context) Intents() []intent.Intent {
	intents := make([]intent.Intent, 0, len(c.History))
	for _, turn := range c.History {
		intents = append(intents, turn.Intent)
	}
	return intents
}

func (c *Context) apply(in intent.Intent, query string, preferences []string, now time.Time) {
	c.History = append(c.History, Turn{Intent: in, Query: query, At: now})
	c.LastIntent = in
	c.UpdatedAt = now

	for _, p := range preferences {
		p = normalizePreference(p)
		if p != "" && !c.HasPreference(p) {
			c.Preferences = append(c.Preferences, p)
		}
	}
}

func normalizePreference(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}
