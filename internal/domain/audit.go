package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one immutable line of a deal's audit trail. Entries are
// never edited or removed once appended; storage order is oldest-first.
type AuditEntry struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Action    AuditAction `json:"action"`
	User      string      `json:"user"`
	Details   string      `json:"details"`
}

// NewAuditEntry builds an entry with a fresh ID and the current UTC time.
// An empty user falls back to "System".
func NewAuditEntry(action AuditAction, user, details string) AuditEntry {
	if user == "" {
		user = "System"
	}
	return AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		User:      user,
		Details:   details,
	}
}

// AppendAudit returns a new trail with the entry appended. The input slice
// is never modified in place, so a caller holding the old trail keeps a
// consistent view until the new one is persisted.
func AppendAudit(trail []AuditEntry, entry AuditEntry) []AuditEntry {
	out := make([]AuditEntry, 0, len(trail)+1)
	out = append(out, trail...)
	out = append(out, entry)
	return out
}

// NewestFirst returns a copy of the trail in display order
// (most recent entry first).
func NewestFirst(trail []AuditEntry) []AuditEntry {
	out := make([]AuditEntry, len(trail))
	for i, e := range trail {
		out[len(trail)-1-i] = e
	}
	return out
}
