// Package drafts keeps the course drafts operators are editing. Drafts live
// in process memory only and disappear on restart, cancel, successful
// submit or idle expiry.
package drafts

import (
	"context"
	"errors"
	"fomo/editor"
	"fomo/models/course"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("draft not found")

// Summary is the list view of a draft.
type Summary struct {
	ID           uuid.UUID     `json:"id"`
	CourseID     string        `json:"course_id,omitempty"`
	TitleEN      string        `json:"title_en"`
	TitleVI      string        `json:"title_vi"`
	Status       editor.Status `json:"status"`
	SectionCount int           `json:"section_count"`
	VideoCount   int           `json:"video_count"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type entry struct {
	mu        sync.Mutex
	id        uuid.UUID
	owner     uint
	editor    *editor.Editor
	createdAt time.Time
	touchedAt time.Time
	discarded bool
}

// Registry maps draft ids to editors. Each draft is visible to its owner only
// and is accessed by one goroutine at a time.
type Registry struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*entry
	now    func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		drafts: make(map[uuid.UUID]*entry),
		now:    time.Now,
	}
}

func (r *Registry) Create(owner uint, ed *editor.Editor) uuid.UUID {
	now := r.now()
	e := &entry{
		id:        uuid.New(),
		owner:     owner,
		editor:    ed,
		createdAt: now,
		touchedAt: now,
	}
	r.mu.Lock()
	r.drafts[e.id] = e
	r.mu.Unlock()
	return e.id
}

func (r *Registry) lookup(id uuid.UUID, owner uint) (*entry, error) {
	r.mu.RLock()
	e, ok := r.drafts[id]
	r.mu.RUnlock()
	if !ok || e.owner != owner {
		return nil, ErrNotFound
	}
	return e, nil
}

// With runs fn with exclusive access to the draft. fn must not block on I/O.
func (r *Registry) With(id uuid.UUID, owner uint, fn func(*editor.Editor) error) error {
	e, err := r.lookup(id, owner)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.discarded {
		return ErrNotFound
	}
	e.touchedAt = r.now()
	return fn(e.editor)
}

// Submit freezes the draft under its lock, sends it without holding the lock
// so the operator can keep editing, and records the outcome. A successful
// submit discards the draft.
func (r *Registry) Submit(ctx context.Context, id uuid.UUID, owner uint, gw editor.Gateway) (*editor.Submission, *course.Record, error) {
	var sub *editor.Submission
	err := r.With(id, owner, func(ed *editor.Editor) error {
		var err error
		sub, err = ed.BeginSubmit()
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	rec, sendErr := sub.Send(ctx, gw)

	if e, err := r.lookup(id, owner); err == nil {
		e.mu.Lock()
		e.editor.FinishSubmit(rec, sendErr)
		e.touchedAt = r.now()
		e.mu.Unlock()
	}
	if sendErr != nil {
		return sub, nil, sendErr
	}
	_ = r.Discard(id, owner)
	return sub, rec, nil
}

func (r *Registry) Discard(id uuid.UUID, owner uint) error {
	e, err := r.lookup(id, owner)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.discarded = true
	e.mu.Unlock()

	r.mu.Lock()
	delete(r.drafts, id)
	r.mu.Unlock()
	return nil
}

// List returns the owner's drafts, oldest first.
func (r *Registry) List(owner uint) []Summary {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.drafts))
	for _, e := range r.drafts {
		if e.owner == owner {
			entries = append(entries, e)
		}
	}
	r.mu.RUnlock()

	out := make([]Summary, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.discarded {
			out = append(out, e.summary())
		}
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Summary describes one draft.
func (r *Registry) Summary(id uuid.UUID, owner uint) (Summary, error) {
	var s Summary
	e, err := r.lookup(id, owner)
	if err != nil {
		return s, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.discarded {
		return s, ErrNotFound
	}
	return e.summary(), nil
}

func (e *entry) summary() Summary {
	d := e.editor.Snapshot()
	return Summary{
		ID:           e.id,
		CourseID:     e.editor.CourseID(),
		TitleEN:      d.TitleEN,
		TitleVI:      d.TitleVI,
		Status:       e.editor.Status(),
		SectionCount: len(d.Sections),
		VideoCount:   d.CountVideos(),
		CreatedAt:    e.createdAt,
		UpdatedAt:    e.touchedAt,
	}
}

// SweepIdle discards drafts untouched for longer than ttl. Drafts that are
// in use or waiting on the backend are left alone.
func (r *Registry) SweepIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)
	swept := 0

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.drafts {
		if !e.mu.TryLock() {
			continue
		}
		if e.touchedAt.Before(cutoff) && e.editor.Status() != editor.StatusSubmitting {
			e.discarded = true
			delete(r.drafts, id)
			swept++
		}
		e.mu.Unlock()
	}
	return swept
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.drafts)
}
