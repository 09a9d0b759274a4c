package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/sandbox"
)

var (
	ErrNotFound      = errors.New("sandbox not found")
	ErrForkNotFound  = errors.New("fork target not found")
	ErrTitleRequired = errors.New("title is required")
)

// Store keeps sandboxes in memory.
type Store struct {
	mu        sync.RWMutex
	sandboxes map[string]*sandbox.Sandbox
	order     []string
}

// NewStore creates a store seeded with one sandbox per preset fork target,
// so every preset in the catalog can be forked.
func NewStore(presets []preset.Preset) *Store {
	s := &Store{sandboxes: make(map[string]*sandbox.Sandbox)}
	for _, p := range presets {
		if p.SandboxID == "" {
			continue
		}
		if _, ok := s.sandboxes[p.SandboxID]; ok {
			continue
		}
		s.put(&sandbox.Sandbox{ID: p.SandboxID, Title: p.Name})
	}
	return s
}

func (s *Store) put(sb *sandbox.Sandbox) {
	s.sandboxes[sb.ID] = sb
	s.order = append(s.order, sb.ID)
}

// Create adds a sandbox with a fresh id. forkedFrom must name an existing
// sandbox when set; author may be empty.
func (s *Store) Create(title, forkedFrom, author string) (*sandbox.Sandbox, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if forkedFrom != "" {
		if _, ok := s.sandboxes[forkedFrom]; !ok {
			return nil, ErrForkNotFound
		}
	}

	sb := &sandbox.Sandbox{
		ID:         uuid.NewString(),
		Title:      title,
		ForkedFrom: forkedFrom,
	}
	if author != "" {
		sb.Author = &sandbox.Author{Username: author}
	}
	s.put(sb)

	out := *sb
	return &out, nil
}

// Get returns a copy of the sandbox with the given id.
func (s *Store) Get(id string) (*sandbox.Sandbox, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sb, ok := s.sandboxes[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *sb
	return &out, nil
}

// Len returns the number of stored sandboxes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sandboxes)
}
