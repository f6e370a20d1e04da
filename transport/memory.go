package transport

import (
	"context"
	"sort"
	"strings"
	"sync"

	paykittypes "github.com/vitwit/paykit/types"
)

// MemoryStore is an in-process Storage used for tests and examples. It
// mimics the homeserver's observable behavior: shallow listings with
// pseudo-directory entries, not-found on absent addresses, and hard-failing
// deletes of missing documents.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, addr string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	body, ok := m.docs[addr]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func (m *MemoryStore) List(_ context.Context, addr string) ([]paykittypes.Resource, error) {
	dir := addr
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	var entries []paykittypes.Resource
	for stored := range m.docs {
		if !strings.HasPrefix(stored, dir) {
			continue
		}
		rest := stored[len(dir):]
		child := dir + rest
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			// Deeper entry; a shallow listing only shows the
			// intermediate directory marker.
			child = dir + rest[:idx+1]
		}
		if _, dup := seen[child]; dup {
			continue
		}
		seen[child] = struct{}{}
		entries = append(entries, paykittypes.Resource{
			Path: AddrPath(child),
			Addr: child,
		})
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Addr < entries[j].Addr })
	return entries, nil
}

func (m *MemoryStore) Put(_ context.Context, addr string, body []byte) error {
	stored := make([]byte, len(body))
	copy(stored, body)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[addr] = stored
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, addr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[addr]; !ok {
		return ErrNotFound
	}
	delete(m.docs, addr)
	return nil
}

// Len returns the number of stored documents.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
