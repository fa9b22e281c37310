package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jvdeveloper/blog-api/internal/article"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used for unit tests and the
// standalone dev server. It mirrors the Mongo repository's semantics,
// including date-descending ordering and not-found behavior.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*article.Article
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*article.Article)}
}

func (m *MemoryRepo) Create(_ context.Context, a *article.Article) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}
	cp := *a
	m.store[a.ID.Hex()] = &cp
	return a, nil
}

func (m *MemoryRepo) List(_ context.Context, limit int64) ([]*article.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(limit, func(*article.Article) bool { return true }), nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (*article.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.store[id]
	if !ok {
		return nil, article.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryRepo) UpdateByID(_ context.Context, id string, p article.Patch) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return nil, article.ErrNotFound
	}
	a.Title = p.Title
	a.Content = p.Content
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Image != "" {
		a.Image = p.Image
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryRepo) DeleteByID(_ context.Context, id string) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return nil, article.ErrNotFound
	}
	delete(m.store, id)
	return a, nil
}

func (m *MemoryRepo) SetImage(_ context.Context, id string, imageURL string) (*article.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.store[id]
	if !ok {
		return nil, article.ErrNotFound
	}
	a.Image = imageURL
	cp := *a
	return &cp, nil
}

func (m *MemoryRepo) Search(_ context.Context, term string) ([]*article.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	needle := strings.ToLower(term)
	return m.collect(0, func(a *article.Article) bool {
		return strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Content), needle)
	}), nil
}

// collect returns matching articles date-descending; caller holds the lock.
func (m *MemoryRepo) collect(limit int64, match func(*article.Article) bool) []*article.Article {
	out := []*article.Article{}
	for _, a := range m.store {
		if match(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}
