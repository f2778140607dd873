package services

import (
	"context"
	"sort"
	"sync"

	"bike-shop/models"
	"bike-shop/repositories"
	"bike-shop/utils"
)

type fakeItemRepo struct {
	mu        sync.Mutex
	items     map[int]models.Item
	listCalls int
	listErr   error
	countErr  error
}

func newFakeItemRepo(items ...models.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[int]models.Item{}}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeItemRepo) List(_ context.Context, normalized string) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}

	var out []models.Item
	for _, item := range r.items {
		if utils.MatchesItem(item.Name, item.Type, normalized) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrItemNotFound
	}
	return &item, nil
}

func (r *fakeItemRepo) Create(_ context.Context, item models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; ok {
		return repositories.ErrItemExists
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, item models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return repositories.ErrItemNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repositories.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.items), nil
}

func (r *fakeItemRepo) InsertMany(_ context.Context, items []models.Item) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inserted := 0
	for _, item := range items {
		if _, ok := r.items[item.ID]; ok {
			continue
		}
		r.items[item.ID] = item
		inserted++
	}
	return inserted, nil
}

type fakeItemCache struct {
	lists         map[string][]models.Item
	invalidations int
}

func newFakeItemCache() *fakeItemCache {
	return &fakeItemCache{lists: map[string][]models.Item{}}
}

func (c *fakeItemCache) GetList(_ context.Context, normalized string) ([]models.Item, error) {
	items, ok := c.lists[normalized]
	if !ok {
		return nil, ErrCacheMiss
	}
	return items, nil
}

func (c *fakeItemCache) SetList(_ context.Context, normalized string, items []models.Item) error {
	c.lists[normalized] = items
	return nil
}

func (c *fakeItemCache) Invalidate(_ context.Context) error {
	c.lists = map[string][]models.Item{}
	c.invalidations++
	return nil
}
