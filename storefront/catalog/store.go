// Package catalog keeps the client-side snapshot of the item catalog and the
// subset currently shown after a search.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"bike-shop/models"
	"bike-shop/utils"

	log "github.com/sirupsen/logrus"
)

var ErrLoadFailed = errors.New("could not load catalog")

// Service is the remote catalog: every item, or those matching search.
type Service interface {
	List(ctx context.Context, search string) ([]models.Item, error)
}

type State int

const (
	Loading State = iota
	Ready
	NoResults
	LoadError
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case NoResults:
		return "no_results"
	case LoadError:
		return "load_error"
	default:
		return "loading"
	}
}

// Store is owned by a single UI loop and is not safe for concurrent use.
type Store struct {
	service  Service
	onLoaded []func(items []models.Item)

	items   []models.Item
	index   map[int]int
	visible []models.Item
	query   string
	state   State
	err     error
}

func NewStore(service Service) *Store {
	return &Store{service: service, state: Loading}
}

// OnLoaded registers fn to run after every Load with the new snapshot, which
// is empty when the load failed.
func (s *Store) OnLoaded(fn func(items []models.Item)) {
	s.onLoaded = append(s.onLoaded, fn)
}

// Load fetches the full catalog once. On success the snapshot is replaced
// wholesale; on failure the previous snapshot is dropped and the store moves
// to LoadError. There is no retry.
func (s *Store) Load(ctx context.Context) error {
	s.state = Loading
	items, err := s.service.List(ctx, "")
	if err != nil {
		log.WithError(err).Error("Failed to fetch items")
		s.replace(nil)
		s.state = LoadError
		s.err = fmt.Errorf("%w: %v", ErrLoadFailed, err)
		s.notifyLoaded()
		return s.err
	}

	s.replace(items)
	s.query = ""
	s.visible = s.items
	s.err = nil
	s.state = stateFor(s.visible)

	s.notifyLoaded()
	return nil
}

func (s *Store) notifyLoaded() {
	for _, fn := range s.onLoaded {
		fn(s.Items())
	}
}

// Search filters the loaded snapshot to the items whose name or type contains
// term case-insensitively. An empty term shows everything.
func (s *Store) Search(term string) []models.Item {
	if s.state == LoadError || s.state == Loading {
		return nil
	}

	normalized := utils.NormalizeQuery(term)
	visible := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		if utils.MatchesItem(item.Name, item.Type, normalized) {
			visible = append(visible, item)
		}
	}

	s.query = normalized
	s.visible = visible
	s.state = stateFor(visible)
	return s.Visible()
}

// SearchRemote asks the catalog service for the matching items. Only the
// visible list changes; cart lookups keep using the full snapshot.
func (s *Store) SearchRemote(ctx context.Context, term string) ([]models.Item, error) {
	normalized := utils.NormalizeQuery(term)
	items, err := s.service.List(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", normalized, err)
	}

	s.query = normalized
	s.visible = append([]models.Item(nil), items...)
	s.state = stateFor(s.visible)
	return s.Visible(), nil
}

// Find looks id up in the full snapshot.
func (s *Store) Find(id int) (models.Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Item{}, false
	}
	return s.items[i], true
}

func (s *Store) Items() []models.Item {
	return append([]models.Item(nil), s.items...)
}

func (s *Store) Visible() []models.Item {
	return append([]models.Item(nil), s.visible...)
}

func (s *Store) Query() string {
	return s.query
}

func (s *Store) State() State {
	return s.state
}

func (s *Store) Err() error {
	return s.err
}

func (s *Store) replace(items []models.Item) {
	s.items = append([]models.Item(nil), items...)
	s.index = make(map[int]int, len(s.items))
	for i, item := range s.items {
		s.index[item.ID] = i
	}
	s.visible = nil
}

func stateFor(visible []models.Item) State {
	if len(visible) == 0 {
		return NoResults
	}
	return Ready
}
