package catalog

import (
	"context"
	"errors"
	"testing"

	"bike-shop/models"
	"bike-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceStub struct {
	items    []models.Item
	err      error
	searches []string
}

func (s *serviceStub) List(_ context.Context, search string) ([]models.Item, error) {
	s.searches = append(s.searches, search)
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Item{}
	for _, item := range s.items {
		if utils.MatchesItem(item.Name, item.Type, search) {
			out = append(out, item)
		}
	}
	return out, nil
}

func ids(items []models.Item) []int {
	out := []int{}
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func loadedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(&serviceStub{items: models.StarterItems()})
	require.NoError(t, s.Load(context.Background()))
	return s
}

func Test_Load_ReplacesSnapshotAndNotifies(t *testing.T) {
	s := NewStore(&serviceStub{items: models.StarterItems()})
	var notified []models.Item
	s.OnLoaded(func(items []models.Item) { notified = items })

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, Ready, s.State())
	assert.Len(t, s.Items(), 9)
	assert.Len(t, s.Visible(), 9)
	assert.Len(t, notified, 9)
}

func Test_Load_FailureIsExplicitStateWithoutPartialData(t *testing.T) {
	stub := &serviceStub{items: models.StarterItems()}
	s := NewStore(stub)
	require.NoError(t, s.Load(context.Background()))
	var notified []models.Item
	calls := 0
	s.OnLoaded(func(items []models.Item) {
		calls++
		notified = items
	})

	stub.err = errors.New("connection refused")
	err := s.Load(context.Background())

	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.Equal(t, LoadError, s.State())
	assert.ErrorIs(t, s.Err(), ErrLoadFailed)
	assert.Empty(t, s.Items())
	assert.Empty(t, s.Visible())
	assert.Equal(t, 1, calls, "failed load still notifies")
	assert.Empty(t, notified)
	assert.Len(t, stub.searches, 2, "single attempt per load")
}

func Test_Load_EmptyCatalogIsNoResults(t *testing.T) {
	s := NewStore(&serviceStub{})

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, NoResults, s.State())
}

func Test_Search(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		wantIDs   []int
		wantState State
	}{
		{name: "cruiser case-insensitive", term: "CRUISER", wantIDs: []int{1, 6, 7}, wantState: Ready},
		{name: "empty returns everything", term: "", wantIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, wantState: Ready},
		{name: "whitespace trimmed", term: "  jawa ", wantIDs: []int{5}, wantState: Ready},
		{name: "name substring", term: "royal enfield", wantIDs: []int{1, 7}, wantState: Ready},
		{name: "no match", term: "tractor", wantIDs: []int{}, wantState: NoResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedStore(t)

			got := s.Search(tt.term)

			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, tt.wantState, s.State())
		})
	}
}

func Test_Search_KeepsFullSnapshotForLookups(t *testing.T) {
	s := loadedStore(t)

	s.Search("sport")

	item, ok := s.Find(4)
	require.True(t, ok)
	assert.Equal(t, "Hero Splendor Plus", item.Name)
}

func Test_Search_BeforeLoadReturnsNothing(t *testing.T) {
	s := NewStore(&serviceStub{items: models.StarterItems()})

	assert.Nil(t, s.Search("cruiser"))
	assert.Equal(t, Loading, s.State())
}

func Test_SearchRemote_DelegatesNormalizedTerm(t *testing.T) {
	stub := &serviceStub{items: models.StarterItems()}
	s := NewStore(stub)
	require.NoError(t, s.Load(context.Background()))

	got, err := s.SearchRemote(context.Background(), " Sport ")

	require.NoError(t, err)
	assert.Equal(t, []int{3, 8}, ids(got))
	assert.Equal(t, "sport", stub.searches[len(stub.searches)-1])
	assert.Len(t, s.Items(), 9)
}

func Test_SearchRemote_Failure(t *testing.T) {
	stub := &serviceStub{items: models.StarterItems()}
	s := NewStore(stub)
	require.NoError(t, s.Load(context.Background()))
	stub.err = errors.New("boom")

	_, err := s.SearchRemote(context.Background(), "sport")

	assert.Error(t, err)
	assert.Equal(t, Ready, s.State())
}

func Test_Find_Unknown(t *testing.T) {
	s := loadedStore(t)

	_, ok := s.Find(404)

	assert.False(t, ok)
}
