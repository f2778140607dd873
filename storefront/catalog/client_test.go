package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HTTPService_List(t *testing.T) {
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		gotSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Royal Enfield Classic 350","type":"Cruiser","price":193000,"image":"Zclassic350.jpg"}]`))
	}))
	defer srv.Close()

	svc := NewHTTPService(srv.URL, 2*time.Second)
	defer svc.Close()

	items, err := svc.List(context.Background(), "cruiser")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cruiser", gotSearch)
	assert.Equal(t, 193000.0, items[0].Price)
}

func Test_HTTPService_List_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := NewHTTPService(srv.URL, 2*time.Second)
	defer svc.Close()

	items, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func Test_HTTPService_List_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Server error while fetching items"}`))
	}))
	defer srv.Close()

	svc := NewHTTPService(srv.URL, 2*time.Second)
	defer svc.Close()

	_, err := svc.List(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "Server error while fetching items")
}
