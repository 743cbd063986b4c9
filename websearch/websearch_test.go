package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBuildsTravelQuery(t *testing.T) {
	var got searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"results": [
			{"title": "Best beaches", "url": "https://tripadvisor.com/x", "content": "...", "score": 0.9},
			{"title": "Where to eat", "url": "https://lonelyplanet.com/y", "content": "...", "score": 0.8}
		]}`)
	}))
	defer srv.Close()

	client := NewClientWithURL("test-key", srv.URL)
	results, err := client.Search(context.Background(), "best snorkeling spots")
	require.NoError(t, err)

	assert.Equal(t, "best snorkeling spots Mauritius travel guide recommendations", got.Query)
	assert.Equal(t, "basic", got.SearchDepth)
	assert.Equal(t, 5, got.MaxResults)
	assert.Contains(t, got.IncludeDomains, "tripadvisor.com")
	assert.Contains(t, got.IncludeDomains, "mauritius.travel")
	assert.Len(t, got.IncludeDomains, 5)

	require.Len(t, results, 2)
	assert.Equal(t, "Best beaches", results[0].Title)
}

func TestSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"title": "1"}, {"title": "2"}, {"title": "3"},
			{"title": "4"}, {"title": "5"}, {"title": "6"}, {"title": "7"}
		]}`)
	}))
	defer srv.Close()

	client := NewClientWithURL("test-key", srv.URL)
	results, err := client.Search(context.Background(), "things to do")
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestSearchCachesByQuery(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer srv.Close()

	client := NewClientWithURL("test-key", srv.URL)
	_, err := client.Search(context.Background(), "hiking trails")
	require.NoError(t, err)
	_, err = client.Search(context.Background(), "hiking trails")
	require.NoError(t, err)
	_, err = client.Search(context.Background(), "street food")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestSearchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClientWithURL("test-key", srv.URL)
	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")

	client = NewClientWithURL("", srv.URL)
	_, err = client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY")
}
