package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNominatimClientResolvesQuery(t *testing.T) {
	var gotQuery, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Query().Get("format") != "json" || r.URL.Query().Get("limit") != "1" {
			t.Errorf("unexpected query params: %v", r.URL.Query())
		}
		w.Write([]byte(`[{"lat":"48.8606","lon":"2.3376"}]`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	point, ok := client.Geocode(context.Background(), "Louvre Museum, Paris")
	if !ok {
		t.Fatal("expected a resolved point")
	}

	if gotQuery != "Louvre Museum, Paris" {
		t.Errorf("unexpected query sent: %q", gotQuery)
	}
	if gotAgent == "" {
		t.Error("expected a User-Agent header")
	}
	if point.Lat != 48.8606 || point.Lon != 2.3376 {
		t.Errorf("unexpected point: %+v", point)
	}
}

func TestNominatimClientNoResultIsMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	if _, ok := client.Geocode(context.Background(), "???"); ok {
		t.Error("expected miss for empty result set")
	}
}

func TestNominatimClientServiceErrorIsMissNotFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	if _, ok := client.Geocode(context.Background(), "Paris"); ok {
		t.Error("expected miss for 500 response")
	}
}

func TestNominatimClientUnreachableServiceIsMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewNominatimClient(server.URL)
	if _, ok := client.Geocode(context.Background(), "Paris"); ok {
		t.Error("expected miss when the service is unreachable")
	}
}

func TestNominatimClientMalformedBodyIsMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	if _, ok := client.Geocode(context.Background(), "Paris"); ok {
		t.Error("expected miss for malformed body")
	}
}

func TestNominatimClientEmptyQueryShortCircuits(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewNominatimClient(server.URL)
	if _, ok := client.Geocode(context.Background(), ""); ok {
		t.Error("expected miss for empty query")
	}
	if called {
		t.Error("empty query must not reach the service")
	}
}
