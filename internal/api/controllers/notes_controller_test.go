package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"wander/pkg/memcache"
)

func newNotesRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewNotesController(memcache.NewSessionNotes())

	r := gin.New()
	r.PUT("/notes/:sessionId", controller.SaveNoteHandler)
	r.GET("/notes/:sessionId", controller.GetNoteHandler)
	return r
}

func TestNotesRoundTrip(t *testing.T) {
	r := newNotesRouter()

	put := httptest.NewRequest(http.MethodPut, "/notes/s1", strings.NewReader(`{"text":"pack an umbrella"}`))
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, put)
	if w.Code != http.StatusOK {
		t.Fatalf("save: expected 200, got %d", w.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/notes/s1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, get)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pack an umbrella") {
		t.Errorf("note text missing from response: %s", w.Body.String())
	}
}

func TestNotesUnknownSession(t *testing.T) {
	r := newNotesRouter()

	get := httptest.NewRequest(http.MethodGet, "/notes/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, get)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
