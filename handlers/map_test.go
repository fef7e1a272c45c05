package handlers

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sadakpramodh/tom-location/locate"
	"github.com/sadakpramodh/tom-location/storage"
	"github.com/sadakpramodh/tom-location/types"
)

type noTiles struct{}

func (noTiles) Tile(z, x, y int) (image.Image, error) {
	return nil, errors.New("offline")
}

func TestHandleMapPNG(t *testing.T) {
	svc, profiles := newTestService()
	handler := HandleMapPNG(svc, profiles, noTiles{})

	req := httptest.NewRequest(http.MethodGet, "/api/map.png", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if _, err := png.Decode(bytes.NewReader(rec.Body.Bytes())); err != nil {
		t.Fatalf("body is not valid PNG: %v", err)
	}
}

func TestHandleMapPNGNoLocations(t *testing.T) {
	svc := locate.NewService(storage.NewMemoryDirectory())
	handler := HandleMapPNG(svc, []types.Profile{{Display: "Tom", Email: "tom@example.com"}}, noTiles{})

	req := httptest.NewRequest(http.MethodGet, "/api/map.png", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with nothing to render, got %d", rec.Code)
	}
}
