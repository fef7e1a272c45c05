package mapimage

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/sadakpramodh/tom-location/types"
)

type failingFetcher struct{}

func (failingFetcher) Tile(z, x, y int) (image.Image, error) {
	return nil, errors.New("tile server unreachable")
}

type solidFetcher struct{}

func (solidFetcher) Tile(z, x, y int) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 256, 256)), nil
}

func TestRenderFallsBackWhenTilesFail(t *testing.T) {
	results := []types.ResolvedLocation{
		{Lat: 12.9716, Lng: 77.5946, DisplayName: "Tom"},
	}

	data, err := Render(failingFetcher{}, results)
	if err != nil {
		t.Fatalf("tile failures must not fail the render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != canvasSize || img.Bounds().Dy() != canvasSize {
		t.Fatalf("unexpected canvas size %v", img.Bounds())
	}
}

func TestRenderWithTiles(t *testing.T) {
	results := []types.ResolvedLocation{
		{Lat: 12.9716, Lng: 77.5946, DisplayName: "Tom"},
		{Lat: 12.9352, Lng: 77.6245, DisplayName: "Jerry"},
	}

	data, err := Render(solidFetcher{}, results)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
}

func TestRenderEmptyResults(t *testing.T) {
	if _, err := Render(solidFetcher{}, nil); err == nil {
		t.Fatal("expected an error for an empty result set")
	}
}

func TestWorldPixelsOrigin(t *testing.T) {
	// (0,0) projects to the center of the world at any zoom.
	x, y := worldPixels(0, 0, 0)
	if x != 128 || y != 128 {
		t.Fatalf("expected (128, 128) at zoom 0, got (%v, %v)", x, y)
	}

	x, y = worldPixels(0, 0, 2)
	if x != 512 || y != 512 {
		t.Fatalf("expected (512, 512) at zoom 2, got (%v, %v)", x, y)
	}
}

func TestFitZoomSinglePointUsesMaxZoom(t *testing.T) {
	results := []types.ResolvedLocation{{Lat: 12.9716, Lng: 77.5946}}
	if z := fitZoom(results); z != maxZoom {
		t.Fatalf("a single point fits at any zoom, got %d", z)
	}
}

func TestFitZoomSpreadPointsZoomsOut(t *testing.T) {
	// Bengaluru and Delhi cannot share a 3x3 tile canvas at street zoom.
	results := []types.ResolvedLocation{
		{Lat: 12.9716, Lng: 77.5946},
		{Lat: 28.6139, Lng: 77.2090},
	}
	if z := fitZoom(results); z >= 10 {
		t.Fatalf("expected a wide zoom for distant points, got %d", z)
	}
}
