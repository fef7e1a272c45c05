/*
# Module: mapimage/render.go
Static map PNG renderer: OSM tiles composited with marker dots and name
labels.

## Linked Modules
- [clients/tiles](../clients/tiles.go) - Tile fetching
- [types/location](../types/location.go) - Resolved location shape

## Tags
map, rendering, png, mercator

## Exports
TileFetcher, Render

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "mapimage/render.go" ;
    code:description "Static map PNG renderer over OSM tiles" ;
    code:linksTo [
        code:name "clients/tiles" ;
        code:path "../clients/tiles.go" ;
        code:relationship "Tile fetching"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Resolved location shape"
    ] ;
    code:exports :TileFetcher, :Render ;
    code:tags "map", "rendering", "png", "mercator" .
<!-- End LinkedDoc RDF -->
*/
package mapimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/sadakpramodh/tom-location/types"
)

const (
	tileSize   = 256
	gridTiles  = 3 // 3x3 tile canvas
	canvasSize = tileSize * gridTiles
	maxZoom    = 16
	minZoom    = 2
	edgeMargin = 48 // keep markers off the canvas edge
)

// TileFetcher is the slice of the tile client the renderer needs.
type TileFetcher interface {
	Tile(z, x, y int) (image.Image, error)
}

// Render composites a static map PNG with one labeled marker per resolved
// location. Tile fetch failures degrade to a gradient background; the
// markers still render so the image stays useful offline.
func Render(fetcher TileFetcher, results []types.ResolvedLocation) ([]byte, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no locations to render")
	}

	zoom := fitZoom(results)
	centerX, centerY := centroidPixels(results, zoom)

	img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
	if !drawTiles(img, fetcher, zoom, centerX, centerY) {
		drawGradientBackground(img)
	}

	// Canvas origin in world pixel space.
	originX := centerX - canvasSize/2
	originY := centerY - canvasSize/2

	face := labelFace()
	for _, r := range results {
		px, py := worldPixels(r.Lat, r.Lng, zoom)
		x := int(px - originX)
		y := int(py - originY)
		drawMarker(img, x, y)
		drawLabel(img, face, x, y, r.DisplayName)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode map image: %w", err)
	}
	return buf.Bytes(), nil
}

// worldPixels projects a coordinate to global web-mercator pixel space.
func worldPixels(lat, lng float64, zoom int) (float64, float64) {
	// Web mercator is undefined at the poles.
	lat = math.Max(-85.0511, math.Min(85.0511, lat))

	n := float64(tileSize) * math.Exp2(float64(zoom))
	x := (lng + 180.0) / 360.0 * n

	latRad := lat * math.Pi / 180.0
	y := (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n

	return x, y
}

// fitZoom picks the highest zoom at which every point fits on the canvas
// around the centroid, leaving an edge margin.
func fitZoom(results []types.ResolvedLocation) int {
	for zoom := maxZoom; zoom > minZoom; zoom-- {
		cx, cy := centroidPixels(results, zoom)
		fits := true
		for _, r := range results {
			px, py := worldPixels(r.Lat, r.Lng, zoom)
			if math.Abs(px-cx) > canvasSize/2-edgeMargin || math.Abs(py-cy) > canvasSize/2-edgeMargin {
				fits = false
				break
			}
		}
		if fits {
			return zoom
		}
	}
	return minZoom
}

func centroidPixels(results []types.ResolvedLocation, zoom int) (float64, float64) {
	var sumX, sumY float64
	for _, r := range results {
		px, py := worldPixels(r.Lat, r.Lng, zoom)
		sumX += px
		sumY += py
	}
	return sumX / float64(len(results)), sumY / float64(len(results))
}

// drawTiles fills the canvas with the 3x3 tile neighborhood around the
// center. Returns false when any tile failed, signalling the caller to fall
// back to a plain background.
func drawTiles(img *image.RGBA, fetcher TileFetcher, zoom int, centerX, centerY float64) bool {
	if fetcher == nil {
		return false
	}

	maxTile := int(math.Exp2(float64(zoom))) - 1
	centerTileX := int(centerX) / tileSize
	centerTileY := int(centerY) / tileSize

	// Canvas pixel of the top-left corner of the center tile.
	baseX := centerTileX*tileSize - (int(centerX) - canvasSize/2)
	baseY := centerTileY*tileSize - (int(centerY) - canvasSize/2)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			tx := centerTileX + dx
			ty := centerTileY + dy
			if tx < 0 || tx > maxTile || ty < 0 || ty > maxTile {
				continue
			}

			tile, err := fetcher.Tile(zoom, tx, ty)
			if err != nil {
				log.Printf("⚠️  Tile fetch failed, falling back to plain background: %v", err)
				return false
			}

			target := image.Rect(
				baseX+dx*tileSize,
				baseY+dy*tileSize,
				baseX+(dx+1)*tileSize,
				baseY+(dy+1)*tileSize,
			)
			draw.Draw(img, target, tile, tile.Bounds().Min, draw.Src)
		}
	}

	return true
}

// drawGradientBackground fills the image with a gradient
func drawGradientBackground(img *image.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		ratio := float64(y) / float64(bounds.Max.Y)
		r := uint8(20 + ratio*40)
		g := uint8(20 + ratio*60)
		b := uint8(40 + ratio*80)
		c := color.RGBA{r, g, b, 255}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// drawMarker draws a filled red dot with a white rim at the given canvas
// position.
func drawMarker(img *image.RGBA, cx, cy int) {
	const radius = 7
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > radius {
				continue
			}
			c := color.RGBA{220, 50, 50, 255}
			if dist > radius-1.5 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(cx+dx, cy+dy, c)
		}
	}
}

func labelFace() font.Face {
	parsedFont, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		log.Printf("Failed to parse font: %v", err)
		return nil
	}

	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawLabel renders the profile name beside its marker with a dark halo so
// it stays readable over any tile.
func drawLabel(img *image.RGBA, face font.Face, x, y int, text string) {
	if face == nil || text == "" {
		return
	}

	drawAt := func(ox, oy int, col color.Color) {
		drawer := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(col),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(x + 11 + ox),
				Y: fixed.I(y + 5 + oy),
			},
		}
		drawer.DrawString(text)
	}

	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawAt(off[0], off[1], color.RGBA{20, 20, 20, 255})
	}
	drawAt(0, 0, color.RGBA{255, 255, 255, 255})
}
