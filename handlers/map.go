/*
# Module: handlers/map.go
Static map PNG endpoint: resolves all profiles and renders them as one
image.

## Linked Modules
- [locate/service](../locate/service.go) - Per-profile resolution
- [mapimage/render](../mapimage/render.go) - PNG composition
- [types/location](../types/location.go) - Profile shapes

## Tags
http, api, map, png

## Exports
HandleMapPNG

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/map.go" ;
    code:description "Static map PNG endpoint over the resolution service" ;
    code:linksTo [
        code:name "locate/service" ;
        code:path "../locate/service.go" ;
        code:relationship "Per-profile resolution"
    ], [
        code:name "mapimage/render" ;
        code:path "../mapimage/render.go" ;
        code:relationship "PNG composition"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Profile shapes"
    ] ;
    code:exports :HandleMapPNG ;
    code:tags "http", "api", "map", "png" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"log"
	"net/http"

	"github.com/sadakpramodh/tom-location/locate"
	"github.com/sadakpramodh/tom-location/mapimage"
	"github.com/sadakpramodh/tom-location/types"
)

// HandleMapPNG handles GET /api/map.png. It is the no-JavaScript fallback
// for the Leaflet dashboard: one freshly rendered image per request.
func HandleMapPNG(svc *locate.Service, profiles []types.Profile, fetcher mapimage.TileFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		results := svc.LocateAll(r.Context(), profiles)
		if len(results) == 0 {
			http.Error(w, "No locations found", http.StatusNotFound)
			return
		}

		data, err := mapimage.Render(fetcher, results)
		if err != nil {
			log.Printf("⚠️  Map render failed: %v", err)
			http.Error(w, "Failed to render map", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(data)
	}
}
