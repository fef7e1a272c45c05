/*
# Module: handlers/locations.go
Latest-locations API: resolves every configured profile and returns the
found subset as JSON.

## Linked Modules
- [locate/service](../locate/service.go) - Per-profile resolution
- [types/location](../types/location.go) - Profile and result shapes
- [handlers/format](./format.go) - IST display formatting

## Tags
http, api, location, json

## Exports
LocationEntry, HandleLocations

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/locations.go" ;
    code:description "Latest-locations API over the resolution service" ;
    code:linksTo [
        code:name "locate/service" ;
        code:path "../locate/service.go" ;
        code:relationship "Per-profile resolution"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Profile and result shapes"
    ], [
        code:name "handlers/format" ;
        code:path "./format.go" ;
        code:relationship "IST display formatting"
    ] ;
    code:exports :LocationEntry, :HandleLocations ;
    code:tags "http", "api", "location", "json" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sadakpramodh/tom-location/locate"
	"github.com/sadakpramodh/tom-location/types"
)

// LocationEntry is one resolved profile as served to the dashboard,
// extended with presentation fields the core does not know about.
type LocationEntry struct {
	types.ResolvedLocation
	Icon       string `json:"icon,omitempty"`
	UpdatedIST string `json:"updated_ist"`
}

// HandleLocations handles GET /api/locations. Profiles that resolve to
// nothing are simply absent from the response; one bad profile never
// affects the rest.
func HandleLocations(svc *locate.Service, profiles []types.Profile) http.HandlerFunc {
	iconByDisplay := make(map[string]string, len(profiles))
	for _, p := range profiles {
		iconByDisplay[p.Display] = p.Icon
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		results := svc.LocateAll(r.Context(), profiles)
		log.Printf("📍 Resolved %d/%d profiles", len(results), len(profiles))

		entries := make([]LocationEntry, 0, len(results))
		for _, loc := range results {
			entries = append(entries, LocationEntry{
				ResolvedLocation: loc,
				Icon:             iconByDisplay[loc.DisplayName],
				UpdatedIST:       FormatIST(loc.TimestampMS),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}
