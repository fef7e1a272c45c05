/*
# Module: locate/service.go
Composed per-profile resolution: identity resolver then location selector.

## Linked Modules
- [locate/resolver](./resolver.go) - Email to user record
- [locate/selector](./selector.go) - Device and sample selection
- [storage/repository](../storage/repository.go) - Directory interface
- [types/location](../types/location.go) - Profile and result shapes

## Tags
location, resolution, service, fan-out

## Exports
Service, NewService

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "locate/service.go" ;
    code:description "Composed per-profile resolution: resolver then selector" ;
    code:linksTo [
        code:name "locate/resolver" ;
        code:path "./resolver.go" ;
        code:relationship "Email to user record"
    ], [
        code:name "locate/selector" ;
        code:path "./selector.go" ;
        code:relationship "Device and sample selection"
    ], [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Directory interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Profile and result shapes"
    ] ;
    code:exports :Service, :NewService ;
    code:tags "location", "resolution", "service", "fan-out" .
<!-- End LinkedDoc RDF -->
*/
package locate

import (
	"context"
	"sync"

	"github.com/sadakpramodh/tom-location/storage"
	"github.com/sadakpramodh/tom-location/types"
)

// Service resolves profiles end to end. It holds no per-call state; every
// invocation recomputes from the store.
type Service struct {
	resolver *Resolver
	selector *Selector
}

// NewService creates a resolution service over the given directory.
func NewService(dir storage.Directory) *Service {
	return &Service{
		resolver: NewResolver(dir),
		selector: NewSelector(dir),
	}
}

// Locate resolves one profile to its freshest known coordinate.
func (s *Service) Locate(ctx context.Context, profile types.Profile) (types.ResolvedLocation, bool) {
	user, ok := s.resolver.Resolve(ctx, profile.Email)
	if !ok {
		return types.ResolvedLocation{}, false
	}

	loc, ok := s.selector.Select(ctx, user, profile.ForceDevice)
	if !ok {
		return types.ResolvedLocation{}, false
	}

	loc.DisplayName = profile.Display
	return loc, true
}

// LocateAll resolves every profile concurrently. Profiles are independent;
// a miss or store failure for one never affects the others. Results come
// back in profile order with misses dropped, so the page renders stably.
func (s *Service) LocateAll(ctx context.Context, profiles []types.Profile) []types.ResolvedLocation {
	found := make([]*types.ResolvedLocation, len(profiles))

	var wg sync.WaitGroup
	for i, p := range profiles {
		if p.Email == "" {
			continue
		}
		wg.Add(1)
		go func(i int, p types.Profile) {
			defer wg.Done()
			if loc, ok := s.Locate(ctx, p); ok {
				found[i] = &loc
			}
		}(i, p)
	}
	wg.Wait()

	results := make([]types.ResolvedLocation, 0, len(profiles))
	for _, loc := range found {
		if loc != nil {
			results = append(results, *loc)
		}
	}
	return results
}
