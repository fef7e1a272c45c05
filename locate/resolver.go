/*
# Module: locate/resolver.go
Identity resolution: email address to a unique user record.

## Linked Modules
- [locate/safeid](./safeid.go) - Legacy document id derivation
- [storage/repository](../storage/repository.go) - Directory interface
- [types/location](../types/location.go) - User record shape

## Tags
identity, resolution, lookup

## Exports
Resolver, NewResolver

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "locate/resolver.go" ;
    code:description "Identity resolution: email address to a unique user record" ;
    code:linksTo [
        code:name "locate/safeid" ;
        code:path "./safeid.go" ;
        code:relationship "Legacy document id derivation"
    ], [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Directory interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "User record shape"
    ] ;
    code:exports :Resolver, :NewResolver ;
    code:tags "identity", "resolution", "lookup" .
<!-- End LinkedDoc RDF -->
*/
package locate

import (
	"context"
	"log"

	"github.com/sadakpramodh/tom-location/storage"
	"github.com/sadakpramodh/tom-location/types"
)

// Resolver maps an email address to a user record using a two-tier lookup:
// the indexed email field first, then the legacy SafeID document key. The
// tiers are tried in strict priority order and never merged.
type Resolver struct {
	dir storage.Directory
}

// NewResolver creates a resolver over the given directory.
func NewResolver(dir storage.Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve returns the user record for an email, or found=false when neither
// lookup tier matches. A store failure on either tier is logged and treated
// as a miss for that tier only; the resolver never surfaces an error.
func (r *Resolver) Resolve(ctx context.Context, email string) (types.UserRecord, bool) {
	user, err := r.dir.FindUserByEmail(ctx, email)
	if err != nil {
		log.Printf("⚠️  Email lookup failed for %s: %v", email, err)
	} else if user != nil {
		return *user, true
	}

	user, err = r.dir.FindUserByKey(ctx, SafeID(email))
	if err != nil {
		log.Printf("⚠️  Fallback key lookup failed for %s: %v", email, err)
		return types.UserRecord{}, false
	}
	if user == nil {
		return types.UserRecord{}, false
	}

	return *user, true
}
