/*
# Module: storage/repository.go
Repository interface for the read-only location directory.

## Linked Modules
- [types/location](../types/location.go) - User, device, and sample shapes

## Tags
storage, repository, interface, read-only

## Exports
Directory

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/repository.go" ;
    code:description "Repository interface for the read-only location directory" ;
    code:linksTo [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "User, device, and sample shapes"
    ] ;
    code:exports :Directory ;
    code:tags "storage", "repository", "interface", "read-only" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"

	"github.com/sadakpramodh/tom-location/types"
)

// Directory is the read surface the resolution core needs from the document
// store. Lookups that find nothing return (nil, nil); errors are reserved
// for store failures. Every call is a bounded point or limit-1 query.
type Directory interface {
	// FindUserByEmail returns the single user whose email field equals the
	// input, case-sensitive.
	FindUserByEmail(ctx context.Context, email string) (*types.UserRecord, error)

	// FindUserByKey returns the user whose store-assigned key equals the
	// input, literally.
	FindUserByKey(ctx context.Context, key string) (*types.UserRecord, error)

	// ListDevices enumerates all devices under a user. Enumeration order is
	// consistent within one store backend and is the documented tie-break
	// for device selection.
	ListDevices(ctx context.Context, userKey string) ([]types.DeviceRecord, error)

	// LatestSample returns the sample with the maximum timestamp for a
	// device, or (nil, nil) when the device has none.
	LatestSample(ctx context.Context, deviceID string) (*types.LocationSample, error)
}
