/*
# Module: locate/selector.go
Location selection: pick one active device for a user, then its freshest
valid sample.

## Linked Modules
- [storage/repository](../storage/repository.go) - Directory interface
- [types/location](../types/location.go) - Device, sample, and result shapes
- [types/coerce](../types/coerce.go) - Lenient numeric coercion

## Tags
location, selection, device, recency

## Exports
Selector, NewSelector

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "locate/selector.go" ;
    code:description "Device and freshest-sample selection for a resolved user" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Directory interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Device, sample, and result shapes"
    ], [
        code:name "types/coerce" ;
        code:path "../types/coerce.go" ;
        code:relationship "Lenient numeric coercion"
    ] ;
    code:exports :Selector, :NewSelector ;
    code:tags "location", "selection", "device", "recency" .
<!-- End LinkedDoc RDF -->
*/
package locate

import (
	"context"
	"log"

	"github.com/sadakpramodh/tom-location/storage"
	"github.com/sadakpramodh/tom-location/types"
)

// Selector picks one device per user and that device's latest valid sample.
type Selector struct {
	dir storage.Directory
}

// NewSelector creates a selector over the given directory.
func NewSelector(dir storage.Directory) *Selector {
	return &Selector{dir: dir}
}

// Select resolves the freshest known coordinate for a user. Device policy,
// first match wins:
//  1. forcedDeviceID, when it names a device that exists under the user
//  2. the device with the largest lastUpdated (absent/malformed counts as 0)
//
// Ties on lastUpdated go to the first device in enumeration order. The
// selected device's maximum-timestamp sample is the only one considered: if
// it is missing or its coordinates do not coerce to finite numbers, the
// whole resolution fails with found=false. Store failures at any step are
// logged and degrade to found=false.
func (s *Selector) Select(ctx context.Context, user types.UserRecord, forcedDeviceID string) (types.ResolvedLocation, bool) {
	devices, err := s.dir.ListDevices(ctx, user.Key)
	if err != nil {
		log.Printf("⚠️  Device listing failed for %s: %v", user.Key, err)
		return types.ResolvedLocation{}, false
	}
	if len(devices) == 0 {
		return types.ResolvedLocation{}, false
	}

	device := pickDevice(devices, forcedDeviceID)

	sample, err := s.dir.LatestSample(ctx, device.ID)
	if err != nil {
		log.Printf("⚠️  Sample lookup failed for device %s: %v", device.ID, err)
		return types.ResolvedLocation{}, false
	}
	if sample == nil {
		return types.ResolvedLocation{}, false
	}

	lat, ok := types.Coordinate(sample.Latitude)
	if !ok {
		log.Printf("⚠️  Device %s latest sample has non-numeric latitude, dropping", device.ID)
		return types.ResolvedLocation{}, false
	}
	lng, ok := types.Coordinate(sample.Longitude)
	if !ok {
		log.Printf("⚠️  Device %s latest sample has non-numeric longitude, dropping", device.ID)
		return types.ResolvedLocation{}, false
	}

	return types.ResolvedLocation{
		Lat:         lat,
		Lng:         lng,
		TimestampMS: types.EpochMillis(sample.Timestamp),
		DeviceID:    device.ID,
		UserKey:     user.Key,
	}, true
}

// pickDevice applies the selection policy. With no forced match it is a
// strict-greater max scan, so the first-enumerated device wins ties — the
// same device the original stable descending sort produced.
func pickDevice(devices []types.DeviceRecord, forcedDeviceID string) types.DeviceRecord {
	if forcedDeviceID != "" {
		for _, d := range devices {
			if d.ID == forcedDeviceID {
				return d
			}
		}
	}

	best := 0
	for i := 1; i < len(devices); i++ {
		if types.EpochMillis(devices[i].LastUpdated) > types.EpochMillis(devices[best].LastUpdated) {
			best = i
		}
	}
	return devices[best]
}
