package main

import (
	"log"

	"github.com/sadakpramodh/tom-location/locate"
	"github.com/sadakpramodh/tom-location/storage"
	"github.com/sadakpramodh/tom-location/types"
)

// seedDemoDirectory builds an in-memory directory with one device and one
// sample per configured profile, scattered around Bengaluru. Lets the
// dashboard run without AWS credentials.
func seedDemoDirectory(profiles []types.Profile) *storage.MemoryDirectory {
	dir := storage.NewMemoryDirectory()

	base := []struct{ lat, lng float64 }{
		{12.9716, 77.5946},
		{12.9352, 77.6245},
		{13.0358, 77.5970},
		{12.9121, 77.6446},
	}

	for i, p := range profiles {
		if p.Email == "" {
			continue
		}
		// Keyed only by the legacy convention so demo mode also exercises
		// the fallback lookup tier.
		key := locate.SafeID(p.Email)
		dir.AddUser(types.UserRecord{Key: key})

		deviceID := "demo-device-" + key
		dir.AddDevice(key, types.DeviceRecord{ID: deviceID})

		spot := base[i%len(base)]
		dir.AddSample(deviceID, types.LocationSample{
			Latitude:  spot.lat,
			Longitude: spot.lng,
			Timestamp: int64(1700000000000 + i*60000),
		})
	}

	log.Printf("✅ Demo mode: in-memory directory seeded for %d profiles", len(profiles))
	return dir
}
