/*
# Module: storage/memory.go
In-memory implementation of the location directory for tests and demo mode.

## Linked Modules
- [storage/repository](./repository.go) - Directory interface
- [types/location](../types/location.go) - User, device, and sample shapes

## Tags
storage, in-memory, repository, testing

## Exports
MemoryDirectory, NewMemoryDirectory

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/memory.go" ;
    code:description "In-memory implementation of the location directory" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Directory interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "User, device, and sample shapes"
    ] ;
    code:exports :MemoryDirectory, :NewMemoryDirectory ;
    code:tags "storage", "in-memory", "repository", "testing" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"sync"

	"github.com/sadakpramodh/tom-location/types"
)

// MemoryDirectory is a map-backed Directory. Devices enumerate in insertion
// order, which stands in for the store's consistent enumeration order.
type MemoryDirectory struct {
	mu      sync.RWMutex
	users   []types.UserRecord
	devices map[string][]types.DeviceRecord
	samples map[string][]types.LocationSample
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		devices: make(map[string][]types.DeviceRecord),
		samples: make(map[string][]types.LocationSample),
	}
}

// AddUser registers a user record.
func (m *MemoryDirectory) AddUser(user types.UserRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, user)
}

// AddDevice registers a device under a user, appended in enumeration order.
func (m *MemoryDirectory) AddDevice(userKey string, device types.DeviceRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.devices[userKey] = append(m.devices[userKey], device)
}

// AddSample records a location sample for a device.
func (m *MemoryDirectory) AddSample(deviceID string, sample types.LocationSample) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples[deviceID] = append(m.samples[deviceID], sample)
}

// FindUserByEmail returns the first user whose email matches exactly.
func (m *MemoryDirectory) FindUserByEmail(ctx context.Context, email string) (*types.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// FindUserByKey returns the user with the given store key.
func (m *MemoryDirectory) FindUserByKey(ctx context.Context, key string) (*types.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Key == key {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// ListDevices returns a copy of the user's devices in insertion order.
func (m *MemoryDirectory) ListDevices(ctx context.Context, userKey string) ([]types.DeviceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	devices := make([]types.DeviceRecord, len(m.devices[userKey]))
	copy(devices, m.devices[userKey])
	return devices, nil
}

// LatestSample scans the device's samples for the maximum timestamp. The
// first sample seen wins ties, mirroring a descending indexed read.
func (m *MemoryDirectory) LatestSample(ctx context.Context, deviceID string) (*types.LocationSample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	samples := m.samples[deviceID]
	if len(samples) == 0 {
		return nil, nil
	}

	best := 0
	for i := 1; i < len(samples); i++ {
		if types.EpochMillis(samples[i].Timestamp) > types.EpochMillis(samples[best].Timestamp) {
			best = i
		}
	}

	sample := samples[best]
	return &sample, nil
}
