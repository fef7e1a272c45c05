package locate

import (
	"context"
	"testing"

	"github.com/sadakpramodh/tom-location/storage"
	"github.com/sadakpramodh/tom-location/types"
)

// End-to-end: no field-indexed user, legacy-keyed document, one device with
// no lastUpdated, one sample.
func TestLocateLegacyKeyedUserEndToEnd(t *testing.T) {
	dir := storage.NewMemoryDirectory()
	dir.AddUser(types.UserRecord{Key: "a_at_b_dot_com"})
	dir.AddDevice("a_at_b_dot_com", types.DeviceRecord{ID: "pixel-7"})
	dir.AddSample("pixel-7", types.LocationSample{Latitude: 1.0, Longitude: 2.0, Timestamp: 42})

	svc := NewService(dir)
	loc, ok := svc.Locate(context.Background(), types.Profile{Display: "Tom", Email: "a@b.com"})
	if !ok {
		t.Fatal("expected end-to-end resolution")
	}

	if loc.Lat != 1.0 || loc.Lng != 2.0 {
		t.Fatalf("unexpected coordinates (%v, %v)", loc.Lat, loc.Lng)
	}
	if loc.TimestampMS != 42 {
		t.Fatalf("unexpected timestamp %d", loc.TimestampMS)
	}
	if loc.DeviceID != "pixel-7" {
		t.Fatalf("unexpected device %q", loc.DeviceID)
	}
	if loc.UserKey != "a_at_b_dot_com" {
		t.Fatalf("unexpected user key %q", loc.UserKey)
	}
	if loc.DisplayName != "Tom" {
		t.Fatalf("display name not attached: %q", loc.DisplayName)
	}
}

func TestLocateAllIndependentProfiles(t *testing.T) {
	dir := storage.NewMemoryDirectory()
	dir.AddUser(types.UserRecord{Key: "tom_key", Email: "tom@example.com"})
	dir.AddDevice("tom_key", types.DeviceRecord{ID: "tom-phone", LastUpdated: 5})
	dir.AddSample("tom-phone", types.LocationSample{Latitude: 12.9, Longitude: 77.5, Timestamp: 100})

	dir.AddUser(types.UserRecord{Key: "mom_key", Email: "mom@example.com"})
	// Mom has a device but no samples: she must drop out without affecting
	// the others.
	dir.AddDevice("mom_key", types.DeviceRecord{ID: "mom-phone", LastUpdated: 9})

	profiles := []types.Profile{
		{Display: "Tom", Email: "tom@example.com"},
		{Display: "Mom", Email: "mom@example.com"},
		{Display: "Jerry", Email: "jerry@nowhere.com"},
		{Display: "Blank"},
	}

	results := NewService(dir).LocateAll(context.Background(), profiles)
	if len(results) != 1 {
		t.Fatalf("expected exactly one resolved profile, got %d", len(results))
	}
	if results[0].DisplayName != "Tom" {
		t.Fatalf("unexpected profile resolved: %s", results[0].DisplayName)
	}
}

func TestLocateAllKeepsProfileOrder(t *testing.T) {
	dir := storage.NewMemoryDirectory()
	for _, name := range []string{"alpha", "beta", "gamma"} {
		key := name + "_key"
		dir.AddUser(types.UserRecord{Key: key, Email: name + "@example.com"})
		dir.AddDevice(key, types.DeviceRecord{ID: name + "-dev"})
		dir.AddSample(name+"-dev", types.LocationSample{Latitude: 1.0, Longitude: 2.0, Timestamp: 10})
	}

	profiles := []types.Profile{
		{Display: "Gamma", Email: "gamma@example.com"},
		{Display: "Alpha", Email: "alpha@example.com"},
		{Display: "Beta", Email: "beta@example.com"},
	}

	results := NewService(dir).LocateAll(context.Background(), profiles)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"Gamma", "Alpha", "Beta"} {
		if results[i].DisplayName != want {
			t.Fatalf("result %d = %s, want %s", i, results[i].DisplayName, want)
		}
	}
}
