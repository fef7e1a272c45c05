/*
# Module: types/location.go
Core data shapes for users, devices, and location samples as read from the
document store.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, location, identity

## Exports
UserRecord, DeviceRecord, LocationSample, ResolvedLocation

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/location.go" ;
    code:description "Core data shapes for users, devices, and location samples" ;
    code:exports :UserRecord, :DeviceRecord, :LocationSample, :ResolvedLocation ;
    code:tags "data-types", "location", "identity" .
<!-- End LinkedDoc RDF -->
*/
package types

// UserRecord is a user as stored by the external device pipeline. The key is
// the store-assigned document id; email is expected unique but not enforced
// here.
type UserRecord struct {
	Key   string `json:"user_key" dynamodbav:"user_key"`
	Email string `json:"email" dynamodbav:"email"`
}

// DeviceRecord belongs to exactly one user. LastUpdated is kept untyped
// because the pipeline writes it inconsistently (number, numeric string, or
// missing); EpochMillis coerces it with a 0 default.
type DeviceRecord struct {
	ID          string `json:"device_id" dynamodbav:"device_id"`
	LastUpdated any    `json:"lastUpdated,omitempty" dynamodbav:"lastUpdated"`
}

// LocationSample is a single GPS fix recorded for a device. Coordinates may
// arrive as numbers or numeric strings and must pass Coordinate before use.
type LocationSample struct {
	Latitude  any `json:"latitude" dynamodbav:"latitude"`
	Longitude any `json:"longitude" dynamodbav:"longitude"`
	Timestamp any `json:"timestamp" dynamodbav:"timestamp"`
}

// ResolvedLocation is the freshest known coordinate for one profile. It is
// recomputed on every pass and never persisted. A TimestampMS of 0 means
// "unknown/never" and must be rendered as a placeholder, not a date.
type ResolvedLocation struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	TimestampMS int64   `json:"timestamp_ms"`
	DeviceID    string  `json:"device_id"`
	UserKey     string  `json:"user_key"`
	DisplayName string  `json:"display_name"`
}

// Profile is one configured tracked identity.
type Profile struct {
	Display     string `json:"display"`
	Email       string `json:"email"`
	ForceDevice string `json:"force_device,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
