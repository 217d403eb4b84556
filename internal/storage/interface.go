package storage

import "context"

// TimezoneRepository is the single persistent table of the service:
// server_id -> IANA timezone name.
type TimezoneRepository interface {
	// GetTimezone returns the stored zone for serverID, or "UTC" when no
	// preference exists. Absence is not an error.
	GetTimezone(ctx context.Context, serverID string) (string, error)
	// SetTimezone upserts the preference. The caller validates the zone
	// name before calling; the store persists whatever it is given.
	SetTimezone(ctx context.Context, serverID, timezone string) error
}
