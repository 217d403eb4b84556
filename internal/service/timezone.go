package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rainman226/asa-bot-f1-service/internal/storage"
)

var validate = validator.New()

// ErrUnknownTimezone rejects timezone names the zoneinfo database does
// not know. Validation happens at write time only; values read back
// from the store have already passed it.
var ErrUnknownTimezone = errors.New("invalid timezone")

type SetTimezoneRequest struct {
	ServerID string `json:"server_id" validate:"required"`
	Timezone string `json:"timezone" validate:"required"`
}

func ValidateSetTimezoneRequest(req *SetTimezoneRequest) error {
	return validate.Struct(req)
}

// LookupLocation resolves an IANA zone name. "Local" is a Go-ism, not
// an IANA name, so it is rejected even though LoadLocation accepts it.
func LookupLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, ErrUnknownTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrUnknownTimezone
	}
	return loc, nil
}

// ClientLocation loads the caller's stored preference, defaulting to
// UTC when none was ever set.
func ClientLocation(ctx context.Context, repo storage.TimezoneRepository, serverID string) (*time.Location, error) {
	name, err := repo.GetTimezone(ctx, serverID)
	if err != nil {
		return nil, err
	}
	return time.LoadLocation(name)
}
