package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/rainman226/asa-bot-f1-service/internal/storage"
)

func TestValidateSetTimezoneRequest(t *testing.T) {
	assert.NoError(t, ValidateSetTimezoneRequest(&SetTimezoneRequest{
		ServerID: "guild-1", Timezone: "Europe/Berlin",
	}))
	assert.Error(t, ValidateSetTimezoneRequest(&SetTimezoneRequest{Timezone: "Europe/Berlin"}))
	assert.Error(t, ValidateSetTimezoneRequest(&SetTimezoneRequest{ServerID: "guild-1"}))
}

func TestLookupLocation(t *testing.T) {
	loc, err := LookupLocation("America/New_York")
	assert.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	_, err = LookupLocation("UTC")
	assert.NoError(t, err)

	_, err = LookupLocation("Not/AZone")
	assert.ErrorIs(t, err, ErrUnknownTimezone)

	_, err = LookupLocation("Local")
	assert.ErrorIs(t, err, ErrUnknownTimezone)

	_, err = LookupLocation("")
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestClientLocation_DefaultsToUTC(t *testing.T) {
	repo := storage.NewMemoryStorage()
	loc, err := ClientLocation(context.Background(), repo, "never-written")
	assert.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestClientLocation_UsesStoredZone(t *testing.T) {
	repo := storage.NewMemoryStorage()
	assert.NoError(t, repo.SetTimezone(context.Background(), "guild-1", "Asia/Tokyo"))

	loc, err := ClientLocation(context.Background(), repo, "guild-1")
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}
