package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/rainman226/asa-bot-f1-service/internal/upstream"
)

func utcDate(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestNextRace_PicksFirstFutureRace(t *testing.T) {
	races := []upstream.Race{
		{RaceName: "Spanish Grand Prix", Date: "2024-06-23", Time: "13:00:00Z"},
		{RaceName: "British Grand Prix", Date: "2024-07-07", Time: "14:00:00Z"},
		{RaceName: "Hungarian Grand Prix", Date: "2024-07-21", Time: "13:00:00Z"},
	}
	now := utcDate(2024, time.July, 1, 0)

	next, err := NextRace(races, now, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, "British Grand Prix", next.RaceName)
	assert.Equal(t, "2024-07-07", next.Race.Date)
	assert.Equal(t, "14:00:00 UTC", next.Race.Time)
}

func TestNextRace_RaceStartingExactlyNowIsNotUpcoming(t *testing.T) {
	races := []upstream.Race{
		{RaceName: "British Grand Prix", Date: "2024-07-07", Time: "14:00:00Z"},
	}
	now := time.Date(2024, time.July, 7, 14, 0, 0, 0, time.UTC)

	_, err := NextRace(races, now, time.UTC)
	assert.ErrorIs(t, err, ErrNoUpcomingRace)
}

func TestNextRace_AllRacesInPast(t *testing.T) {
	races := []upstream.Race{
		{RaceName: "Bahrain Grand Prix", Date: "2024-03-02", Time: "15:00:00Z"},
		{RaceName: "Saudi Arabian Grand Prix", Date: "2024-03-09", Time: "17:00:00Z"},
	}
	_, err := NextRace(races, utcDate(2024, time.December, 1, 0), time.UTC)
	assert.ErrorIs(t, err, ErrNoUpcomingRace)
}

func TestNextRace_EmptySchedule(t *testing.T) {
	_, err := NextRace(nil, utcDate(2024, time.July, 1, 0), time.UTC)
	assert.ErrorIs(t, err, ErrNoUpcomingRace)
}

func TestNextRace_OmitsSessionsWithoutDateTime(t *testing.T) {
	races := []upstream.Race{
		{
			RaceName:      "Austrian Grand Prix",
			Date:          "2024-06-30",
			Time:          "13:00:00Z",
			FirstPractice: &upstream.Session{Date: "2024-06-28", Time: "10:30:00Z"},
			Qualifying:    &upstream.Session{Date: "2024-06-29", Time: "14:00:00Z"},
			// sprint weekend: no FP2/FP3 blocks at all
		},
	}
	next, err := NextRace(races, utcDate(2024, time.June, 1, 0), time.UTC)
	assert.NoError(t, err)
	assert.NotNil(t, next.Race)
	assert.NotNil(t, next.FP1)
	assert.NotNil(t, next.Qualifying)
	assert.Nil(t, next.FP2)
	assert.Nil(t, next.FP3)
}

func TestNextRace_SessionWithEmptyTimeIsOmitted(t *testing.T) {
	races := []upstream.Race{
		{
			RaceName:       "Japanese Grand Prix",
			Date:           "2024-04-07",
			Time:           "05:00:00Z",
			SecondPractice: &upstream.Session{Date: "2024-04-05", Time: ""},
		},
	}
	next, err := NextRace(races, utcDate(2024, time.April, 1, 0), time.UTC)
	assert.NoError(t, err)
	assert.Nil(t, next.FP2)
}

func TestNextRace_ConvertsToStoredTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	races := []upstream.Race{
		{RaceName: "British Grand Prix", Date: "2024-07-07", Time: "13:00:00Z"},
	}
	next, err := NextRace(races, utcDate(2024, time.July, 1, 0), loc)
	assert.NoError(t, err)
	assert.Equal(t, "2024-07-07", next.Race.Date)
	assert.Equal(t, "09:00:00 EDT", next.Race.Time)
}

func TestNextRace_ConversionCanShiftCalendarDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	// 23:00 UTC Saturday is already Sunday morning in Tokyo.
	races := []upstream.Race{
		{RaceName: "Las Vegas Grand Prix", Date: "2024-11-23", Time: "23:00:00Z"},
	}
	next, err := NextRace(races, utcDate(2024, time.November, 1, 0), loc)
	assert.NoError(t, err)
	assert.Equal(t, "2024-11-24", next.Race.Date)
	assert.Equal(t, "08:00:00 JST", next.Race.Time)
}

func TestNextRace_MalformedRaceDateAbortsRequest(t *testing.T) {
	races := []upstream.Race{
		{RaceName: "Mystery Grand Prix", Date: "not-a-date", Time: "13:00:00Z"},
	}
	_, err := NextRace(races, utcDate(2024, time.July, 1, 0), time.UTC)
	assert.ErrorIs(t, err, ErrBadUpstreamData)
}

func TestNextRace_MalformedSessionTimeAbortsRequest(t *testing.T) {
	races := []upstream.Race{
		{
			RaceName:   "British Grand Prix",
			Date:       "2024-07-07",
			Time:       "14:00:00Z",
			Qualifying: &upstream.Session{Date: "2024-07-06", Time: "half past two"},
		},
	}
	_, err := NextRace(races, utcDate(2024, time.July, 1, 0), time.UTC)
	assert.ErrorIs(t, err, ErrBadUpstreamData)
}

func TestParseSessionUTC_NaiveTimeAssumesUTC(t *testing.T) {
	got, err := parseSessionUTC("2024-07-07", "13:00:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.July, 7, 13, 0, 0, 0, time.UTC), got)
}

func TestParseSessionUTC_ZuluSuffix(t *testing.T) {
	got, err := parseSessionUTC("2024-07-07", "13:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.July, 7, 13, 0, 0, 0, time.UTC), got)
}
