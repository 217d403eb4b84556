package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rainman226/asa-bot-f1-service/internal"
	"github.com/rainman226/asa-bot-f1-service/internal/upstream"
)

// ErrNoUpcomingRace means the schedule fetch succeeded but every race
// start is at or before the current instant.
var ErrNoUpcomingRace = errors.New("no upcoming races found")

// ErrBadUpstreamData means a date/time string the request depends on
// could not be parsed. There is no recovery for a broken schedule, so
// the whole request fails.
var ErrBadUpstreamData = errors.New("unparsable schedule data from upstream")

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05 MST"
	zonedLayout    = "2006-01-02 15:04:05Z07:00"
	naiveUTCLayout = "2006-01-02 15:04:05"
)

// NextRace scans the season's races in order and returns the first one
// whose race start is strictly after now, with every held session
// rendered in loc. Races are assumed chronological, as the upstream
// delivers them.
func NextRace(races []upstream.Race, now time.Time, loc *time.Location) (*internal.NextRace, error) {
	for _, race := range races {
		start, err := parseSessionUTC(race.Date, race.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: race %q: %v", ErrBadUpstreamData, race.RaceName, err)
		}
		if !start.After(now) {
			continue
		}

		out := &internal.NextRace{RaceName: race.RaceName}
		if out.Race, err = formatSession(race.Date, race.Time, loc); err != nil {
			return nil, fmt.Errorf("%w: race %q: %v", ErrBadUpstreamData, race.RaceName, err)
		}
		if out.FP1, err = formatOptional(race.FirstPractice, loc); err != nil {
			return nil, fmt.Errorf("%w: race %q fp1: %v", ErrBadUpstreamData, race.RaceName, err)
		}
		if out.FP2, err = formatOptional(race.SecondPractice, loc); err != nil {
			return nil, fmt.Errorf("%w: race %q fp2: %v", ErrBadUpstreamData, race.RaceName, err)
		}
		if out.FP3, err = formatOptional(race.ThirdPractice, loc); err != nil {
			return nil, fmt.Errorf("%w: race %q fp3: %v", ErrBadUpstreamData, race.RaceName, err)
		}
		if out.Qualifying, err = formatOptional(race.Qualifying, loc); err != nil {
			return nil, fmt.Errorf("%w: race %q qualifying: %v", ErrBadUpstreamData, race.RaceName, err)
		}
		return out, nil
	}
	return nil, ErrNoUpcomingRace
}

// parseSessionUTC combines a date and time-of-day string into an
// instant. The upstream usually suffixes times with "Z"; when no zone
// is embedded the value is still UTC, so the naive fallback parses in
// UTC rather than the process-local zone.
func parseSessionUTC(date, tod string) (time.Time, error) {
	if date == "" || tod == "" {
		return time.Time{}, fmt.Errorf("missing date or time (%q %q)", date, tod)
	}
	combined := date + " " + tod
	if t, err := time.Parse(zonedLayout, combined); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(naiveUTCLayout, combined, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// formatOptional renders a session block, or nil when the session is
// absent or lacks either field. Missing sessions are normal (sprint
// weekends have no FP2/FP3); they are simply not held.
func formatOptional(s *upstream.Session, loc *time.Location) (*internal.SessionTime, error) {
	if s == nil {
		return nil, nil
	}
	return formatSession(s.Date, s.Time, loc)
}

func formatSession(date, tod string, loc *time.Location) (*internal.SessionTime, error) {
	if date == "" || tod == "" {
		return nil, nil
	}
	t, err := parseSessionUTC(date, tod)
	if err != nil {
		return nil, err
	}
	local := t.In(loc)
	return &internal.SessionTime{
		Date: local.Format(dateLayout),
		Time: local.Format(timeLayout),
	}, nil
}
