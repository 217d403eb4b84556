package service

import (
	"errors"

	"github.com/rainman226/asa-bot-f1-service/internal"
	"github.com/rainman226/asa-bot-f1-service/internal/upstream"
)

// ErrNoResults means the results fetch succeeded but the race list was
// empty, e.g. before the first race of a season has been run.
var ErrNoResults = errors.New("no race results found")

// Ranking flattens the most recent race's classification into
// position/driver pairs, preserving the upstream finishing order.
func Ranking(races []upstream.Race) ([]internal.ResultEntry, error) {
	if len(races) == 0 {
		return nil, ErrNoResults
	}
	results := races[0].Results
	entries := make([]internal.ResultEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, internal.ResultEntry{
			Position: r.Position,
			Driver:   r.Driver.GivenName + " " + r.Driver.FamilyName,
		})
	}
	return entries, nil
}
