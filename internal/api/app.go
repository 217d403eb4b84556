package api

import (
	"github.com/rainman226/asa-bot-f1-service/internal"
	"github.com/rainman226/asa-bot-f1-service/internal/storage"
	"github.com/rainman226/asa-bot-f1-service/internal/upstream"
)

type App interface {
	Logger() internal.Logger
	Timezones() storage.TimezoneRepository
	Upstream() upstream.ScheduleSource
}

type app struct {
	logger    internal.Logger
	timezones storage.TimezoneRepository
	upstream  upstream.ScheduleSource
}

func NewApp(logger internal.Logger, timezones storage.TimezoneRepository, source upstream.ScheduleSource) App {
	return &app{logger: logger, timezones: timezones, upstream: source}
}

func (a *app) Logger() internal.Logger               { return a.logger }
func (a *app) Timezones() storage.TimezoneRepository { return a.timezones }
func (a *app) Upstream() upstream.ScheduleSource     { return a.upstream }
