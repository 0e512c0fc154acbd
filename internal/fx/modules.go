package fx

import (
	"league-tracker/internal/config"
	"league-tracker/internal/database"
	"league-tracker/internal/logger"
	"league-tracker/internal/repository"
	"league-tracker/internal/riot"
	"league-tracker/internal/server"
	"league-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewLookupRepository),
	// api client
	fx.Provide(riot.NewClient),
	// svc
	fx.Provide(service.NewProfileService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewMatchDetailService),
	fx.Provide(service.NewSuggestService),
	// server
	fx.Provide(server.New),
)
