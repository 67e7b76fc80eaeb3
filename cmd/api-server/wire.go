//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/handler"
	"github.com/Nascian/socialnetwork-backend/pkg/client"
	"github.com/Nascian/socialnetwork-backend/pkg/database"
	"github.com/Nascian/socialnetwork-backend/pkg/server"
	"github.com/Nascian/socialnetwork-backend/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}

func InitSeeder(cfg *config.Config) (*Seeder, error) {
	wire.Build(
		database.NewDB,
		wire.Struct(new(Seeder), "*"),
		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil, nil
}
