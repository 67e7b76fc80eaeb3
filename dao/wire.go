//go:build wireinject

package dao

import (
	"github.com/Nascian/socialnetwork-backend/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewPostDAO,
	NewLikeDAO,
	cache.NewProfileCache,
)
