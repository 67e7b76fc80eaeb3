package service

import (
	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/pkg/hashid"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHashID,

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(SeedService), "*"),
)

// NewHashID builds the public id codec from the configured salt.
func NewHashID(conf *config.Config) (*hashid.Codec, error) {
	return hashid.New(conf.HashID.Salt)
}
