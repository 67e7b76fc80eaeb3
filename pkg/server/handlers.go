package server

import (
	"github.com/Nascian/socialnetwork-backend/handler"
)

type Handlers struct {
	Health *handler.Health
	Auth   *handler.Auth
	User   *handler.User
	Post   *handler.Post
}
