package handler

import (
	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/middleware"
	"github.com/Nascian/socialnetwork-backend/pkg/context"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/response"
	"github.com/Nascian/socialnetwork-backend/service"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	g := r.Group("/me")
	g.Use(authorize)
	g.GET("", context.Wrap(u.Profile))
	g.GET("/stats", context.Wrap(u.Stats))
}

// currentUser reads the id set by middleware.Auth.
func currentUser(c *gin.Context) (uint64, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0, errs.Unauthorized("Invalid token")
	}
	return uid, nil
}

func (u *User) Profile(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.GetProfile(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) Stats(c *gin.Context) error {
	uid, err := currentUser(c)
	if err != nil {
		return err
	}
	stats, err := u.UserService.GetStats(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, stats)
	return nil
}
