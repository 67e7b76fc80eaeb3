package handler

import (
	"github.com/Nascian/socialnetwork-backend/pkg/context"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/response"
	"github.com/Nascian/socialnetwork-backend/service"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/login", context.Wrap(a.Login)) // 登录
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return errs.Validation("username/email and password are required")
	}

	res, err := a.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, res)
	return nil
}
