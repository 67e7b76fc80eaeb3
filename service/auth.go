package service

import (
	"context"
	"strings"

	"github.com/Nascian/socialnetwork-backend/config"
	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/jwt"
	"github.com/Nascian/socialnetwork-backend/types"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

// Login 用户名或邮箱 + 密码登录，成功返回 access token
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if (username == "" && email == "") || req.Password == "" {
		return nil, errs.Validation("username/email and password are required")
	}

	user, err := s.UsersRepo.FindByLogin(ctx, username, email)
	if err != nil {
		return nil, errs.Internal("Failed to login", err)
	}
	if user == nil {
		return nil, errs.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.Unauthorized("Invalid credentials")
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, jwt.TypeAccess, s.Config.Jwt.Expire())
	if err != nil {
		return nil, errs.Internal("Failed to login", err)
	}
	return &types.LoginResponse{Token: token}, nil
}
