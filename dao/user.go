package dao

import (
	"context"
	"errors"

	"github.com/Nascian/socialnetwork-backend/models"
	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByLogin 用户名或邮箱查询, either may be empty but not both.
func (u *Users) FindByLogin(ctx context.Context, username, email string) (*models.User, error) {
	switch {
	case username != "" && email != "":
		return u.FindByWhere(ctx, "username = ? OR email = ?", username, email)
	case username != "":
		return u.FindByWhere(ctx, "username = ?", username)
	case email != "":
		return u.FindByWhere(ctx, "email = ?", email)
	default:
		return nil, errors.New("dao.Users.FindByLogin: username or email required")
	}
}

// FirstOrCreateByEmail returns the existing user with user.Email or inserts user.
func (u *Users) FirstOrCreateByEmail(ctx context.Context, user *models.User) error {
	return u.Db.WithContext(ctx).
		Where("email = ?", user.Email).
		Omit("Posts", "Likes").
		FirstOrCreate(user).Error
}
