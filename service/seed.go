package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/models"
	"github.com/Nascian/socialnetwork-backend/pkg/log"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded user.
const DemoPassword = "password"

type seedUser struct {
	user    models.User
	message string
}

var demoUsers = []seedUser{
	{
		user: models.User{
			Email: "demo1@example.com", Username: "demo1",
			FirstName: "Demo", LastName: "One", Alias: "demo.one",
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		message: "Hola, soy Demo One!",
	},
	{
		user: models.User{
			Email: "demo2@example.com", Username: "demo2",
			FirstName: "Demo", LastName: "Two", Alias: "demo.two",
			BirthDate: time.Date(1992, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		message: "Primer post de Demo Two",
	},
}

// likedBy maps a user to the author whose seeded post they like.
var likedBy = [][2]string{
	{"demo1", "demo2"},
	{"demo2", "demo1"},
}

type SeedService struct {
	UsersRepo   *dao.Users
	PostDAO     *dao.PostDAO
	LikeService ILikeService
}

// Seed 初始化演示数据，可重复执行
func (s *SeedService) Seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make(map[string]*models.User, len(demoUsers))
	posts := make(map[string]*models.Post, len(demoUsers))
	for _, d := range demoUsers {
		u := d.user
		u.PasswordHash = string(hash)
		if err := s.UsersRepo.FirstOrCreateByEmail(ctx, &u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		users[u.Username] = &u

		post, err := s.PostDAO.FindByAuthorMessage(ctx, u.ID, d.message)
		if err != nil {
			return fmt.Errorf("seed post of %s: %w", u.Username, err)
		}
		if post == nil {
			post = &models.Post{UserID: u.ID, Message: d.message}
			if err := s.PostDAO.Create(ctx, post); err != nil {
				return fmt.Errorf("seed post of %s: %w", u.Username, err)
			}
		}
		posts[u.Username] = post
	}

	for _, pair := range likedBy {
		liker, post := users[pair[0]], posts[pair[1]]
		if _, err := s.LikeService.Like(ctx, liker.ID, post.ID); err != nil {
			return fmt.Errorf("seed like %s -> %s: %w", pair[0], pair[1], err)
		}
	}

	log.L.Info("seed finished", zap.Int("users", len(users)), zap.Int("posts", len(posts)))
	return nil
}
