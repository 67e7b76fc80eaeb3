package service

import (
	"context"

	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/dao/cache"
	"github.com/Nascian/socialnetwork-backend/models"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/hashid"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/sourcegraph/conc/pool"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID uint64) (*types.Profile, error)
	GetStats(ctx context.Context, userID uint64) (*types.Stats, error)
}

type UserService struct {
	UsersRepo    *dao.Users
	PostDAO      *dao.PostDAO
	LikeDAO      *dao.LikeDAO
	ProfileCache *cache.ProfileCache
	HashID       *hashid.Codec
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.Profile, error) {
	user, ok := s.ProfileCache.Get(ctx, userID)
	if !ok {
		var err error
		user, err = s.UsersRepo.FindById(ctx, userID)
		if err != nil {
			return nil, errs.Internal("Failed to load profile", err)
		}
		if user == nil {
			return nil, errs.NotFound("User not found")
		}
		s.ProfileCache.Set(ctx, user)
	}
	return s.toProfile(user), nil
}

func (s *UserService) toProfile(u *models.User) *types.Profile {
	return &types.Profile{
		ID:        s.HashID.Encode(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		BirthDate: u.BirthDate,
		Alias:     u.Alias,
		Email:     u.Email,
		Username:  u.Username,
	}
}

// GetStats 发帖数、点赞数、获赞数
// The three counts are independent reads and are not taken in one snapshot.
func (s *UserService) GetStats(ctx context.Context, userID uint64) (*types.Stats, error) {
	var stats types.Stats

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		stats.Posts, err = s.PostDAO.CountByUser(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.LikesGiven, err = s.LikeDAO.CountGiven(ctx, userID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.LikesReceived, err = s.LikeDAO.CountReceived(ctx, userID)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, errs.Internal("Failed to load stats", err)
	}
	return &stats, nil
}
