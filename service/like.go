package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/prometheus/client_golang/prometheus"
)

var likeChangesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "socialnetwork_like_changes_total",
		Help: "Like and unlike calls, split by whether the ledger changed",
	},
	[]string{"action", "applied"},
)

func init() {
	prometheus.MustRegister(likeChangesTotal)
}

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID uint64, postID uint64) (*types.LikeResult, error)
	Unlike(ctx context.Context, userID uint64, postID uint64) (*types.LikeResult, error)
}

type LikeService struct {
	LikeDAO *dao.LikeDAO
}

// Like 点赞，重复点赞不改变计数
func (s *LikeService) Like(ctx context.Context, userID uint64, postID uint64) (*types.LikeResult, error) {
	change, err := s.apply(ctx, "like", postID, userID, 1)
	if err != nil {
		return nil, err
	}
	return &types.LikeResult{LikeCount: change.LikeCount, LikedByMe: true, Created: change.Applied}, nil
}

// Unlike 取消点赞，未点赞时不改变计数
func (s *LikeService) Unlike(ctx context.Context, userID uint64, postID uint64) (*types.LikeResult, error) {
	change, err := s.apply(ctx, "unlike", postID, userID, -1)
	if err != nil {
		return nil, err
	}
	return &types.LikeResult{LikeCount: change.LikeCount, LikedByMe: false}, nil
}

func (s *LikeService) apply(ctx context.Context, action string, postID, userID uint64, delta int) (*dao.LikeChange, error) {
	change, err := s.LikeDAO.ApplyLikeChange(ctx, postID, userID, delta)
	if err != nil {
		if errors.Is(err, dao.ErrPostNotFound) {
			return nil, errs.NotFound("Post not found")
		}
		return nil, errs.Internal("Failed to "+action+" post", err)
	}
	likeChangesTotal.WithLabelValues(action, strconv.FormatBool(change.Applied)).Inc()
	return change, nil
}
