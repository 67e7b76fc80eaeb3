package service

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Nascian/socialnetwork-backend/dao"
	"github.com/Nascian/socialnetwork-backend/models"
	"github.com/Nascian/socialnetwork-backend/pkg/errs"
	"github.com/Nascian/socialnetwork-backend/pkg/hashid"
	"github.com/Nascian/socialnetwork-backend/types"

	"github.com/sourcegraph/conc/pool"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	ListFeed(ctx context.Context, viewerID uint64, page, pageSize int) (*types.FeedPage, error)
	CreatePost(ctx context.Context, authorID uint64, message string) (*types.PostItem, error)
}

type PostService struct {
	UsersRepo *dao.Users
	PostDAO   *dao.PostDAO
	LikeDAO   *dao.LikeDAO
	HashID    *hashid.Codec
}

// ListFeed 帖子流，最新在前，附带当前用户是否点赞
// page and pageSize are clamped with types.ClampPagination.
func (s *PostService) ListFeed(ctx context.Context, viewerID uint64, page, pageSize int) (*types.FeedPage, error) {
	page, pageSize = types.ClampPagination(page, pageSize)

	var (
		total int64
		posts []*models.Post
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		total, err = s.PostDAO.CountAll(ctx)
		return err
	})
	// a page too far out to address yields no rows
	if page-1 <= math.MaxInt/pageSize {
		p.Go(func(ctx context.Context) (err error) {
			posts, err = s.PostDAO.Page(ctx, pageSize, (page-1)*pageSize)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, errs.Internal("Failed to list posts", err)
	}

	ids := make([]uint64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	liked, err := s.LikeDAO.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, errs.Internal("Failed to list posts", err)
	}

	items := make([]types.PostItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, s.toItem(post, &post.User, liked[post.ID]))
	}

	totalPages := types.TotalPages(total, pageSize)
	return &types.FeedPage{
		Items:       items,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}, nil
}

// CreatePost 发帖
func (s *PostService) CreatePost(ctx context.Context, authorID uint64, message string) (*types.PostItem, error) {
	message, err := ValidateMessage(message)
	if err != nil {
		return nil, err
	}

	author, err := s.UsersRepo.FindById(ctx, authorID)
	if err != nil {
		return nil, errs.Internal("Failed to create post", err)
	}
	if author == nil {
		return nil, errs.NotFound("User not found")
	}

	post := &models.Post{UserID: authorID, Message: message}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, errs.Internal("Failed to create post", err)
	}
	item := s.toItem(post, author, false)
	return &item, nil
}

// ValidateMessage trims message and checks it is non-empty and at most
// models.MaxMessageLength code points.
func ValidateMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errs.Validation("Message is required")
	}
	if utf8.RuneCountInString(message) > models.MaxMessageLength {
		return "", errs.Validation("Message must be at most 280 characters")
	}
	return message, nil
}

func (s *PostService) toItem(post *models.Post, author *models.User, likedByMe bool) types.PostItem {
	return types.PostItem{
		ID:        s.HashID.Encode(post.ID),
		Message:   post.Message,
		UserID:    s.HashID.Encode(post.UserID),
		CreatedAt: post.CreatedAt,
		User: types.Author{
			ID:        s.HashID.Encode(author.ID),
			FirstName: author.FirstName,
			LastName:  author.LastName,
			Alias:     author.Alias,
		},
		LikeCount: post.LikeCount,
		LikedByMe: likedByMe,
	}
}
