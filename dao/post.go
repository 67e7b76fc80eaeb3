package dao

import (
	"context"

	"github.com/Nascian/socialnetwork-backend/models"
	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// Create 创建帖子，like_count 固定从 0 开始
func (d *PostDAO) Create(ctx context.Context, post *models.Post) error {
	post.LikeCount = 0
	return d.Db.WithContext(ctx).Omit("User", "Likes").Create(post).Error
}

// Page returns posts newest first with their authors loaded. The id tie
// breaker keeps paging stable when created_at collides.
func (d *PostDAO) Page(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (d *PostDAO) CountAll(ctx context.Context) (int64, error) {
	return d.Count(ctx, "")
}

func (d *PostDAO) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "user_id = ?", userID)
}

// FindByAuthorMessage is used by the seeder to stay idempotent.
func (d *PostDAO) FindByAuthorMessage(ctx context.Context, userID uint64, message string) (*models.Post, error) {
	return d.FindByWhere(ctx, "user_id = ? AND message = ?", userID, message)
}
