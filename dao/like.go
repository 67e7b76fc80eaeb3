package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nascian/socialnetwork-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPostNotFound = errors.New("post not found")

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// LikeChange is the outcome of ApplyLikeChange.
type LikeChange struct {
	// Applied is true when a like row was actually inserted (delta +1) or
	// deleted (delta -1); false means the pair was already in the target state.
	Applied   bool
	LikeCount int64
}

// ApplyLikeChange 点赞/取消点赞
// The like row and posts.like_count change in one transaction: either both
// are written or neither is. The counter only moves when a row was inserted
// or deleted, so repeated calls are no-ops.
func (d *LikeDAO) ApplyLikeChange(ctx context.Context, postID, userID uint64, delta int) (*LikeChange, error) {
	if delta != 1 && delta != -1 {
		return nil, fmt.Errorf("dao.LikeDAO.ApplyLikeChange: delta must be 1 or -1, got %d", delta)
	}

	change := &LikeChange{}
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		res := tx.Select("id").Where("id = ?", postID).Limit(1).Find(&post)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPostNotFound
		}

		if delta > 0 {
			res = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
				DoNothing: true,
			}).Create(&models.Like{UserID: userID, PostID: postID})
		} else {
			res = tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		}
		if res.Error != nil {
			return res.Error
		}
		change.Applied = res.RowsAffected == 1

		if change.Applied {
			expr := gorm.Expr("like_count + 1")
			if delta < 0 {
				// 避免负数
				expr = gorm.Expr("CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END")
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).UpdateColumn("like_count", expr).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Post{}).Select("like_count").Where("id = ?", postID).Scan(&change.LikeCount).Error
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// LikedPostIDs returns which of postIDs userID has liked, in one query.
func (d *LikeDAO) LikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	liked := make(map[uint64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// CountGiven 用户点赞总数
func (d *LikeDAO) CountGiven(ctx context.Context, userID uint64) (int64, error) {
	return d.Count(ctx, "user_id = ?", userID)
}

// CountReceived 用户的帖子收到的点赞总数
func (d *LikeDAO) CountReceived(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.user_id = ?", userID).
		Count(&count).Error
	return count, err
}
