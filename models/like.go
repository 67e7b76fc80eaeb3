package models

import (
	"time"

	"github.com/Nascian/socialnetwork-backend/pkg/snowflake"
	"gorm.io/gorm"
)

// Like 点赞记录
// 对应表 likes
// 唯一键: user_id + post_id，一个用户对同一帖子最多一条
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_post,priority:1" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_likes_user_post,priority:2;index:idx_likes_post_id" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

func (l *Like) BeforeCreate(*gorm.DB) error {
	if l.ID == 0 {
		l.ID = snowflake.GenID()
	}
	return nil
}

// All returns every model in migration order.
func All() []any {
	return []any{&User{}, &Post{}, &Like{}}
}
