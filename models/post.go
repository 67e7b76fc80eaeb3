package models

import (
	"time"

	"github.com/Nascian/socialnetwork-backend/pkg/snowflake"
	"gorm.io/gorm"
)

// MaxMessageLength is counted in code points, not bytes.
const MaxMessageLength = 280

// Post 帖子
// like_count 是 likes 表的冗余计数，只能和 likes 行在同一事务内修改
type Post struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false;index:idx_posts_created_at_id,priority:2" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_posts_user_id" json:"user_id"`
	Message   string    `gorm:"column:message;type:varchar(1120);not null" json:"message"`
	LikeCount int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_posts_created_at_id,priority:1" json:"created_at"`

	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Likes []Like `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == 0 {
		p.ID = snowflake.GenID()
	}
	return nil
}
