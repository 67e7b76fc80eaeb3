package models

import (
	"time"

	"github.com/Nascian/socialnetwork-backend/pkg/snowflake"
	"gorm.io/gorm"
)

type User struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Username     string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	BirthDate    time.Time `gorm:"column:birth_date;not null" json:"birth_date"`
	Alias        string    `gorm:"column:alias;type:varchar(100);not null" json:"alias"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes []Like `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == 0 {
		u.ID = snowflake.GenID()
	}
	return nil
}
