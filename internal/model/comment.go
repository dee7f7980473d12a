package model

import (
	"time"
)

type Comment struct {
	ID        int64      `gorm:"primaryKey" json:"id"`
	PostID    int64      `gorm:"not null;index" json:"post_id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	ParentID  *int64     `gorm:"index" json:"parent_id,omitempty"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Rating    int        `gorm:"default:5" json:"rating"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comment"
}
