package model

import (
	"time"
)

type Post struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Address     string    `gorm:"size:255" json:"address"`
	Price       *float64  `gorm:"type:decimal(15,2)" json:"price,omitempty"`
	Area        *float64  `gorm:"type:decimal(10,2)" json:"area,omitempty"`
	PostType    string    `gorm:"size:50;default:listing" json:"post_type"`
	Status      string    `gorm:"size:20;default:approved" json:"status"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Images []Image `gorm:"foreignKey:PostID" json:"images,omitempty"`
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

type Image struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	PostID    int64     `gorm:"not null;index" json:"post_id"`
	URL       string    `gorm:"size:500;not null" json:"img_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
