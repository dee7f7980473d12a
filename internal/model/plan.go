package model

import (
	"time"
)

// Plan 会员套餐定义，一旦被会员记录引用即视为不可变
type Plan struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description  string    `gorm:"type:text" json:"description"`
	DurationDays int       `gorm:"not null" json:"duration"`   // 有效期（天）
	PostLimit    int       `gorm:"not null" json:"post_limit"` // 每自然月发布上限
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "membership_packages"
}
