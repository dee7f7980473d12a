package model

import (
	"time"
)

const (
	MembershipStatusActive    = "active"
	MembershipStatusExpired   = "expired"
	MembershipStatusCancelled = "cancelled"
)

// Membership 会员授予记录。过期不做状态流转，读取时按 end_at 比较判定
type Membership struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	UserID        int64     `gorm:"not null;index" json:"user_id"`
	PlanID        int64     `gorm:"not null" json:"plan_id"`
	TransactionID int64     `gorm:"not null;uniqueIndex" json:"transaction_id"`
	StartAt       time.Time `gorm:"not null" json:"start_at"`
	EndAt         time.Time `gorm:"not null;index" json:"end_at"`
	Status        string    `gorm:"size:20;default:active;index" json:"status"` // active, expired, cancelled
	CreatedAt     time.Time `json:"created_at"`

	Plan *Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

func (Membership) TableName() string {
	return "membership_user"
}
