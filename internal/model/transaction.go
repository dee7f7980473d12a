package model

import (
	"time"
)

const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusRejected = "rejected"
)

// Transaction 套餐购买流水，由审批人转为 approved/rejected，终态后不再变更
// PlanName 是购买时刻的套餐名快照；PlanID/PlanDurationDays/PlanPostLimit
// 是创建时解析成功后冗余下来的套餐条款快照，审批授予时优先使用
type Transaction struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	UserID           int64     `gorm:"not null;index" json:"user_id"`
	PayerAccount     string    `gorm:"size:255;not null" json:"user_account"`
	Method           string    `gorm:"size:50;not null" json:"method"`
	PlanName         string    `gorm:"size:100;not null" json:"plan_name"`
	PlanID           *int64    `json:"plan_id,omitempty"`
	PlanDurationDays *int      `json:"-"`
	PlanPostLimit    *int      `json:"-"`
	Amount           float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency         string    `gorm:"size:10;default:VND" json:"currency"`
	Note             string    `gorm:"type:text" json:"content"`
	Status           string    `gorm:"size:20;default:pending;index" json:"status"` // pending, approved, rejected
	SubmittedAt      time.Time `gorm:"column:date;not null;index" json:"date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
