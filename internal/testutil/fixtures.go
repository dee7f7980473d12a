package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Name:         fmt.Sprintf("testuser_%d", time.Now().UnixNano()%100000),
		Email:        fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvwxyz123456", // bcrypt hash placeholder
		Status:       "active",
		Role:         model.RoleMember,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithRole 设置角色
func WithRole(role string) func(*model.User) {
	return func(u *model.User) {
		u.Role = role
	}
}

// TestPlan 创建测试套餐
func TestPlan(t *testing.T, db *gorm.DB, opts ...func(*model.Plan)) *model.Plan {
	t.Helper()

	plan := &model.Plan{
		Name:         fmt.Sprintf("Plan %d", time.Now().UnixNano()%100000),
		Price:        199000,
		Description:  "test plan",
		DurationDays: 30,
		PostLimit:    5,
	}

	for _, opt := range opts {
		opt(plan)
	}

	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("Failed to create test plan: %v", err)
	}

	return plan
}

// WithPlanName 设置套餐名
func WithPlanName(name string) func(*model.Plan) {
	return func(p *model.Plan) {
		p.Name = name
	}
}

// WithPlanTerms 设置有效期和发布上限
func WithPlanTerms(durationDays, postLimit int) func(*model.Plan) {
	return func(p *model.Plan) {
		p.DurationDays = durationDays
		p.PostLimit = postLimit
	}
}

// TestTransaction 创建测试流水
func TestTransaction(t *testing.T, db *gorm.DB, userID int64, planName string, opts ...func(*model.Transaction)) *model.Transaction {
	t.Helper()

	txn := &model.Transaction{
		UserID:       userID,
		PayerAccount: "0123456789",
		Method:       "bank_transfer",
		PlanName:     planName,
		Amount:       199000,
		Currency:     "VND",
		Status:       model.TransactionStatusPending,
		SubmittedAt:  time.Now(),
	}

	for _, opt := range opts {
		opt(txn)
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return txn
}

// WithTransactionStatus 设置流水状态
func WithTransactionStatus(status string) func(*model.Transaction) {
	return func(txn *model.Transaction) {
		txn.Status = status
	}
}

// WithPlanSnapshot 设置套餐条款快照
func WithPlanSnapshot(planID int64, durationDays, postLimit int) func(*model.Transaction) {
	return func(txn *model.Transaction) {
		txn.PlanID = &planID
		txn.PlanDurationDays = &durationDays
		txn.PlanPostLimit = &postLimit
	}
}

// TestMembership 创建测试会员记录
func TestMembership(t *testing.T, db *gorm.DB, userID, planID, transactionID int64, opts ...func(*model.Membership)) *model.Membership {
	t.Helper()

	now := time.Now()
	m := &model.Membership{
		UserID:        userID,
		PlanID:        planID,
		TransactionID: transactionID,
		StartAt:       now,
		EndAt:         now.AddDate(0, 0, 30),
		Status:        model.MembershipStatusActive,
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := db.Create(m).Error; err != nil {
		t.Fatalf("Failed to create test membership: %v", err)
	}

	return m
}

// WithMembershipWindow 设置生效区间
func WithMembershipWindow(start, end time.Time) func(*model.Membership) {
	return func(m *model.Membership) {
		m.StartAt = start
		m.EndAt = end
	}
}

// WithMembershipStatus 设置状态
func WithMembershipStatus(status string) func(*model.Membership) {
	return func(m *model.Membership) {
		m.Status = status
	}
}

// TestPost 创建测试房源
func TestPost(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.Post)) *model.Post {
	t.Helper()

	post := &model.Post{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Post %d", time.Now().UnixNano()%100000),
		Description: "test description",
		PostType:    "listing",
		Status:      "approved",
	}

	for _, opt := range opts {
		opt(post)
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return post
}

// WithPostCreatedAt 设置创建时间（配额窗口测试用）
func WithPostCreatedAt(createdAt time.Time) func(*model.Post) {
	return func(p *model.Post) {
		p.CreatedAt = createdAt
	}
}

// TestComment 创建测试评论
func TestComment(t *testing.T, db *gorm.DB, userID, postID int64, content string) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
		Rating:  5,
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}
