package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/repository"
	"github.com/wrstudios/estate_go_server/internal/testutil"
)

func setupTransactionService(t *testing.T) (*TransactionService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	cfg := &config.Config{
		Membership: config.MembershipConfig{
			DefaultPostLimit: 10,
			DefaultCurrency:  "VND",
		},
	}

	service := NewTransactionService(
		db,
		repository.NewTransactionRepository(db),
		repository.NewPlanRepository(db),
		repository.NewMembershipRepository(db),
		cfg,
	)

	return service, db
}

func TestTransactionService_Create_SnapshotsPlanTerms(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithPlanName("Gold"), testutil.WithPlanTerms(30, 5))

	txn, err := service.Create(user.ID, &dto.CreateTransactionRequest{
		UserAccount: "0123456789",
		Method:      "bank_transfer",
		PlanName:    "Gold",
		Amount:      199000,
	})
	require.NoError(t, err)

	assert.Equal(t, model.TransactionStatusPending, txn.Status)
	assert.Equal(t, "VND", txn.Currency)
	require.NotNil(t, txn.PlanID)
	require.NotNil(t, txn.PlanDurationDays)
	require.NotNil(t, txn.PlanPostLimit)
	assert.Equal(t, plan.ID, *txn.PlanID)
	assert.Equal(t, 30, *txn.PlanDurationDays)
	assert.Equal(t, 5, *txn.PlanPostLimit)
}

// 套餐名解析失败不阻塞流水创建，快照留空，审批时再兜底
func TestTransactionService_Create_UnknownPlanName(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)

	txn, err := service.Create(user.ID, &dto.CreateTransactionRequest{
		UserAccount: "0123456789",
		Method:      "bank_transfer",
		PlanName:    "NoSuchPlan",
		Amount:      199000,
	})
	require.NoError(t, err)

	assert.Equal(t, model.TransactionStatusPending, txn.Status)
	assert.Nil(t, txn.PlanID)
	assert.Nil(t, txn.PlanDurationDays)
}

func TestTransactionService_SetStatus_ApproveGrantsMembership(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithPlanTerms(30, 5))
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name,
		testutil.WithPlanSnapshot(plan.ID, plan.DurationDays, plan.PostLimit))

	before := time.Now()
	require.NoError(t, service.SetStatus(txn.ID, model.TransactionStatusApproved))
	after := time.Now()

	updated, err := service.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransactionStatusApproved, updated.Status)

	membership, err := repository.NewMembershipRepository(db).GetByTransactionID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, membership.UserID)
	assert.Equal(t, plan.ID, membership.PlanID)
	assert.Equal(t, model.MembershipStatusActive, membership.Status)

	// end = start + 30 天整
	assert.Equal(t, membership.StartAt.AddDate(0, 0, 30), membership.EndAt)
	assert.False(t, membership.StartAt.Before(before.Truncate(time.Second)))
	assert.False(t, membership.StartAt.After(after.Add(time.Second)))
}

func TestTransactionService_SetStatus_RejectDoesNotGrant(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)

	require.NoError(t, service.SetStatus(txn.ID, model.TransactionStatusRejected))

	updated, err := service.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransactionStatusRejected, updated.Status)

	_, err = repository.NewMembershipRepository(db).GetByTransactionID(txn.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// 终态不可再变更：approved/rejected 之后任何审批都返回冲突
func TestTransactionService_SetStatus_FinalizedIsImmutable(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)

	approved := testutil.TestTransaction(t, db, user.ID, plan.Name,
		testutil.WithTransactionStatus(model.TransactionStatusApproved))
	rejected := testutil.TestTransaction(t, db, user.ID, plan.Name,
		testutil.WithTransactionStatus(model.TransactionStatusRejected))

	assert.ErrorIs(t, service.SetStatus(approved.ID, model.TransactionStatusRejected), ErrTransactionFinalized)
	assert.ErrorIs(t, service.SetStatus(approved.ID, model.TransactionStatusApproved), ErrTransactionFinalized)
	assert.ErrorIs(t, service.SetStatus(rejected.ID, model.TransactionStatusApproved), ErrTransactionFinalized)
}

func TestTransactionService_SetStatus_InvalidTarget(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)

	assert.ErrorIs(t, service.SetStatus(txn.ID, "pending"), ErrInvalidTargetStatus)
	assert.ErrorIs(t, service.SetStatus(txn.ID, "cancelled"), ErrInvalidTargetStatus)
}

func TestTransactionService_SetStatus_NotFound(t *testing.T) {
	service, _ := setupTransactionService(t)

	assert.ErrorIs(t, service.SetStatus(99999, model.TransactionStatusApproved), ErrTransactionNotFound)
}

// 无快照且套餐名查不到：审批报错并整体回滚，流水保持 pending 可重试
func TestTransactionService_SetStatus_MissingPlanRollsBack(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, "GhostPlan")

	err := service.SetStatus(txn.ID, model.TransactionStatusApproved)
	assert.ErrorIs(t, err, ErrGrantPlanNotFound)

	updated, err := service.Get(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TransactionStatusPending, updated.Status)

	_, err = repository.NewMembershipRepository(db).GetByTransactionID(txn.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// 有条款快照时，套餐改名甚至删除都不影响审批授予
func TestTransactionService_SetStatus_SnapshotSurvivesPlanRename(t *testing.T) {
	service, db := setupTransactionService(t)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithPlanName("Silver"), testutil.WithPlanTerms(90, 20))
	txn := testutil.TestTransaction(t, db, user.ID, "Silver",
		testutil.WithPlanSnapshot(plan.ID, 90, 20))

	// 提交后套餐被改名
	require.NoError(t, db.Model(&model.Plan{}).Where("id = ?", plan.ID).
		Update("name", "Silver Plus").Error)

	require.NoError(t, service.SetStatus(txn.ID, model.TransactionStatusApproved))

	membership, err := repository.NewMembershipRepository(db).GetByTransactionID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, membership.PlanID)
	assert.Equal(t, membership.StartAt.AddDate(0, 0, 90), membership.EndAt)
}
