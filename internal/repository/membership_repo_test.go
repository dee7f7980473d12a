package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/testutil"
)

func TestMembershipRepository_GetActiveByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db, testutil.WithPlanTerms(30, 5))
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)

	now := time.Now()
	created := testutil.TestMembership(t, db, user.ID, plan.ID, txn.ID,
		testutil.WithMembershipWindow(now.AddDate(0, 0, -5), now.AddDate(0, 0, 25)))

	found, err := repo.GetActiveByUser(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Plan 预加载
	require.NotNil(t, found.Plan)
	assert.Equal(t, 5, found.Plan.PostLimit)
}

// end_at 必须严格大于 asOf，相等视为过期
func TestMembershipRepository_GetActiveByUser_StrictEnd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)

	end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	testutil.TestMembership(t, db, user.ID, plan.ID, txn.ID,
		testutil.WithMembershipWindow(end.AddDate(0, 0, -30), end))

	_, err := repo.GetActiveByUser(user.ID, end)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := repo.GetActiveByUser(user.ID, end.Add(-time.Second))
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestMembershipRepository_GetActiveByUser_LatestEndFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn1 := testutil.TestTransaction(t, db, user.ID, plan.Name)
	txn2 := testutil.TestTransaction(t, db, user.ID, plan.Name)

	now := time.Now()
	testutil.TestMembership(t, db, user.ID, plan.ID, txn1.ID,
		testutil.WithMembershipWindow(now.AddDate(0, 0, -10), now.AddDate(0, 0, 5)))
	later := testutil.TestMembership(t, db, user.ID, plan.ID, txn2.ID,
		testutil.WithMembershipWindow(now.AddDate(0, 0, -5), now.AddDate(0, 0, 60)))

	found, err := repo.GetActiveByUser(user.ID, now)
	require.NoError(t, err)
	assert.Equal(t, later.ID, found.ID)
}

func TestMembershipRepository_GetActiveByUser_IgnoresOtherStatuses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)

	now := time.Now()
	testutil.TestMembership(t, db, user.ID, plan.ID, txn.ID,
		testutil.WithMembershipWindow(now.AddDate(0, 0, -1), now.AddDate(0, 0, 29)),
		testutil.WithMembershipStatus(model.MembershipStatusCancelled))

	_, err := repo.GetActiveByUser(user.ID, now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMembershipRepository_GetByTransactionID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)
	created := testutil.TestMembership(t, db, user.ID, plan.ID, txn.ID)

	found, err := repo.GetByTransactionID(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

// 同一流水只能授予一次会员
func TestMembershipRepository_Create_DuplicateTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn := testutil.TestTransaction(t, db, user.ID, plan.Name)
	testutil.TestMembership(t, db, user.ID, plan.ID, txn.ID)

	now := time.Now()
	dup := &model.Membership{
		UserID:        user.ID,
		PlanID:        plan.ID,
		TransactionID: txn.ID,
		StartAt:       now,
		EndAt:         now.AddDate(0, 0, 30),
		Status:        model.MembershipStatusActive,
	}
	assert.Error(t, repo.Create(dup))
}

func TestMembershipRepository_ListByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMembershipRepository(db)

	user := testutil.TestUser(t, db)
	plan := testutil.TestPlan(t, db)
	txn1 := testutil.TestTransaction(t, db, user.ID, plan.Name)
	txn2 := testutil.TestTransaction(t, db, user.ID, plan.Name)

	now := time.Now()
	testutil.TestMembership(t, db, user.ID, plan.ID, txn1.ID,
		testutil.WithMembershipWindow(now.AddDate(0, -2, 0), now.AddDate(0, -1, 0)))
	testutil.TestMembership(t, db, user.ID, plan.ID, txn2.ID,
		testutil.WithMembershipWindow(now, now.AddDate(0, 1, 0)))

	ms, err := repo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	// end_at 倒序
	assert.True(t, ms[0].EndAt.After(ms[1].EndAt))
}
