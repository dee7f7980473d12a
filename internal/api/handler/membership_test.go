package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/testutil"
)

func membershipStatusFromResponse(t *testing.T, body []byte) *dto.MembershipStatus {
	t.Helper()

	var resp struct {
		Success bool                  `json:"success"`
		Data    *dto.MembershipStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Data)
	return resp.Data
}

func TestMembershipHandler_Status_NoMembership(t *testing.T) {
	env := setupTestEnv(t)

	user := testutil.TestUser(t, env.db)

	w := performRequest(env.engine, "GET", fmt.Sprintf("/api/users/%d/membership", user.ID),
		nil, authHeader(env.memberToken(t, user.ID)))

	assert.Equal(t, http.StatusOK, w.Code)

	status := membershipStatusFromResponse(t, w.Body.Bytes())
	assert.False(t, status.HasActiveMembership)
	assert.False(t, status.CanCreatePost)
	assert.True(t, status.CanRenew)
}

func TestMembershipHandler_Status_Active(t *testing.T) {
	env := setupTestEnv(t)

	user := testutil.TestUser(t, env.db)
	plan := testutil.TestPlan(t, env.db, testutil.WithPlanTerms(30, 5))
	txn := testutil.TestTransaction(t, env.db, user.ID, plan.Name)

	now := time.Now()
	testutil.TestMembership(t, env.db, user.ID, plan.ID, txn.ID,
		testutil.WithMembershipWindow(now.AddDate(0, 0, -1), now.AddDate(0, 0, 29)))

	w := performRequest(env.engine, "GET", fmt.Sprintf("/api/users/%d/membership", user.ID),
		nil, authHeader(env.memberToken(t, user.ID)))

	assert.Equal(t, http.StatusOK, w.Code)

	status := membershipStatusFromResponse(t, w.Body.Bytes())
	assert.True(t, status.HasActiveMembership)
	require.NotNil(t, status.Membership)
	assert.Equal(t, plan.ID, status.Membership.PlanID)
	assert.True(t, status.CanCreatePost)
	// 本月刚开通，不可续费
	assert.False(t, status.CanRenew)
}

// 只有本人或管理员能查询会员状态
func TestMembershipHandler_Status_Permission(t *testing.T) {
	env := setupTestEnv(t)

	subject := testutil.TestUser(t, env.db)
	other := testutil.TestUser(t, env.db)
	admin := testutil.TestUser(t, env.db, testutil.WithRole(model.RoleAdmin))

	path := fmt.Sprintf("/api/users/%d/membership", subject.ID)

	w := performRequest(env.engine, "GET", path, nil, authHeader(env.memberToken(t, other.ID)))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(env.engine, "GET", path, nil, authHeader(env.adminToken(t, admin.ID)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(env.engine, "GET", path, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
