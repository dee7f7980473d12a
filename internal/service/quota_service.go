package service

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/repository"
)

type QuotaService struct {
	membershipRepo *repository.MembershipRepository
	postRepo       *repository.PostRepository
}

func NewQuotaService(
	membershipRepo *repository.MembershipRepository,
	postRepo *repository.PostRepository,
) *QuotaService {
	return &QuotaService{
		membershipRepo: membershipRepo,
		postRepo:       postRepo,
	}
}

// Evaluate 计算用户在 asOf 时刻的会员与配额状态
func (s *QuotaService) Evaluate(userID int64, asOf time.Time) (*dto.MembershipStatus, error) {
	return s.evaluate(s.membershipRepo, s.postRepo, userID, asOf)
}

// EvaluateTx 在给定事务内计算，供 check-then-write 流程使用
func (s *QuotaService) EvaluateTx(tx *gorm.DB, userID int64, asOf time.Time) (*dto.MembershipStatus, error) {
	return s.evaluate(s.membershipRepo.WithTx(tx), s.postRepo.WithTx(tx), userID, asOf)
}

func (s *QuotaService) evaluate(
	membershipRepo *repository.MembershipRepository,
	postRepo *repository.PostRepository,
	userID int64,
	asOf time.Time,
) (*dto.MembershipStatus, error) {
	status := &dto.MembershipStatus{
		CanRenew: true,
	}

	// end_at 严格大于 asOf 才算生效；相等视为已过期
	membership, err := membershipRepo.GetActiveByUser(userID, asOf)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	monthStart := startOfMonth(asOf)

	count, err := postRepo.CountByUserSince(userID, monthStart)
	if err != nil {
		return nil, err
	}
	status.CurrentMonthPostCount = int(count)

	if membership == nil {
		// 从未开通或全部过期：不可发布，可续费
		return status, nil
	}

	status.HasActiveMembership = true
	status.Membership = buildMembershipInfo(membership)
	status.DaysRemaining = daysRemaining(membership.EndAt, asOf)

	if membership.Plan != nil {
		status.CanCreatePost = status.CurrentMonthPostCount < membership.Plan.PostLimit
	}

	// 本月已开通/续费过则当月不可再续
	if sameMonth(membership.StartAt, asOf) {
		status.CanRenew = false
	}

	return status, nil
}

func buildMembershipInfo(m *model.Membership) *dto.MembershipInfo {
	info := &dto.MembershipInfo{
		ID:      m.ID,
		PlanID:  m.PlanID,
		StartAt: m.StartAt.Format(time.RFC3339),
		EndAt:   m.EndAt.Format(time.RFC3339),
	}
	if m.Plan != nil {
		info.PlanName = m.Plan.Name
		info.PostLimit = m.Plan.PostLimit
	}
	return info
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func daysRemaining(end, asOf time.Time) int {
	remain := end.Sub(asOf)
	if remain <= 0 {
		return 0
	}
	return int(math.Ceil(remain.Hours() / 24))
}
