package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *MembershipRepository) WithTx(tx *gorm.DB) *MembershipRepository {
	if tx == nil {
		return r
	}
	return &MembershipRepository{db: tx}
}

func (r *MembershipRepository) Create(m *model.Membership) error {
	return r.db.Create(m).Error
}

// GetActiveByUser 返回用户当前生效的会员记录（status=active 且 end_at 严格大于 asOf，
// 取 end_at 最晚的一条），不存在时返回 gorm.ErrRecordNotFound
func (r *MembershipRepository) GetActiveByUser(userID int64, asOf time.Time) (*model.Membership, error) {
	var m model.Membership
	err := r.db.Preload("Plan").
		Where("user_id = ? AND status = ? AND end_at > ?", userID, model.MembershipStatusActive, asOf).
		Order("end_at DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByTransactionID 按来源流水查找会员记录（同一流水最多授予一次）
func (r *MembershipRepository) GetByTransactionID(transactionID int64) (*model.Membership, error) {
	var m model.Membership
	err := r.db.Where("transaction_id = ?", transactionID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByUser 返回用户的全部会员记录，按 end_at 倒序
func (r *MembershipRepository) ListByUser(userID int64) ([]*model.Membership, error) {
	var ms []*model.Membership
	err := r.db.Preload("Plan").
		Where("user_id = ?", userID).
		Order("end_at DESC").
		Find(&ms).Error
	return ms, err
}
