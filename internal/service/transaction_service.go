package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/repository"
)

var (
	ErrTransactionNotFound  = errors.New("交易记录不存在")
	ErrTransactionFinalized = errors.New("交易已审批完成，状态不可再变更")
	ErrInvalidTargetStatus  = errors.New("无效的目标状态")
	ErrGrantPlanNotFound    = errors.New("无法授予会员：交易引用的套餐不存在")
)

type TransactionService struct {
	db              *gorm.DB
	transactionRepo *repository.TransactionRepository
	planRepo        *repository.PlanRepository
	membershipRepo  *repository.MembershipRepository
	cfg             *config.Config
}

func NewTransactionService(
	db *gorm.DB,
	transactionRepo *repository.TransactionRepository,
	planRepo *repository.PlanRepository,
	membershipRepo *repository.MembershipRepository,
	cfg *config.Config,
) *TransactionService {
	return &TransactionService{
		db:              db,
		transactionRepo: transactionRepo,
		planRepo:        planRepo,
		membershipRepo:  membershipRepo,
		cfg:             cfg,
	}
}

// Create 提交购买流水，初始状态 pending。
// 套餐名此刻能解析成功时，把条款快照冗余到流水上，避免审批时名字失配；
// 解析失败不阻塞创建（审批时兜底再查一次）
func (s *TransactionService) Create(userID int64, req *dto.CreateTransactionRequest) (*model.Transaction, error) {
	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Membership.DefaultCurrency
	}

	txn := &model.Transaction{
		UserID:       userID,
		PayerAccount: req.UserAccount,
		Method:       req.Method,
		PlanName:     req.PlanName,
		Amount:       req.Amount,
		Currency:     currency,
		Note:         req.Content,
		Status:       model.TransactionStatusPending,
		SubmittedAt:  time.Now(),
	}

	plan, err := s.planRepo.GetByName(req.PlanName)
	if err == nil {
		txn.PlanID = &plan.ID
		txn.PlanDurationDays = &plan.DurationDays
		txn.PlanPostLimit = &plan.PostLimit
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.transactionRepo.Create(txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// List 按提交时间倒序返回全部流水
func (s *TransactionService) List() ([]*model.Transaction, error) {
	return s.transactionRepo.List()
}

// Get 查询单条流水
func (s *TransactionService) Get(id int64) (*model.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return txn, nil
}

// SetStatus 审批流水。状态机只允许 pending -> approved / pending -> rejected，
// 终态不可再变更。approved 时在同一事务内授予会员，授予失败整体回滚
func (s *TransactionService) SetStatus(id int64, newStatus string) error {
	if newStatus != model.TransactionStatusApproved && newStatus != model.TransactionStatusRejected {
		return ErrInvalidTargetStatus
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		txnRepo := s.transactionRepo.WithTx(tx)

		txn, err := txnRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		if txn.Status != model.TransactionStatusPending {
			return ErrTransactionFinalized
		}

		if err := txnRepo.UpdateStatus(id, newStatus); err != nil {
			return err
		}

		if newStatus == model.TransactionStatusApproved {
			if _, err := s.grant(tx, txn); err != nil {
				return err
			}
		}

		return nil
	})
}

// grant 把已审批的流水物化为会员记录：start=now，end=start+套餐有效期。
// 优先用流水上的条款快照，没有快照时按套餐名兜底查一次
func (s *TransactionService) grant(tx *gorm.DB, txn *model.Transaction) (*model.Membership, error) {
	planID, durationDays := int64(0), 0

	if txn.PlanID != nil && txn.PlanDurationDays != nil {
		planID = *txn.PlanID
		durationDays = *txn.PlanDurationDays
	} else {
		plan, err := s.planRepo.WithTx(tx).GetByName(txn.PlanName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGrantPlanNotFound
			}
			return nil, err
		}
		planID = plan.ID
		durationDays = plan.DurationDays
	}

	now := time.Now()
	membership := &model.Membership{
		UserID:        txn.UserID,
		PlanID:        planID,
		TransactionID: txn.ID,
		StartAt:       now,
		EndAt:         now.AddDate(0, 0, durationDays),
		Status:        model.MembershipStatusActive,
	}

	if err := s.membershipRepo.WithTx(tx).Create(membership); err != nil {
		return nil, err
	}

	return membership, nil
}
