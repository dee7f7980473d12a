package repository

import (
	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *TransactionRepository) WithTx(tx *gorm.DB) *TransactionRepository {
	if tx == nil {
		return r
	}
	return &TransactionRepository{db: tx}
}

func (r *TransactionRepository) Create(txn *model.Transaction) error {
	return r.db.Create(txn).Error
}

func (r *TransactionRepository) GetByID(id int64) (*model.Transaction, error) {
	var txn model.Transaction
	err := r.db.Where("id = ?", id).First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// List 按提交时间倒序返回所有流水
func (r *TransactionRepository) List() ([]*model.Transaction, error) {
	var txns []*model.Transaction
	err := r.db.Order("date DESC").Find(&txns).Error
	return txns, err
}

func (r *TransactionRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&model.Transaction{}).Where("id = ?", id).
		Update("status", status).Error
}
