package repository

import (
	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *PlanRepository) WithTx(tx *gorm.DB) *PlanRepository {
	if tx == nil {
		return r
	}
	return &PlanRepository{db: tx}
}

func (r *PlanRepository) Create(plan *model.Plan) error {
	return r.db.Create(plan).Error
}

func (r *PlanRepository) GetByID(id int64) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByName 按套餐名精确查找（流水里存的是名字快照，不是外键）
func (r *PlanRepository) GetByName(name string) (*model.Plan, error) {
	var plan model.Plan
	err := r.db.Where("name = ?", name).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// List 按价格升序返回所有套餐
func (r *PlanRepository) List() ([]*model.Plan, error) {
	var plans []*model.Plan
	err := r.db.Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *PlanRepository) Update(plan *model.Plan) error {
	return r.db.Save(plan).Error
}

func (r *PlanRepository) Delete(id int64) error {
	return r.db.Delete(&model.Plan{}, id).Error
}

// CountMemberships 套餐被会员记录引用的次数
func (r *PlanRepository) CountMemberships(planID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Membership{}).Where("plan_id = ?", planID).Count(&count).Error
	return count, err
}
