package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/repository"
)

var (
	ErrPlanNotFound   = errors.New("套餐不存在")
	ErrPlanNameExists = errors.New("套餐名称已存在")
	ErrPlanInUse      = errors.New("套餐已被会员记录引用，不可修改或删除")
)

type PlanService struct {
	planRepo *repository.PlanRepository
	cfg      *config.Config
}

func NewPlanService(planRepo *repository.PlanRepository, cfg *config.Config) *PlanService {
	return &PlanService{
		planRepo: planRepo,
		cfg:      cfg,
	}
}

// Create 创建套餐
func (s *PlanService) Create(req *dto.CreatePlanRequest) (*model.Plan, error) {
	if _, err := s.planRepo.GetByName(req.Name); err == nil {
		return nil, ErrPlanNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	postLimit := req.PostLimit
	if postLimit <= 0 {
		postLimit = s.cfg.Membership.DefaultPostLimit
	}

	plan := &model.Plan{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		DurationDays: req.Duration,
		PostLimit:    postLimit,
	}

	if err := s.planRepo.Create(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Get 查询套餐
func (s *PlanService) Get(id int64) (*model.Plan, error) {
	plan, err := s.planRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// FindByName 按套餐名精确查找
func (s *PlanService) FindByName(name string) (*model.Plan, error) {
	plan, err := s.planRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// List 按价格升序返回所有套餐
func (s *PlanService) List() ([]*model.Plan, error) {
	return s.planRepo.List()
}

// Update 更新套餐。已被会员记录引用的套餐条款不可变
func (s *PlanService) Update(id int64, req *dto.UpdatePlanRequest) (*model.Plan, error) {
	plan, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	referenced, err := s.planRepo.CountMemberships(id)
	if err != nil {
		return nil, err
	}
	if referenced > 0 {
		return nil, ErrPlanInUse
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Duration != nil {
		plan.DurationDays = *req.Duration
	}
	if req.PostLimit != nil {
		plan.PostLimit = *req.PostLimit
	}

	if err := s.planRepo.Update(plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// Delete 删除套餐。已被会员记录引用的套餐不可删除
func (s *PlanService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	referenced, err := s.planRepo.CountMemberships(id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return ErrPlanInUse
	}

	return s.planRepo.Delete(id)
}
