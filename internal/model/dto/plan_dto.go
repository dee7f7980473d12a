package dto

// CreatePlanRequest 创建套餐请求（仅管理员）
type CreatePlanRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	PostLimit   int     `json:"post_limit" binding:"omitempty,gt=0"`
}

// UpdatePlanRequest 更新套餐请求（仅管理员）
type UpdatePlanRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty" binding:"omitempty,gt=0"`
	PostLimit   *int     `json:"post_limit,omitempty" binding:"omitempty,gt=0"`
}
