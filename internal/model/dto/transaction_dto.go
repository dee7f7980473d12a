package dto

// CreateTransactionRequest 提交套餐购买流水
type CreateTransactionRequest struct {
	UserAccount string  `json:"user_account" binding:"required,max=255"`
	Method      string  `json:"method" binding:"required,max=50"`
	PlanName    string  `json:"plan_name" binding:"required,max=100"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"omitempty,max=10"`
	Content     string  `json:"content"`
}

// CreateTransactionResponse 创建流水响应
type CreateTransactionResponse struct {
	ID int64 `json:"id"`
}

// UpdateTransactionStatusRequest 审批请求
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
