package dto

// MembershipInfo 当前生效的会员信息
type MembershipInfo struct {
	ID        int64  `json:"id"`
	PlanID    int64  `json:"plan_id"`
	PlanName  string `json:"plan_name"`
	PostLimit int    `json:"post_limit"`
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
}

// MembershipStatus 会员与配额的综合判定结果
type MembershipStatus struct {
	HasActiveMembership   bool            `json:"has_active_membership"`
	Membership            *MembershipInfo `json:"membership,omitempty"`
	CurrentMonthPostCount int             `json:"current_month_post_count"`
	CanCreatePost         bool            `json:"can_create_post"`
	CanRenew              bool            `json:"can_renew"`
	DaysRemaining         int             `json:"days_remaining,omitempty"`
}
