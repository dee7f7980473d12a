package dto

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *int64 `json:"parent_id,omitempty"`
	Rating   int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// CommentUser 评论中的用户信息
type CommentUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CommentItem 评论列表项
type CommentItem struct {
	ID        int64          `json:"id"`
	ParentID  *int64         `json:"parent_id,omitempty"`
	Content   string         `json:"content"`
	Rating    int            `json:"rating"`
	User      *CommentUser   `json:"user,omitempty"`
	Replies   []*CommentItem `json:"replies,omitempty"`
	CreatedAt string         `json:"created_at"`
}
