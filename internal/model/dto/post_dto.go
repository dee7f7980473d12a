package dto

// CreatePostRequest 发布房源请求
type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Address     string   `json:"address" binding:"omitempty,max=255"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Area        *float64 `json:"area,omitempty" binding:"omitempty,gte=0"`
	PostType    string   `json:"post_type" binding:"omitempty,max=50"`
	Images      []string `json:"images,omitempty" binding:"omitempty,dive,max=500"`
}

// CreatePostResponse 发布房源响应
type CreatePostResponse struct {
	ID int64 `json:"id"`
}

// PostItem 房源列表项
type PostItem struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Address      string   `json:"address,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Area         *float64 `json:"area,omitempty"`
	PostType     string   `json:"post_type"`
	Status       string   `json:"status"`
	UserID       int64    `json:"user_id"`
	UserName     string   `json:"user_name,omitempty"`
	ImageCount   int      `json:"image_count"`
	CommentCount int64    `json:"comment_count"`
	CreatedAt    string   `json:"created_at"`
}
