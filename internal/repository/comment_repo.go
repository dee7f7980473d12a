package repository

import (
	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据 ID 获取评论
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete 软删除评论
func (r *CommentRepository) Delete(id int64) error {
	return r.db.Model(&model.Comment{}).Where("id = ?", id).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// ListByPostID 获取房源的全部评论，按创建时间升序
func (r *CommentRepository) ListByPostID(postID int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Preload("User").
		Where("post_id = ? AND deleted_at IS NULL", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByPostID 获取房源的评论数
func (r *CommentRepository) CountByPostID(postID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Where("post_id = ? AND deleted_at IS NULL", postID).
		Count(&count).Error
	return count, err
}
