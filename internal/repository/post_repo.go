package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *PostRepository) WithTx(tx *gorm.DB) *PostRepository {
	if tx == nil {
		return r
	}
	return &PostRepository{db: tx}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) GetByID(id int64) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("Images").Preload("User").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CountByUserSince 统计用户自 since 起创建的房源数量（配额口径）
func (r *PostRepository) CountByUserSince(userID int64, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *PostRepository) List(page, pageSize int) ([]*model.Post, int64, error) {
	var posts []*model.Post
	var total int64

	query := r.db.Model(&model.Post{}).Preload("User").Preload("Images")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepository) Delete(id int64) error {
	return r.db.Delete(&model.Post{}, id).Error
}

// ListImages 返回房源图片，按创建时间升序
func (r *PostRepository) ListImages(postID int64) ([]*model.Image, error) {
	var images []*model.Image
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&images).Error
	return images, err
}

func (r *PostRepository) DeleteImagesByPostID(postID int64) error {
	return r.db.Where("post_id = ?", postID).Delete(&model.Image{}).Error
}
