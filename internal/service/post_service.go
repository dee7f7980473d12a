package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/pkg/lock"
	"github.com/wrstudios/estate_go_server/internal/repository"
)

var (
	ErrPostNotFound       = errors.New("房源不存在")
	ErrPostPermission     = errors.New("无权操作此房源")
	ErrMembershipRequired = errors.New("需要有效会员才能发布房源，请先购买套餐")
)

// PostLimitReachedError 当月发布量已达套餐上限
type PostLimitReachedError struct {
	Limit int
}

func (e *PostLimitReachedError) Error() string {
	return fmt.Sprintf("已达到每月 %d 条的发布上限，请升级套餐或等待下月", e.Limit)
}

type PostService struct {
	db           *gorm.DB
	postRepo     *repository.PostRepository
	commentRepo  *repository.CommentRepository
	quotaService *QuotaService
	locker       *lock.Locker
}

func NewPostService(
	db *gorm.DB,
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	quotaService *QuotaService,
	locker *lock.Locker,
) *PostService {
	return &PostService{
		db:           db,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		quotaService: quotaService,
		locker:       locker,
	}
}

// Create 发布房源。配额检查和写入在同一用户锁 + 同一事务内完成，
// 并发请求不会把有效上限打穿
func (s *PostService) Create(ctx context.Context, userID int64, req *dto.CreatePostRequest) (*model.Post, error) {
	var post *model.Post

	err := s.locker.WithPostQuota(ctx, userID, func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			status, err := s.quotaService.EvaluateTx(tx, userID, time.Now())
			if err != nil {
				return err
			}

			if !status.HasActiveMembership {
				return ErrMembershipRequired
			}
			if !status.CanCreatePost {
				return &PostLimitReachedError{Limit: status.Membership.PostLimit}
			}

			postType := req.PostType
			if postType == "" {
				postType = "listing"
			}

			post = &model.Post{
				UserID:      userID,
				Title:       req.Title,
				Description: req.Description,
				Address:     req.Address,
				Price:       req.Price,
				Area:        req.Area,
				PostType:    postType,
				Status:      "approved",
			}

			for _, url := range req.Images {
				post.Images = append(post.Images, model.Image{URL: url})
			}

			return s.postRepo.WithTx(tx).Create(post)
		})
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Get 查询房源详情
func (s *PostService) Get(id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// List 分页返回房源列表
func (s *PostService) List(page, pageSize int) ([]*dto.PostItem, int64, error) {
	posts, total, err := s.postRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.PostItem, len(posts))
	for i, p := range posts {
		item := &dto.PostItem{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Address:     p.Address,
			Price:       p.Price,
			Area:        p.Area,
			PostType:    p.PostType,
			Status:      p.Status,
			UserID:      p.UserID,
			ImageCount:  len(p.Images),
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		}
		if p.User != nil {
			item.UserName = p.User.Name
		}
		if count, err := s.commentRepo.CountByPostID(p.ID); err == nil {
			item.CommentCount = count
		}
		items[i] = item
	}

	return items, total, nil
}

// Delete 删除房源及其图片，仅本人或管理员可操作
func (s *PostService) Delete(userID int64, isAdmin bool, postID int64) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}

	if post.UserID != userID && !isAdmin {
		return ErrPostPermission
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.postRepo.WithTx(tx)
		if err := repo.DeleteImagesByPostID(postID); err != nil {
			return err
		}
		return repo.Delete(postID)
	})
}

// ListImages 返回房源图片 URL 列表
func (s *PostService) ListImages(postID int64) ([]string, error) {
	if _, err := s.Get(postID); err != nil {
		return nil, err
	}

	images, err := s.postRepo.ListImages(postID)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return urls, nil
}
