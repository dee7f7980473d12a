package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/repository"
)

var (
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCommentPermission = errors.New("无权操作此评论")
	ErrParentNotFound    = errors.New("父评论不存在")
	ErrParentNotInPost   = errors.New("父评论不属于该房源")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	postRepo *repository.PostRepository,
	userRepo *repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// Create 发表评论
func (s *CommentService) Create(userID, postID int64, req *dto.CreateCommentRequest) (*dto.CommentItem, error) {
	// 验证房源存在
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// 如果是回复，验证父评论
	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}

		if parent.PostID != postID {
			return nil, ErrParentNotInPost
		}

		// 只支持一级回复
		if parent.ParentID != nil {
			req.ParentID = parent.ParentID
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	comment := &model.Comment{
		UserID:   userID,
		PostID:   postID,
		ParentID: req.ParentID,
		Content:  req.Content,
		Rating:   rating,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return &dto.CommentItem{
		ID:       comment.ID,
		ParentID: comment.ParentID,
		Content:  comment.Content,
		Rating:   comment.Rating,
		User: &dto.CommentUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Delete 删除评论，仅本人或管理员可操作
func (s *CommentService) Delete(userID int64, isAdmin bool, commentID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != userID && !isAdmin {
		return ErrCommentPermission
	}

	return s.commentRepo.Delete(commentID)
}

// ListByPostID 获取房源的评论列表，回复挂在一级评论下
func (s *CommentService) ListByPostID(postID int64) ([]*dto.CommentItem, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByPostID(postID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentItem, 0)
	index := make(map[int64]*dto.CommentItem)

	for _, c := range comments {
		item := buildCommentItem(c)
		if c.ParentID == nil {
			items = append(items, item)
			index[c.ID] = item
			continue
		}
		if parent, ok := index[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, item)
		}
	}

	return items, nil
}

func buildCommentItem(c *model.Comment) *dto.CommentItem {
	item := &dto.CommentItem{
		ID:        c.ID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Rating:    c.Rating,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}

	if c.User != nil {
		item.User = &dto.CommentUser{
			ID:    c.User.ID,
			Name:  c.User.Name,
			Email: c.User.Email,
		}
	}

	return item
}
