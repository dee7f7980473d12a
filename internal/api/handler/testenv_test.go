package handler

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/api/middleware"
	"github.com/wrstudios/estate_go_server/internal/model"
	"github.com/wrstudios/estate_go_server/internal/pkg/jwt"
	"github.com/wrstudios/estate_go_server/internal/pkg/lock"
	"github.com/wrstudios/estate_go_server/internal/repository"
	"github.com/wrstudios/estate_go_server/internal/service"
	"github.com/wrstudios/estate_go_server/internal/testutil"
)

// testEnv 按 main.go 的装配方式搭建一套完整的测试环境
type testEnv struct {
	db     *gorm.DB
	cfg    *config.Config
	engine *gin.Engine

	transactionService *service.TransactionService
	quotaService       *service.QuotaService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := testConfig()

	planRepo := repository.NewPlanRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	quotaService := service.NewQuotaService(membershipRepo, postRepo)
	transactionService := service.NewTransactionService(db, transactionRepo, planRepo, membershipRepo, cfg)
	postService := service.NewPostService(db, postRepo, commentRepo, quotaService, lock.New(rdb))

	transactionHandler := NewTransactionHandler(transactionService)
	membershipHandler := NewMembershipHandler(quotaService)
	postHandler := NewPostHandler(postService)

	engine := gin.New()
	api := engine.Group("/api")

	authenticated := api.Group("")
	authenticated.Use(middleware.Auth(cfg.JWT.Secret))
	{
		authenticated.GET("/users/:id/membership", membershipHandler.Status)
		authenticated.POST("/transactions", transactionHandler.Create)
		authenticated.GET("/transactions/:id", transactionHandler.Get)
		authenticated.POST("/posts", postHandler.Create)
	}

	admin := api.Group("")
	admin.Use(middleware.Auth(cfg.JWT.Secret), middleware.AdminOnly())
	{
		admin.GET("/transactions", transactionHandler.List)
		admin.PUT("/transactions/:id/status", transactionHandler.UpdateStatus)
	}

	return &testEnv{
		db:                 db,
		cfg:                cfg,
		engine:             engine,
		transactionService: transactionService,
		quotaService:       quotaService,
	}
}

func (e *testEnv) memberToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, model.RoleMember, e.cfg.JWT.Secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func (e *testEnv) adminToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, model.RoleAdmin, e.cfg.JWT.Secret, 24)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}
