package main

import (
	"fmt"
	"log"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/api"
	"github.com/wrstudios/estate_go_server/internal/api/handler"
	"github.com/wrstudios/estate_go_server/internal/database"
	"github.com/wrstudios/estate_go_server/internal/pkg/lock"
	"github.com/wrstudios/estate_go_server/internal/repository"
	"github.com/wrstudios/estate_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化分布式锁
	locker := lock.New(rdb)

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, cfg)
	planService := service.NewPlanService(planRepo, cfg)
	quotaService := service.NewQuotaService(membershipRepo, postRepo)
	transactionService := service.NewTransactionService(db, transactionRepo, planRepo, membershipRepo, cfg)
	postService := service.NewPostService(db, postRepo, commentRepo, quotaService, locker)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	planHandler := handler.NewPlanHandler(planService)
	transactionHandler := handler.NewTransactionHandler(transactionService)
	membershipHandler := handler.NewMembershipHandler(quotaService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		userHandler,
		planHandler,
		transactionHandler,
		membershipHandler,
		postHandler,
		commentHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
