package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wrstudios/estate_go_server/config"
	"github.com/wrstudios/estate_go_server/internal/api/handler"
	"github.com/wrstudios/estate_go_server/internal/api/middleware"
)

type Router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	planHandler        *handler.PlanHandler
	transactionHandler *handler.TransactionHandler
	membershipHandler  *handler.MembershipHandler
	postHandler        *handler.PostHandler
	commentHandler     *handler.CommentHandler
	cfg                *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	planHandler *handler.PlanHandler,
	transactionHandler *handler.TransactionHandler,
	membershipHandler *handler.MembershipHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:        authHandler,
		userHandler:        userHandler,
		planHandler:        planHandler,
		transactionHandler: transactionHandler,
		membershipHandler:  membershipHandler,
		postHandler:        postHandler,
		commentHandler:     commentHandler,
		cfg:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		// 公开接口 - 套餐、房源、评论读取
		api.GET("/plans", r.planHandler.List)
		api.GET("/plans/:id", r.planHandler.Get)
		api.GET("/posts", r.postHandler.List)
		api.GET("/posts/:id", r.postHandler.Get)
		api.GET("/posts/:id/images", r.postHandler.ListImages)
		api.GET("/posts/:id/comments", r.commentHandler.List)

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			authenticated.GET("/auth/me", r.authHandler.Me)

			// 用户
			authenticated.GET("/users/:id", r.userHandler.Get)
			authenticated.PUT("/users/:id", r.userHandler.Update)
			authenticated.GET("/users/:id/membership", r.membershipHandler.Status)

			// 购买流水
			authenticated.POST("/transactions", r.transactionHandler.Create)
			authenticated.GET("/transactions/:id", r.transactionHandler.Get)

			// 房源
			authenticated.POST("/posts", r.postHandler.Create)
			authenticated.DELETE("/posts/:id", r.postHandler.Delete)

			// 评论
			authenticated.POST("/posts/:id/comments", r.commentHandler.Create)
			authenticated.DELETE("/comments/:id", r.commentHandler.Delete)
		}

		// 管理员接口
		admin := api.Group("")
		admin.Use(middleware.Auth(r.cfg.JWT.Secret), middleware.AdminOnly())
		{
			admin.GET("/users", r.userHandler.List)
			admin.DELETE("/users/:id", r.userHandler.Delete)

			admin.POST("/plans", r.planHandler.Create)
			admin.PUT("/plans/:id", r.planHandler.Update)
			admin.DELETE("/plans/:id", r.planHandler.Delete)

			admin.GET("/transactions", r.transactionHandler.List)
			admin.PUT("/transactions/:id/status", r.transactionHandler.UpdateStatus)
		}
	}

	return engine
}
