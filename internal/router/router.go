package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ciao-api/internal/client"
	"ciao-api/internal/handler"
	"ciao-api/internal/metrics"
	"ciao-api/internal/middleware"
	"ciao-api/internal/repository"
	"ciao-api/internal/service"
)

// Config holds the dependencies needed to assemble the router
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	JWTTTL         time.Duration
	AllowedOrigins []string
	BasePath       string
	Metrics        *metrics.Metrics
	S3Client       client.S3ClientInterface
}

// Setup builds the gin engine with all routes and middleware wired
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	tokenRepo := repository.NewVerificationTokenRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	memberRepo := repository.NewBoardMemberRepository(cfg.DB)
	columnRepo := repository.NewColumnRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)
	assignmentRepo := repository.NewAssignmentRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	templateRepo := repository.NewTemplateRepository(cfg.DB)

	// Services
	jwtTTL := cfg.JWTTTL
	if jwtTTL == 0 {
		jwtTTL = 24 * time.Hour
	}
	s3Client := cfg.S3Client
	if s3Client == nil {
		s3Client = client.NewMockS3Client()
	}

	accessService := service.NewAccessService(boardRepo, memberRepo, cfg.Redis, cfg.Logger)
	authService := service.NewAuthService(userRepo, tokenRepo, cfg.JWTSecret, jwtTTL, cfg.Logger)
	userService := service.NewUserService(userRepo, tokenRepo, boardRepo, assignmentRepo, projectRepo, templateRepo, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, accessService, cfg.Logger, cfg.Metrics)
	columnService := service.NewColumnService(columnRepo, accessService, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, columnRepo, assignmentRepo, attachmentRepo, accessService, cfg.Logger, cfg.Metrics)
	memberService := service.NewMemberService(memberRepo, boardRepo, userRepo, accessService, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, columnRepo, attachmentRepo, accessService, cfg.Logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, s3Client, cfg.Logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, boardRepo, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, boardRepo, cfg.Logger)
	templateService := service.NewTemplateService(templateRepo, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService)
	columnHandler := handler.NewColumnHandler(columnService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)
	memberHandler := handler.NewMemberHandler(memberService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	projectHandler := handler.NewProjectHandler(projectService)
	templateHandler := handler.NewTemplateHandler(templateService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Probes and metrics stay outside the base path and the auth group
	registerOps := func(g *gin.RouterGroup) {
		g.GET("/health", healthHandler.Health)
		g.GET("/ready", healthHandler.Ready)
		g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	registerOps(r.Group(""))

	base := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		registerOps(base)
	}

	auth := base.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify", authHandler.VerifyEmail)
		auth.POST("/login", authHandler.Login)
	}

	api := base.Group("")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		api.GET("/users/me", userHandler.GetMe)
		api.PUT("/users/me", userHandler.UpdateMe)
		api.DELETE("/users/me", userHandler.DeleteMe)

		api.POST("/boards", boardHandler.CreateBoard)
		api.GET("/boards", boardHandler.ListBoards)
		api.GET("/boards/:boardId", boardHandler.GetBoard)
		api.PUT("/boards/:boardId", boardHandler.UpdateBoard)
		api.DELETE("/boards/:boardId", boardHandler.DeleteBoard)

		api.POST("/boards/:boardId/columns", columnHandler.CreateColumn)
		api.GET("/boards/:boardId/columns", columnHandler.ListColumns)
		api.PUT("/columns/:columnId", columnHandler.UpdateColumn)
		api.DELETE("/columns/:columnId", columnHandler.DeleteColumn)

		api.POST("/columns/:columnId/tasks", taskHandler.CreateTask)
		api.GET("/columns/:columnId/tasks", taskHandler.ListTasks)
		api.GET("/tasks/:taskId", taskHandler.GetTask)
		api.PUT("/tasks/:taskId", taskHandler.UpdateTask)
		api.PUT("/tasks/:taskId/move", taskHandler.MoveTask)
		api.DELETE("/tasks/:taskId", taskHandler.DeleteTask)

		api.POST("/tasks/:taskId/comments", commentHandler.AddComment)
		api.GET("/tasks/:taskId/comments", commentHandler.ListComments)
		api.DELETE("/comments/:commentId", commentHandler.DeleteComment)

		api.POST("/boards/:boardId/members", memberHandler.UpsertMember)
		api.GET("/boards/:boardId/members", memberHandler.ListMembers)
		api.DELETE("/boards/:boardId/members/:userId", memberHandler.RemoveMember)

		api.POST("/attachments/presigned-url", attachmentHandler.GeneratePresignedURL)
		api.DELETE("/attachments/:attachmentId", attachmentHandler.DeleteAttachment)

		api.POST("/assignments", assignmentHandler.CreateAssignment)
		api.GET("/assignments", assignmentHandler.ListAssignments)
		api.GET("/assignments/:assignmentId", assignmentHandler.GetAssignment)
		api.PUT("/assignments/:assignmentId", assignmentHandler.UpdateAssignment)
		api.DELETE("/assignments/:assignmentId", assignmentHandler.DeleteAssignment)

		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:projectId", projectHandler.GetProject)
		api.PUT("/projects/:projectId", projectHandler.UpdateProject)
		api.DELETE("/projects/:projectId", projectHandler.DeleteProject)

		api.POST("/templates", templateHandler.CreateTemplate)
		api.GET("/templates", templateHandler.ListTemplates)
		api.GET("/templates/:templateId", templateHandler.GetTemplate)
		api.PUT("/templates/:templateId", templateHandler.UpdateTemplate)
		api.DELETE("/templates/:templateId", templateHandler.DeleteTemplate)
	}

	return r
}
