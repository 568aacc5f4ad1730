package server

import (
	"context"
	"strings"
	"time"

	"eduhub.vn/studyportal/internal/config"
	"eduhub.vn/studyportal/internal/middleware"
	"eduhub.vn/studyportal/pkg/storage"

	activityHttp "eduhub.vn/studyportal/internal/modules/activity/delivery/http"
	activityRepo "eduhub.vn/studyportal/internal/modules/activity/repository"
	activityService "eduhub.vn/studyportal/internal/modules/activity/service"

	assignmentHttp "eduhub.vn/studyportal/internal/modules/assignment/delivery/http"
	assignmentRepo "eduhub.vn/studyportal/internal/modules/assignment/repository"
	assignmentService "eduhub.vn/studyportal/internal/modules/assignment/service"

	commentHttp "eduhub.vn/studyportal/internal/modules/comment/delivery/http"
	commentRepo "eduhub.vn/studyportal/internal/modules/comment/repository"
	commentService "eduhub.vn/studyportal/internal/modules/comment/service"

	deadlineHttp "eduhub.vn/studyportal/internal/modules/deadline/delivery/http"
	deadlineRepo "eduhub.vn/studyportal/internal/modules/deadline/repository"
	deadlineService "eduhub.vn/studyportal/internal/modules/deadline/service"

	documentHttp "eduhub.vn/studyportal/internal/modules/document/delivery/http"
	documentRepo "eduhub.vn/studyportal/internal/modules/document/repository"
	documentService "eduhub.vn/studyportal/internal/modules/document/service"

	exportHttp "eduhub.vn/studyportal/internal/modules/export/delivery/http"
	exportService "eduhub.vn/studyportal/internal/modules/export/service"

	imageHttp "eduhub.vn/studyportal/internal/modules/image/delivery/http"
	imageRepo "eduhub.vn/studyportal/internal/modules/image/repository"
	imageService "eduhub.vn/studyportal/internal/modules/image/service"

	linkHttp "eduhub.vn/studyportal/internal/modules/link/delivery/http"
	linkRepo "eduhub.vn/studyportal/internal/modules/link/repository"
	linkService "eduhub.vn/studyportal/internal/modules/link/service"

	noteHttp "eduhub.vn/studyportal/internal/modules/note/delivery/http"
	noteRepo "eduhub.vn/studyportal/internal/modules/note/repository"
	noteService "eduhub.vn/studyportal/internal/modules/note/service"

	statHttp "eduhub.vn/studyportal/internal/modules/stat/delivery/http"
	statRepo "eduhub.vn/studyportal/internal/modules/stat/repository"
	statService "eduhub.vn/studyportal/internal/modules/stat/service"

	todoHttp "eduhub.vn/studyportal/internal/modules/todo/delivery/http"
	todoRepo "eduhub.vn/studyportal/internal/modules/todo/repository"
	todoService "eduhub.vn/studyportal/internal/modules/todo/service"

	userHttp "eduhub.vn/studyportal/internal/modules/user/delivery/http"
	userRepo "eduhub.vn/studyportal/internal/modules/user/repository"
	userService "eduhub.vn/studyportal/internal/modules/user/service"

	viewService "eduhub.vn/studyportal/internal/modules/view/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, fileStorage storage.FileStorage, cfg *config.Config) *Server {
	activityRepository := activityRepo.NewActivityRepository(db)
	activitySvc := activityService.NewActivityService(activityRepository)
	activityHandler := activityHttp.NewActivityHandler(activitySvc)

	userRepository := userRepo.NewUserRepository(db)
	authSvc := userService.NewAuthService(userRepository, activitySvc)
	authHandler := userHttp.NewAuthHandler(authSvc)

	documentRepository := documentRepo.NewDocumentRepository(db)
	documentSvc := documentService.NewDocumentService(documentRepository, fileStorage, activitySvc)
	documentHandler := documentHttp.NewDocumentHandler(documentSvc)

	assignmentRepository := assignmentRepo.NewAssignmentRepository(db)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepository, fileStorage, activitySvc)
	assignmentHandler := assignmentHttp.NewAssignmentHandler(assignmentSvc)

	deadlineRepository := deadlineRepo.NewDeadlineRepository(db)
	deadlineSvc := deadlineService.NewDeadlineService(deadlineRepository, activitySvc)
	deadlineHandler := deadlineHttp.NewDeadlineHandler(deadlineSvc)

	imageRepository := imageRepo.NewImageRepository(db)
	imageSvc := imageService.NewImageService(imageRepository, fileStorage, activitySvc)

	linkRepository := linkRepo.NewLinkRepository(db)
	linkSvc := linkService.NewLinkService(linkRepository, activitySvc)

	counterSvc := viewService.NewCounterService(redisClient, imageRepository, linkRepository)
	if redisClient != nil {
		go counterSvc.StartSyncWorker(context.Background())
	}

	imageHandler := imageHttp.NewImageHandler(imageSvc, counterSvc)
	linkHandler := linkHttp.NewLinkHandler(linkSvc, counterSvc)

	noteRepository := noteRepo.NewNoteRepository(db)
	noteSvc := noteService.NewNoteService(noteRepository, activitySvc)
	noteHandler := noteHttp.NewNoteHandler(noteSvc)

	todoRepository := todoRepo.NewTodoRepository(db)
	todoSvc := todoService.NewTodoService(todoRepository, activitySvc)
	todoHandler := todoHttp.NewTodoHandler(todoSvc)

	commentRepository := commentRepo.NewCommentRepository(db)
	commentSvc := commentService.NewCommentService(commentRepository)
	commentHandler := commentHttp.NewCommentHandler(commentSvc)

	statRepository := statRepo.NewStatRepository(db)
	statSvc := statService.NewStatService(statRepository)
	statHandler := statHttp.NewStatHandler(statSvc)

	exportSvc := exportService.NewExportService(db)
	exportHandler := exportHttp.NewExportHandler(exportSvc, cfg.DatabasePath)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.MaxMultipartMemory = storage.MaxUploadSize

	setupCORS(router, cfg.AllowedOrigins)

	// Uploaded files are also reachable directly, the download endpoints
	// just add Content-Disposition and counters.
	router.Static("/uploads", fileStorage.Root())

	authMiddleware := middleware.NewAuthMiddleware(userRepository)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authed := auth.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.GET("/verify", authHandler.Verify)
			authed.POST("/logout", authHandler.Logout)
			authed.GET("/profile", authHandler.GetProfile)
			authed.PATCH("/profile", authHandler.UpdateProfile)
			authed.POST("/change-password", authHandler.ChangePassword)
		}
	}

	documents := api.Group("/documents")
	{
		documents.GET("", documentHandler.GetDocuments)
		documents.POST("", authMiddleware.RequireAuth(), documentHandler.UploadDocument)
		documents.POST("/from-url", documentHandler.ImportFromURL)
		documents.GET("/:id/preview", documentHandler.PreviewDocument)
		documents.GET("/:id/download", documentHandler.DownloadDocument)
		documents.POST("/:id/tags", documentHandler.AddTag)
		documents.POST("/:id/share", documentHandler.ShareDocument)
		documents.POST("/:id/favorite", documentHandler.ToggleFavorite)
		documents.POST("/:id/collaborators", documentHandler.AddCollaborator)
		documents.DELETE("/:id", documentHandler.DeleteDocument)
	}

	assignments := api.Group("/assignments")
	{
		assignments.GET("", assignmentHandler.GetAssignments)
		assignments.POST("", assignmentHandler.SubmitAssignment)
		assignments.PATCH("/:id/grade", assignmentHandler.GradeAssignment)
		assignments.GET("/:id/download", assignmentHandler.DownloadAssignment)
		assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
	}

	deadlines := api.Group("/deadlines")
	{
		deadlines.GET("", deadlineHandler.GetDeadlines)
		deadlines.POST("", deadlineHandler.CreateDeadline)
		deadlines.PATCH("/:id", deadlineHandler.UpdateDeadlineStatus)
		deadlines.DELETE("/:id", deadlineHandler.DeleteDeadline)
	}

	images := api.Group("/images")
	{
		images.GET("", imageHandler.GetImages)
		images.POST("", imageHandler.UploadImage)
		images.POST("/:id/view", imageHandler.IncrementView)
		images.GET("/:id/download", imageHandler.DownloadImage)
		images.DELETE("/:id", imageHandler.DeleteImage)
	}

	links := api.Group("/links")
	{
		links.GET("", linkHandler.GetLinks)
		links.POST("", linkHandler.CreateLink)
		links.POST("/:id/click", linkHandler.IncrementClick)
		links.DELETE("/:id", linkHandler.DeleteLink)
	}

	notes := api.Group("/notes")
	{
		notes.GET("", noteHandler.GetNotes)
		notes.POST("", noteHandler.CreateNote)
		notes.PATCH("/:id", noteHandler.UpdateNote)
		notes.DELETE("/:id", noteHandler.DeleteNote)
	}

	todos := api.Group("/todos")
	{
		todos.GET("", todoHandler.GetTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.PATCH("/:id", todoHandler.UpdateTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:entityType/:entityId", commentHandler.GetComments)
		comments.POST("", commentHandler.CreateComment)
	}

	api.GET("/stats", statHandler.GetStats)

	activities := api.Group("/activities")
	{
		activities.GET("", activityHandler.GetActivities)
		activities.GET("/ws", activityHandler.StreamActivities)
	}

	export := api.Group("/export")
	{
		export.GET("/all", exportHandler.ExportAll)
		export.GET("/database", exportHandler.ExportDatabase)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if allowedOrigins == "" || allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(allowedOrigins, ",")
		cfg.AllowCredentials = true
	}

	router.Use(cors.New(cfg))
}
