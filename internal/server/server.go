package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arranger/internal/config"
	"arranger/internal/handler"
	"arranger/internal/middleware"
	"arranger/internal/model"
	"arranger/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Schedule{},
		&model.Candidate{},
		&model.Availability{},
		&model.Comment{},
	); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, cfg.JWTSecret)
	scheduleHandler := handler.NewScheduleHandler(scheduleRepo, candidateRepo, availabilityRepo, commentRepo)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityRepo)
	commentHandler := handler.NewCommentHandler(commentRepo)

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Schedule routes
		authorized.GET("/schedules/new", scheduleHandler.New)
		authorized.POST("/schedules", scheduleHandler.Create)
		authorized.GET("/schedules/:scheduleId", scheduleHandler.GetByID)
		authorized.GET("/schedules/:scheduleId/edit", scheduleHandler.Edit)
		authorized.POST("/schedules/:scheduleId", scheduleHandler.Update)

		// Availability and comment write paths used by the schedule page
		authorized.POST("/schedules/:scheduleId/users/:userId/candidates/:candidateId", availabilityHandler.Update)
		authorized.POST("/schedules/:scheduleId/users/:userId/comments", commentHandler.Update)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
