package main

import (
	"log"

	api "stylemail-backend/cmd/api"
	authdomain "stylemail-backend/internal/auth/domain"
	authRepo "stylemail-backend/internal/auth/repository"
	authUsecase "stylemail-backend/internal/auth/usecase"
	composedomain "stylemail-backend/internal/compose/domain"
	composeRepo "stylemail-backend/internal/compose/repository"
	composeUsecase "stylemail-backend/internal/compose/usecase"
	styledomain "stylemail-backend/internal/style/domain"
	styleRepo "stylemail-backend/internal/style/repository"
	styleUsecase "stylemail-backend/internal/style/usecase"
	"stylemail-backend/pkg/config"
	"stylemail-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&styledomain.EmailPair{},
		&styledomain.StyleAnalysis{},
		&styledomain.SyntheticEmail{},
		&styledomain.StyleProfile{},
		&composedomain.GeneratedEmail{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	pairRepo := styleRepo.NewEmailPairRepository(db)
	analysisRepo := styleRepo.NewStyleAnalysisRepository(db)
	sampleRepo := styleRepo.NewSyntheticEmailRepository(db)
	profileRepo := styleRepo.NewStyleProfileRepository(db)
	generatedRepo := composeRepo.NewGeneratedEmailRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	styleUsecaseInstance := styleUsecase.NewStyleUsecase(pairRepo, analysisRepo, sampleRepo, profileRepo, cfg)
	composeUsecaseInstance := composeUsecase.NewComposeUsecase(generatedRepo, sampleRepo, analysisRepo, profileRepo, pairRepo, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, styleUsecaseInstance, composeUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
