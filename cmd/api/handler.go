package api

import (
	"log"

	authUsecase "stylemail-backend/internal/auth/usecase"
	composeDelivery "stylemail-backend/internal/compose/delivery"
	composeUsecasePkg "stylemail-backend/internal/compose/usecase"
	styleDelivery "stylemail-backend/internal/style/delivery"
	styleUsecasePkg "stylemail-backend/internal/style/usecase"
	"stylemail-backend/pkg/ai"
	"stylemail-backend/pkg/chroma"
	"stylemail-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	config         *config.Config
	styleHandler   *styleDelivery.StyleHandler
	composeHandler *composeDelivery.ComposeHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, styleUc styleUsecasePkg.StyleUsecase, composeUc composeUsecasePkg.ComposeUsecase, cfg *config.Config) *Handler {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI service with dynamic config getters for runtime updates
	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	stylist, err := ai.NewStylistWithDynamicConfig(aiCfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s (dynamic config enabled)", cfg.AIProvider)
	}

	if stylist != nil {
		styleUc.SetStylist(stylist)
		composeUc.SetStylist(stylist)
	}

	// Initialize Chroma client for topic-similarity example retrieval
	if cfg.ChromaAPIKey != "" {
		chromaClient, err := chroma.NewClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Chroma client: %v. Example retrieval will fall back to recency.", err)
		} else {
			styleUc.SetSampleIndexer(chromaClient)
			composeUc.SetExampleFinder(chromaClient)
			log.Println("Chroma client initialized successfully")
		}
	} else {
		log.Println("Warning: CHROMA_API_KEY not set. Example retrieval will fall back to recency.")
	}

	styleHandler := styleDelivery.NewStyleHandler(styleUc)
	composeHandler := composeDelivery.NewComposeHandler(composeUc)

	return &Handler{
		authUsecase:    authUc,
		config:         cfg,
		styleHandler:   styleHandler,
		composeHandler: composeHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.styleHandler, h.composeHandler)

	return r.Run(addr)
}
