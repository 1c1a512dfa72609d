package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/ai"
	"github.com/RenoBuildCo/reno-marketplace/internal/audit"
	"github.com/RenoBuildCo/reno-marketplace/internal/cache"
	"github.com/RenoBuildCo/reno-marketplace/internal/chat"
	"github.com/RenoBuildCo/reno-marketplace/internal/config"
	"github.com/RenoBuildCo/reno-marketplace/internal/handlers"
	"github.com/RenoBuildCo/reno-marketplace/internal/middleware"
	"github.com/RenoBuildCo/reno-marketplace/internal/store"
	"github.com/RenoBuildCo/reno-marketplace/internal/uploads"
	ucQuote "github.com/RenoBuildCo/reno-marketplace/internal/usecase/quote"
	ucReview "github.com/RenoBuildCo/reno-marketplace/internal/usecase/review"
)

type Deps struct {
	Store     store.Store
	Config    *config.Config
	Cache     *cache.Cache
	AuditSink audit.Sink
	Uploader  *uploads.Uploader
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(d.AuditSink)

	aiClient := ai.NewClient(d.Config.OpenAIKey, d.Config.OpenAIBaseURL, d.Config.OpenAIModel)
	estimator := ai.NewEstimator(aiClient)

	registry := chat.NewRegistry()
	relay := chat.NewRelay(registry, aiClient)
	hub := chat.NewHub()

	// ======================================================
	// USE CASES
	// ======================================================
	requestQuotesUC := ucQuote.NewRequestQuotes(d.Store, auditDispatcher)
	updateQuoteUC := ucQuote.NewUpdateQuote(d.Store, auditDispatcher)
	createReviewUC := ucReview.NewCreateReview(d.Store, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Store, d.Config)
	meHandler := handlers.NewMeHandler(d.Store)
	configHandler := handlers.NewConfigHandler(d.Config)

	contractorHandler := handlers.NewContractorHandler(d.Store)
	projectHandler := handlers.NewProjectHandler(d.Store, d.Uploader, auditDispatcher)
	quoteHandler := handlers.NewQuoteHandler(d.Store, requestQuotesUC, updateQuoteUC)
	reviewHandler := handlers.NewReviewHandler(d.Store, createReviewUC)

	estimateHandler := handlers.NewEstimateHandler(estimator, d.Cache)
	designHandler := handlers.NewDesignHandler(d.Store, estimator, d.Cache, auditDispatcher)

	// ======================================================
	// CHAT (WEBSOCKET)
	// ======================================================
	r.GET("/ws/chat", func(c *gin.Context) {
		chat.Handle(hub, relay, c.Writer, c.Request)
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/config", configHandler.GetClientConfig)

		api.GET("/contractors", contractorHandler.List)
		api.GET("/contractors/:id", contractorHandler.Get)
		api.GET("/contractors/:id/reviews", contractorHandler.ListReviews)

		api.POST("/estimate/renovation", estimateHandler.Renovation)
		api.POST("/estimate/construction", estimateHandler.Construction)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/contractors", contractorHandler.Create)

			secured.GET("/projects", projectHandler.List)
			secured.POST("/projects", projectHandler.Create)
			secured.GET("/projects/:id", projectHandler.Get)
			secured.PATCH("/projects/:id", projectHandler.Update)
			secured.DELETE("/projects/:id", projectHandler.Delete)
			secured.POST("/projects/:id/photos", projectHandler.UploadPhotos)

			secured.GET("/quotes", quoteHandler.List)
			secured.GET("/quotes/:id", quoteHandler.Get)
			secured.POST("/quotes/request", quoteHandler.Request)
			secured.PATCH("/quotes/:id", quoteHandler.Update)

			secured.POST("/reviews", reviewHandler.Create)
			secured.GET("/reviews", reviewHandler.ListMine)

			secured.POST("/design/inspiration", designHandler.Generate)
			secured.GET("/design/inspirations", designHandler.List)
			secured.GET("/design/inspirations/:id", designHandler.Get)
		}
	}
}
