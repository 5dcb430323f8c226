package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/config"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/handlers"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/oauth"
	infraRepo "github.com/BruksfildServices01/renovation-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	"github.com/BruksfildServices01/renovation-marketplace/internal/monitoring"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
	"github.com/BruksfildServices01/renovation-marketplace/internal/usecase/assistant"
	ucAuth "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/auth"
	"github.com/BruksfildServices01/renovation-marketplace/internal/usecase/dashboard"
	"github.com/BruksfildServices01/renovation-marketplace/internal/usecase/directory"
	ucOnboarding "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/onboarding"
	ucProject "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/project"
	ucRequest "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/request"
)

// Deps are the process-wide singletons built by main.
type Deps struct {
	DB          *gorm.DB
	Config      *config.Config
	Log         *zap.Logger
	Tokens      *identity.Tokens
	Audit       *audit.Dispatcher
	AuditLog    *audit.Logger
	Hub         *realtime.Hub
	Broadcaster realtime.Publisher
	Storage     storage.Storage
	AI          assistant.Provider
	OAuth       oauth.Registry
	OAuthStates oauth.StateStore
}

// multipart parts above this size spill to temporary files
const multipartMemory = 8 << 20

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.MaxMultipartMemory = multipartMemory
	r.Use(
		middleware.CORSMiddleware(d.Config.FrontendURL),
		middleware.RequestLogger(d.Log),
		middleware.PrometheusMetrics(),
		middleware.SentryMiddleware(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	profileRepo := infraRepo.NewProfileGormRepository(d.DB)
	projectRepo := infraRepo.NewProjectGormRepository(d.DB)
	requestRepo := infraRepo.NewRequestGormRepository(d.DB)

	resolver := identity.NewResolver(profileRepo)

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAuth.NewSignup(userRepo, d.Tokens, resolver, d.Audit)
	if !d.Config.IsProd() {
		// DNS lookups are skipped on local runs and in tests
		signupUC.DomainCheck = nil
	}
	loginUC := ucAuth.NewLogin(userRepo, d.Tokens, resolver, d.Audit)
	sessionUC := ucAuth.NewSession(userRepo, resolver)
	oauthUC := ucAuth.NewOAuth(d.OAuth, d.OAuthStates, userRepo, d.Tokens, resolver, d.Audit, d.Config.FrontendURL)

	createRequestUC := ucRequest.NewCreateRequest(requestRepo, d.Audit, d.Broadcaster)
	respondRequestUC := ucRequest.NewRespondRequest(requestRepo, d.Audit, d.Broadcaster)
	listPendingUC := ucRequest.NewListPending(requestRepo)

	listProjectsUC := ucProject.NewListProjects(projectRepo, resolver)
	createProjectUC := ucProject.NewCreateProject(projectRepo, d.Audit, d.Broadcaster)
	detailsUC := ucProject.NewGetDetails(projectRepo)
	progressUC := ucProject.NewUpdateProgress(projectRepo, d.Audit, d.Broadcaster)
	phasesUC := ucProject.NewManagePhases(projectRepo, d.Broadcaster)
	costsUC := ucProject.NewAddCost(projectRepo, d.Broadcaster)
	photosUC := ucProject.NewAddPhoto(projectRepo, d.Storage, d.Config.S3.BucketPhotos, d.Broadcaster, d.Log)
	subscribeUC := ucProject.NewAuthorizeSubscription(projectRepo)

	prefillUC := ucOnboarding.NewPrefill(profileRepo)
	submitUC := ucOnboarding.NewSubmit(
		profileRepo,
		d.Storage,
		ucOnboarding.Buckets{Avatars: d.Config.S3.BucketAvatars, Portfolio: d.Config.S3.BucketPortfolio},
		d.Audit,
		d.Log,
	)

	dashboardUC := dashboard.New(projectRepo, listPendingUC, resolver)
	listProsUC := directory.NewListPros(profileRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(signupUC, loginUC, sessionUC, oauthUC)
	meHandler := handlers.NewMeHandler(d.AuditLog)
	publicHandler := handlers.NewPublicHandler(listProsUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	projectHandler := handlers.NewProjectHandler(
		listProjectsUC,
		createProjectUC,
		detailsUC,
		progressUC,
		phasesUC,
		costsUC,
		photosUC,
	)
	requestHandler := handlers.NewRequestHandler(createRequestUC, respondRequestUC, listPendingUC)
	onboardingHandler := handlers.NewOnboardingHandler(prefillUC, submitUC)
	assistantHandler := handlers.NewAssistantHandler(assistant.New(d.AI))
	realtimeHandler := handlers.NewRealtimeHandler(d.Hub, subscribeUC, d.Log)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	if mem, ok := d.Storage.(*storage.Memory); ok {
		r.GET("/storage/:bucket/*key", handlers.NewStorageHandler(mem).Get)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.BodyLimit(handlers.DefaultBodyLimit))
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/pros", publicHandler.ListPros)

		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/oauth/:provider", authHandler.OAuthStart)
		api.GET("/auth/oauth/:provider/callback", authHandler.OAuthCallback)

		// ------------------------------
		// SIGNED IN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("/auth/session", authHandler.Session)
			secured.GET("/dashboard", dashboardHandler.Landing)
			secured.GET("/me/activity", meHandler.Activity)
			secured.GET("/realtime", realtimeHandler.Subscribe)

			// ------------------------------
			// ONBOARDING (professionals only)
			// ------------------------------
			wizard := secured.Group("/onboarding")
			wizard.Use(middleware.RequirePro(resolver))
			{
				wizard.GET("", onboardingHandler.Prefill)
				wizard.POST("/steps/:step", onboardingHandler.ValidateStep)
				wizard.POST("/submit", middleware.BodyLimit(handlers.OnboardingBodyLimit), onboardingHandler.Submit)
			}

			// ------------------------------
			// APP (onboarding finished)
			// ------------------------------
			app := secured.Group("/")
			app.Use(middleware.RequireOnboarded(resolver))
			{
				app.GET("/dashboard/client", dashboardHandler.Client)
				app.GET("/dashboard/pro", dashboardHandler.Pro)

				app.GET("/projects", projectHandler.List)
				app.POST("/projects", projectHandler.Create)
				app.GET("/projects/:id", projectHandler.Get)
				app.PATCH("/projects/:id/progress", projectHandler.UpdateProgress)
				app.POST("/projects/:id/phases", projectHandler.AddPhase)
				app.PATCH("/projects/:id/phases/:phaseId", projectHandler.UpdatePhase)
				app.POST("/projects/:id/costs", projectHandler.AddCost)
				app.POST("/projects/:id/photos", middleware.BodyLimit(handlers.UploadBodyLimit), projectHandler.AddPhoto)

				app.GET("/requests/pending", requestHandler.ListPending)
				app.POST("/requests", requestHandler.Create)
				app.POST("/requests/:id/respond", requestHandler.Respond)

				app.POST("/assistant/advice", middleware.BodyLimit(handlers.UploadBodyLimit), assistantHandler.Advice)
				app.POST("/assistant/transform", middleware.BodyLimit(handlers.TransformBodyLimit), assistantHandler.Transform)
			}
		}
	}
}
