package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/cors"

	"github.com/dhtuganov/transformation-portal-sub002/internal/assessment"
	"github.com/dhtuganov/transformation-portal-sub002/internal/auth"
	"github.com/dhtuganov/transformation-portal-sub002/internal/config"
	"github.com/dhtuganov/transformation-portal-sub002/internal/content"
	"github.com/dhtuganov/transformation-portal-sub002/internal/database"
	"github.com/dhtuganov/transformation-portal-sub002/internal/gamification"
	"github.com/dhtuganov/transformation-portal-sub002/internal/middleware"
	"github.com/dhtuganov/transformation-portal-sub002/internal/models"
	"github.com/dhtuganov/transformation-portal-sub002/internal/planner"
	"github.com/dhtuganov/transformation-portal-sub002/internal/plans"
	"github.com/dhtuganov/transformation-portal-sub002/internal/quiz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Item bank comes from the database so calibration updates survive restarts.
	assessmentStore := assessment.NewStore(db)
	items, err := assessmentStore.LoadItems()
	if err != nil {
		log.Fatalf("Failed to load assessment items: %v", err)
	}
	bank, err := assessment.NewItemBank(items)
	if err != nil {
		log.Fatalf("Invalid assessment item bank: %v", err)
	}

	library, err := content.LoadLibrary(cfg.ContentDir)
	if err != nil {
		log.Fatalf("Failed to load content library: %v", err)
	}
	log.Printf("[content] loaded %d entries from %s", library.Size(), cfg.ContentDir)

	// Services
	gamService := gamification.NewService(gamification.NewStore(db))

	assessmentService := assessment.NewService(assessmentStore, bank, assessment.Params{
		PrecisionThreshold:   cfg.PrecisionThreshold,
		MinItemsPerDimension: cfg.MinItemsPerDimension,
		MaxItemsPerDimension: cfg.MaxItemsPerDimension,
		ThetaBound:           cfg.ThetaBound,
		ConvergenceTolerance: cfg.ConvergenceTolerance,
		MaxIterations:        cfg.MaxIterations,
	})
	assessmentService.SetGamificationService(gamService)

	quizService := quiz.NewService(quiz.NewStore(db))
	quizService.SetGamificationService(gamService)

	generator := planner.NewGenerator(cfg.AnthropicModel, cfg.MockPlanGenerator)
	plansService := plans.NewService(plans.NewStore(db), generator, assessmentService)
	plansService.SetGamificationService(gamService)

	contentService := content.NewService(library, content.NewStore(db), assessmentService)
	contentService.SetGamificationService(gamService)

	// Handlers
	authHandler := auth.NewHandler(db, cfg.JWTSecret)
	assessmentHandler := assessment.NewHandler(assessmentService)
	quizHandler := quiz.NewHandler(quizService)
	gamHandler := gamification.NewHandler(gamService)
	plansHandler := plans.NewHandler(plansService)
	contentHandler := content.NewHandler(contentService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gamService.StartWeeklyResetWorker(ctx)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/assessment/sessions", assessmentHandler.StartSession).Methods("POST")
	protected.HandleFunc("/assessment/sessions/{id}/answers", assessmentHandler.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/assessment/sessions/{id}/progress", assessmentHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/assessment/profile", assessmentHandler.GetProfile).Methods("GET")

	protected.HandleFunc("/quiz/drill", quizHandler.GetDrill).Methods("POST")
	protected.HandleFunc("/quiz/answers", quizHandler.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/quiz/mastery", quizHandler.GetMastery).Methods("GET")
	protected.HandleFunc("/quiz/topics", quizHandler.GetTopics).Methods("GET")
	protected.HandleFunc("/quiz/history", quizHandler.GetHistory).Methods("GET")

	protected.HandleFunc("/gamification/summary", gamHandler.GetSummary).Methods("GET")
	protected.HandleFunc("/gamification/leaderboard", gamHandler.GetLeaderboard).Methods("GET")
	protected.HandleFunc("/gamification/xp-events", gamHandler.GetXPEvents).Methods("GET")
	protected.HandleFunc("/gamification/daily-goal", gamHandler.SetDailyGoal).Methods("PUT")

	protected.HandleFunc("/plans", plansHandler.CreatePlan).Methods("POST")
	protected.HandleFunc("/plans", plansHandler.ListPlans).Methods("GET")
	protected.HandleFunc("/plans/draft", plansHandler.GenerateDraft).Methods("POST")
	protected.HandleFunc("/plans/{id}", plansHandler.GetPlan).Methods("GET")
	protected.HandleFunc("/plans/{id}/activate", plansHandler.Activate).Methods("POST")
	protected.HandleFunc("/plans/{id}/submit", plansHandler.SubmitForReview).Methods("POST")
	protected.HandleFunc("/plans/{id}/archive", plansHandler.Archive).Methods("POST")
	protected.HandleFunc("/plans/goals/{goalID}", plansHandler.UpdateGoal).Methods("PUT")

	protected.HandleFunc("/content", contentHandler.List).Methods("GET")
	protected.HandleFunc("/content/recommend", contentHandler.Recommend).Methods("GET")
	protected.HandleFunc("/content/{slug}", contentHandler.Get).Methods("GET")
	protected.HandleFunc("/content/{slug}/complete", contentHandler.Complete).Methods("POST")

	// Manager routes
	managers := protected.PathPrefix("").Subrouter()
	managers.Use(middleware.RequireRole(models.RoleManager, models.RoleAdmin))
	managers.HandleFunc("/plans/review/queue", plansHandler.ReviewQueue).Methods("GET")
	managers.HandleFunc("/plans/{id}/review", plansHandler.Review).Methods("POST")

	// Admin routes
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.HandleFunc("/auth/role", authHandler.SetRole).Methods("PUT")
	admin.HandleFunc("/assessment/profiles/export", assessmentHandler.ExportProfiles).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
