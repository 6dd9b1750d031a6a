package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"advisorchat/config"
	"advisorchat/db"
	"advisorchat/handlers"
	"advisorchat/services"
	"advisorchat/services/advisor"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	var repo db.StudentRepository
	if cfg.DatabaseURL != "" {
		pgRepo, err := db.NewPostgresStudentRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize student database: %v", err)
		}
		defer pgRepo.Close()
		repo = pgRepo
	} else {
		log.Printf("[INFO] DB_URL not set, using in-memory student profiles")
		repo = db.NewMemoryStudentRepository(db.ExampleProfiles)
	}

	gateway, err := buildGateway(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize completion gateway: %v", err)
	}

	studentService := services.NewStudentService(repo)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	advisorService := advisor.NewService(studentService, gateway, rng)
	chatHandler := handlers.NewChatHandler(advisorService, studentService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	chatHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func buildGateway(cfg config.Config) (advisor.CompletionGateway, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("ANTHROPIC_API_KEY environment variable is required")
		}
		return advisor.NewAnthropicGateway(cfg.AnthropicAPIKey, cfg.LLMModel)
	default:
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OPENAI_API_KEY environment variable is required")
		}
		return advisor.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.LLMModel)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
