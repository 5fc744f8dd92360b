package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edu_hub/internal/api"
	"edu_hub/internal/api/handler"
	"edu_hub/internal/app/service"
	"edu_hub/internal/common/security"
	"edu_hub/internal/platform/config"
	"edu_hub/internal/platform/database"
	"edu_hub/internal/web"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize flash signer
	security.InitSigner(config.AppConfig.SessionSecret)
	fmt.Println("Flash signer initialized.")

	// 3. Initialize Store
	store := database.NewMemoryStore()
	if config.AppConfig.SeedDemoData {
		if err := database.Seed(context.Background(), store); err != nil {
			log.Fatalf("Could not seed demo data: %v", err)
		}
		fmt.Println("Demo data seeded.")
	}

	// 4. Initialize Templates
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Could not parse templates: %v", err)
	}

	// 5. Initialize Services
	questionService := service.NewQuestionService(store.Questions)
	submissionService := service.NewSubmissionService(store.Submissions, store.Feedback, store.Questions, store.Students)
	studentService := service.NewStudentService(store.Students)
	dashboardService := service.NewDashboardService(store.Students, store.Questions, store.Submissions, store.Feedback)
	collaborationService := service.NewCollaborationService(store.Groups, store.Sessions, store.Shares, store.Students)

	// 6. Initialize Router & HTTP Server
	pages := handler.NewPages(renderer, config.AppConfig.FlashTTL)
	router := api.NewRouter(pages, questionService, submissionService, studentService, dashboardService, collaborationService)

	server := &http.Server{
		Addr:         config.AppConfig.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", server.Addr, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
