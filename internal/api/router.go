package api

import (
	"net/http"
	"time"

	"edu_hub/internal/api/handler"
	"edu_hub/internal/api/middleware"
	"edu_hub/internal/app/service"
	"edu_hub/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	pages *handler.Pages,
	questionService *service.QuestionService,
	submissionService *service.SubmissionService,
	studentService *service.StudentService,
	dashboardService *service.DashboardService,
	collaborationService *service.CollaborationService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Flash messages travel in a signed cookie; an invalid or expired one is
	// treated as empty.
	r.Use(jwtauth.Verify(security.TokenAuth, security.FlashFromCookie))
	r.Use(middleware.LoadFlashes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	handler.NewPageHandler(pages).RegisterRoutes(r)

	professorHandler := handler.NewProfessorHandler(pages, questionService, submissionService, dashboardService)
	r.Route("/professor", professorHandler.RegisterRoutes)

	studentHandler := handler.NewStudentHandler(pages, studentService, submissionService, dashboardService)
	r.Route("/student", studentHandler.RegisterRoutes)

	collaborationHandler := handler.NewCollaborationHandler(pages, collaborationService, studentService)
	r.Route("/collaboration", collaborationHandler.RegisterRoutes)

	apiHandler := handler.NewAPIHandler(dashboardService, collaborationService)
	r.Route("/api", apiHandler.RegisterRoutes)

	return r
}
