package handler

import (
	"errors"
	"fmt"
	"net/http"

	"edu_hub/internal/app/service"
	"edu_hub/internal/common"
	"edu_hub/internal/common/security"
	"edu_hub/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type ProfessorHandler struct {
	*Pages
	questionService   *service.QuestionService
	submissionService *service.SubmissionService
	dashboardService  *service.DashboardService
}

func NewProfessorHandler(
	pages *Pages,
	qs *service.QuestionService,
	ss *service.SubmissionService,
	ds *service.DashboardService,
) *ProfessorHandler {
	return &ProfessorHandler{Pages: pages, questionService: qs, submissionService: ss, dashboardService: ds}
}

func (h *ProfessorHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.login)
	r.Get("/portal", h.portal)
	r.Get("/dashboard", h.dashboard)
	r.Get("/assign_question", h.assignQuestionForm)
	r.Post("/assign_question", h.assignQuestion)
	r.Get("/view_questions", h.viewQuestions)
	r.Get("/view_submissions/{questionID}", h.viewSubmissions)
	r.Post("/provide_feedback", h.provideFeedback)
}

func (h *ProfessorHandler) login(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "professor_login", "Professor Login", nil)
}

func (h *ProfessorHandler) portal(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "professor", "Professor Portal", nil)
}

func (h *ProfessorHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.dashboardService.ProfessorDashboard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "professor_dashboard", "Professor Dashboard", dash)
}

func (h *ProfessorHandler) assignQuestionForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "assign_question", "Assign Question", nil)
}

func (h *ProfessorHandler) assignQuestion(w http.ResponseWriter, r *http.Request) {
	if missingForm(r, "type", "title", "description", "difficulty") {
		h.redirectWithFlash(w, r, "/professor/assign_question", security.FlashError, "All fields are required!")
		return
	}

	q, err := h.questionService.AssignQuestion(r.Context(), service.AssignQuestionRequest{
		Type:        r.FormValue("type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Difficulty:  r.FormValue("difficulty"),
	})
	if err != nil {
		h.redirectWithFlash(w, r, "/professor/assign_question", security.FlashError, formError(err, "All fields are required!"))
		return
	}
	h.redirectWithFlash(w, r, "/professor/dashboard", security.FlashSuccess,
		fmt.Sprintf("%s question \"%s\" assigned successfully!", q.Type.Label(), q.Title))
}

func (h *ProfessorHandler) viewQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionService.ListQuestions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "view_questions", "Questions", questions)
}

func (h *ProfessorHandler) viewSubmissions(w http.ResponseWriter, r *http.Request) {
	questionID, ok := urlParamInt(r, "questionID")
	if !ok {
		h.redirectWithFlash(w, r, "/professor/dashboard", security.FlashError, "Question not found!")
		return
	}
	question, subs, err := h.submissionService.SubmissionsForQuestion(r.Context(), questionID)
	if err != nil {
		h.redirectWithFlash(w, r, "/professor/dashboard", security.FlashError, "Question not found!")
		return
	}
	h.render(w, r, "view_submissions", "Submissions", struct {
		Question    *model.Question
		Submissions []model.SubmissionDetail
	}{question, subs})
}

func (h *ProfessorHandler) provideFeedback(w http.ResponseWriter, r *http.Request) {
	back := referrerOr(r, "/professor/dashboard")
	if missingForm(r, "submission_id", "feedback", "score") {
		h.redirectWithFlash(w, r, back, security.FlashError, "All feedback fields are required!")
		return
	}
	ids, err := formInts(r, "submission_id", "score")
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, "Submission id and score must be whole numbers!")
		return
	}

	_, err = h.submissionService.ProvideFeedback(r.Context(), service.ProvideFeedbackRequest{
		SubmissionID: ids[0],
		Feedback:     r.FormValue("feedback"),
		Score:        ids[1],
	})
	switch {
	case errors.Is(err, common.ErrNotFound):
		h.redirectWithFlash(w, r, back, security.FlashError, "Submission not found!")
	case err != nil:
		h.redirectWithFlash(w, r, back, security.FlashError, formError(err, "All feedback fields are required!"))
	default:
		h.redirectWithFlash(w, r, back, security.FlashSuccess, "Feedback provided successfully!")
	}
}
