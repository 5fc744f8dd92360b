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

type StudentHandler struct {
	*Pages
	studentService    *service.StudentService
	submissionService *service.SubmissionService
	dashboardService  *service.DashboardService
}

func NewStudentHandler(
	pages *Pages,
	st *service.StudentService,
	ss *service.SubmissionService,
	ds *service.DashboardService,
) *StudentHandler {
	return &StudentHandler{Pages: pages, studentService: st, submissionService: ss, dashboardService: ds}
}

func (h *StudentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.login)
	r.Get("/dashboard/{studentID}", h.dashboard)
	r.Get("/view_questions/{studentID}", h.viewQuestions)
	r.Post("/submit_answer", h.submitAnswer)
}

func (h *StudentHandler) login(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.ListStudents(r.Context())
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "student_login", "Student Login", students)
}

func (h *StudentHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	studentID, ok := urlParamInt(r, "studentID")
	if !ok {
		h.redirectWithFlash(w, r, "/student", security.FlashError, "Student not found!")
		return
	}
	dash, err := h.dashboardService.StudentDashboard(r.Context(), studentID)
	if errors.Is(err, common.ErrNotFound) {
		h.redirectWithFlash(w, r, "/student", security.FlashError, "Student not found!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "student_dashboard", dash.Student.Name+" - Dashboard", dash)
}

func (h *StudentHandler) viewQuestions(w http.ResponseWriter, r *http.Request) {
	studentID, ok := urlParamInt(r, "studentID")
	if !ok {
		h.redirectWithFlash(w, r, "/student", security.FlashError, "Student not found!")
		return
	}
	student, questions, err := h.dashboardService.StudentQuestions(r.Context(), studentID)
	if errors.Is(err, common.ErrNotFound) {
		h.redirectWithFlash(w, r, "/student", security.FlashError, "Student not found!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "student", student.Name+" - Questions", struct {
		Student   *model.Student
		Questions []model.QuestionStatus
	}{student, questions})
}

func (h *StudentHandler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	back := referrerOr(r, "/student")
	if missingForm(r, "student_id", "question_id", "answer") {
		h.redirectWithFlash(w, r, back, security.FlashError, "All fields are required!")
		return
	}
	ids, err := formInts(r, "student_id", "question_id")
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, "Invalid student or question!")
		return
	}

	_, err = h.submissionService.SubmitAnswer(r.Context(), service.SubmitAnswerRequest{
		StudentID:  ids[0],
		QuestionID: ids[1],
		Answer:     r.FormValue("answer"),
	})
	switch {
	case errors.Is(err, common.ErrConflict):
		h.redirectWithFlash(w, r, back, security.FlashError, "You have already submitted an answer for this question!")
	case err != nil:
		h.redirectWithFlash(w, r, back, security.FlashError, formError(err, "All fields are required!"))
	default:
		h.redirectWithFlash(w, r, fmt.Sprintf("/student/view_questions/%d", ids[0]), security.FlashSuccess, "Answer submitted successfully!")
	}
}
