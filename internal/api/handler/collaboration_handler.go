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

type CollaborationHandler struct {
	*Pages
	collaborationService *service.CollaborationService
	studentService       *service.StudentService
}

func NewCollaborationHandler(pages *Pages, cs *service.CollaborationService, ss *service.StudentService) *CollaborationHandler {
	return &CollaborationHandler{Pages: pages, collaborationService: cs, studentService: ss}
}

// RegisterRoutes mounts under /collaboration. Static segments take precedence
// over {studentID} in chi, so code_gallery and pair_programming never reach
// the student page.
func (h *CollaborationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.hub)
	r.Get("/{studentID}", h.studentPage)
	r.Post("/create_group", h.createGroup)
	r.Post("/join_group", h.joinGroup)
	r.Get("/groups/{groupID}/messages", h.groupBoard)
	r.Post("/groups/{groupID}/messages", h.postMessage)
	r.Get("/pair_programming", h.pairProgrammingForm)
	r.Post("/pair_programming", h.startPairSession)
	r.Get("/pair_session/{sessionID}", h.pairSession)
	r.Post("/share_code", h.shareCode)
	r.Post("/share_code/{shareID}/comments", h.addComment)
	r.Get("/code_gallery", h.codeGallery)
}

func (h *CollaborationHandler) hub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	students, err := h.studentService.ListStudents(ctx)
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	groups, err := h.collaborationService.ListGroups(ctx)
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "collaboration", "Collaboration Hub", struct {
		Students    []model.Student
		StudyGroups []model.StudyGroup
	}{students, groups})
}

func (h *CollaborationHandler) studentPage(w http.ResponseWriter, r *http.Request) {
	studentID, ok := urlParamInt(r, "studentID")
	if !ok {
		h.redirectWithFlash(w, r, "/collaboration", security.FlashError, "Student not found!")
		return
	}
	hub, err := h.collaborationService.StudentCollaboration(r.Context(), studentID)
	if errors.Is(err, common.ErrNotFound) {
		h.redirectWithFlash(w, r, "/collaboration", security.FlashError, "Student not found!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "student_collaboration", hub.Student.Name+" - Collaboration", hub)
}

func (h *CollaborationHandler) createGroup(w http.ResponseWriter, r *http.Request) {
	back := referrerOr(r, "/collaboration")
	if missingForm(r, "group_name", "description", "creator_id") {
		h.redirectWithFlash(w, r, back, security.FlashError, "All fields are required!")
		return
	}
	ids, err := formInts(r, "creator_id")
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, "Invalid student!")
		return
	}

	group, err := h.collaborationService.CreateGroup(r.Context(), service.CreateGroupRequest{
		Name:        r.FormValue("group_name"),
		Description: r.FormValue("description"),
		CreatorID:   ids[0],
	})
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, formError(err, "All fields are required!"))
		return
	}
	h.redirectWithFlash(w, r, fmt.Sprintf("/collaboration/%d", ids[0]), security.FlashSuccess,
		fmt.Sprintf("Study group \"%s\" created successfully!", group.Name))
}

func (h *CollaborationHandler) joinGroup(w http.ResponseWriter, r *http.Request) {
	back := referrerOr(r, "/collaboration")
	if missingForm(r, "group_id", "student_id") {
		h.redirectWithFlash(w, r, back, security.FlashError, "All fields are required!")
		return
	}
	ids, err := formInts(r, "group_id", "student_id")
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, "Study group not found!")
		return
	}
	target := fmt.Sprintf("/collaboration/%d", ids[1])

	group, err := h.collaborationService.JoinGroup(r.Context(), ids[0], ids[1])
	switch {
	case errors.Is(err, common.ErrAlreadyMember):
		h.redirectWithFlash(w, r, target, security.FlashWarning, "You are already a member of this group!")
	case errors.Is(err, common.ErrNotFound):
		h.redirectWithFlash(w, r, referrerOr(r, target), security.FlashError, "Study group not found!")
	case err != nil:
		h.redirectWithFlash(w, r, target, security.FlashError, formError(err, "All fields are required!"))
	default:
		h.redirectWithFlash(w, r, target, security.FlashSuccess, fmt.Sprintf("Successfully joined \"%s\"!", group.Name))
	}
}

func (h *CollaborationHandler) groupBoard(w http.ResponseWriter, r *http.Request) {
	groupID, ok := urlParamInt(r, "groupID")
	if !ok {
		h.redirectWithFlash(w, r, "/collaboration", security.FlashError, "Study group not found!")
		return
	}
	board, err := h.collaborationService.GroupBoard(r.Context(), groupID)
	if errors.Is(err, common.ErrNotFound) {
		h.redirectWithFlash(w, r, "/collaboration", security.FlashError, "Study group not found!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "group_board", board.Group.Name, board)
}

func (h *CollaborationHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := urlParamInt(r, "groupID")
	if !ok {
		h.redirectWithFlash(w, r, "/collaboration", security.FlashError, "Study group not found!")
		return
	}
	target := fmt.Sprintf("/collaboration/groups/%d/messages", groupID)
	if missingForm(r, "student_id", "text") {
		h.redirectWithFlash(w, r, target, security.FlashError, "All fields are required!")
		return
	}
	ids, err := formInts(r, "student_id")
	if err != nil {
		h.redirectWithFlash(w, r, target, security.FlashError, "Invalid student!")
		return
	}

	_, err = h.collaborationService.PostMessage(r.Context(), service.PostMessageRequest{
		GroupID:   groupID,
		StudentID: ids[0],
		Text:      r.FormValue("text"),
	})
	switch {
	case errors.Is(err, common.ErrNotFound):
		h.redirectWithFlash(w, r, "/collaboration", security.FlashError, "Study group not found!")
	case errors.Is(err, common.ErrValidation):
		h.redirectWithFlash(w, r, target, security.FlashError, "Only group members can post messages!")
	case err != nil:
		h.redirectWithFlash(w, r, target, security.FlashError, formError(err, "All fields are required!"))
	default:
		h.redirectWithFlash(w, r, target, security.FlashInfo, "Message posted!")
	}
}

func (h *CollaborationHandler) pairProgrammingForm(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.ListStudents(r.Context())
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "pair_programming", "Pair Programming", students)
}

func (h *CollaborationHandler) startPairSession(w http.ResponseWriter, r *http.Request) {
	const form = "/collaboration/pair_programming"
	if missingForm(r, "student1_id", "student2_id", "problem_title") {
		h.redirectWithFlash(w, r, form, security.FlashError, "All fields are required!")
		return
	}
	ids, err := formInts(r, "student1_id", "student2_id")
	if err != nil {
		h.redirectWithFlash(w, r, form, security.FlashError, "Invalid student!")
		return
	}

	session, err := h.collaborationService.StartPairSession(r.Context(), service.StartPairSessionRequest{
		Student1ID:   ids[0],
		Student2ID:   ids[1],
		ProblemTitle: r.FormValue("problem_title"),
	})
	if err != nil {
		h.redirectWithFlash(w, r, form, security.FlashError, formError(err, "All fields are required!"))
		return
	}
	h.redirectWithFlash(w, r, fmt.Sprintf("/collaboration/pair_session/%d", session.ID), security.FlashSuccess,
		"Pair programming session started!")
}

func (h *CollaborationHandler) pairSession(w http.ResponseWriter, r *http.Request) {
	const form = "/collaboration/pair_programming"
	sessionID, ok := urlParamInt(r, "sessionID")
	if !ok {
		h.redirectWithFlash(w, r, form, security.FlashError, "Session not found!")
		return
	}
	view, err := h.collaborationService.GetPairSession(r.Context(), sessionID)
	if errors.Is(err, common.ErrNotFound) {
		h.redirectWithFlash(w, r, form, security.FlashError, "Session not found!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "pair_session", view.Session.ProblemTitle, view)
}

func (h *CollaborationHandler) shareCode(w http.ResponseWriter, r *http.Request) {
	back := referrerOr(r, "/collaboration")
	if missingForm(r, "student_id", "title", "code") {
		h.redirectWithFlash(w, r, back, security.FlashError, "Title and code are required!")
		return
	}
	ids, err := formInts(r, "student_id")
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, "Invalid student!")
		return
	}

	_, err = h.collaborationService.ShareCode(r.Context(), service.ShareCodeRequest{
		StudentID:   ids[0],
		Title:       r.FormValue("title"),
		Code:        r.FormValue("code"),
		Description: r.FormValue("description"),
		HelpNeeded:  r.FormValue("help_needed") == "on",
	})
	if err != nil {
		h.redirectWithFlash(w, r, back, security.FlashError, formError(err, "Title and code are required!"))
		return
	}
	h.redirectWithFlash(w, r, fmt.Sprintf("/collaboration/%d", ids[0]), security.FlashSuccess, "Code shared successfully!")
}

func (h *CollaborationHandler) addComment(w http.ResponseWriter, r *http.Request) {
	const gallery = "/collaboration/code_gallery"
	shareID, ok := urlParamInt(r, "shareID")
	if !ok {
		h.redirectWithFlash(w, r, gallery, security.FlashError, "Code share not found!")
		return
	}
	if missingForm(r, "student_id", "text") {
		h.redirectWithFlash(w, r, gallery, security.FlashError, "All fields are required!")
		return
	}
	ids, err := formInts(r, "student_id")
	if err != nil {
		h.redirectWithFlash(w, r, gallery, security.FlashError, "Invalid student!")
		return
	}

	_, err = h.collaborationService.AddComment(r.Context(), service.AddCommentRequest{
		ShareID:   shareID,
		StudentID: ids[0],
		Text:      r.FormValue("text"),
	})
	switch {
	case errors.Is(err, common.ErrNotFound):
		h.redirectWithFlash(w, r, gallery, security.FlashError, "Code share not found!")
	case err != nil:
		h.redirectWithFlash(w, r, gallery, security.FlashError, formError(err, "All fields are required!"))
	default:
		h.redirectWithFlash(w, r, gallery, security.FlashInfo, "Comment added!")
	}
}

func (h *CollaborationHandler) codeGallery(w http.ResponseWriter, r *http.Request) {
	shares, err := h.collaborationService.CodeGallery(r.Context())
	if err != nil {
		http.Error(w, err.Error(), common.HTTPStatusFromError(err))
		return
	}
	h.render(w, r, "code_gallery", "Code Gallery", shares)
}
