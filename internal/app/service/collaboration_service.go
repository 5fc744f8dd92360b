package service

import (
	"context"
	"errors"
	"time"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
	"edu_hub/internal/domain/repository"

	"github.com/gosimple/slug"
)

// recentSharesLimit caps the code shares shown on a student's hub page.
const recentSharesLimit = 5

type CollaborationService struct {
	groupRepo   repository.StudyGroupRepository
	sessionRepo repository.PairSessionRepository
	shareRepo   repository.CodeShareRepository
	studentRepo repository.StudentRepository
}

func NewCollaborationService(
	groupRepo repository.StudyGroupRepository,
	sessionRepo repository.PairSessionRepository,
	shareRepo repository.CodeShareRepository,
	studentRepo repository.StudentRepository,
) *CollaborationService {
	return &CollaborationService{
		groupRepo:   groupRepo,
		sessionRepo: sessionRepo,
		shareRepo:   shareRepo,
		studentRepo: studentRepo,
	}
}

// --- Study groups ---

type CreateGroupRequest struct {
	Name        string `json:"group_name"`
	Description string `json:"description"`
	CreatorID   int    `json:"creator_id"`
}

func (s *CollaborationService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*model.StudyGroup, error) {
	if req.Name == "" || req.Description == "" || req.CreatorID == 0 {
		return nil, common.Errorf("missing required fields for study group: %w", common.ErrBadRequest)
	}
	group := &model.StudyGroup{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Members:     []int{req.CreatorID},
		CreatedBy:   req.CreatorID,
		CreatedAt:   time.Now(),
		Active:      true,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, common.Errorf("failed to create study group: %w", err)
	}
	return group, nil
}

// JoinGroup adds the student to the group. If the student is already a member
// the group is returned unchanged together with common.ErrAlreadyMember.
func (s *CollaborationService) JoinGroup(ctx context.Context, groupID, studentID int) (*model.StudyGroup, error) {
	group, err := s.groupRepo.AddMember(ctx, groupID, studentID)
	if err != nil && !errors.Is(err, common.ErrAlreadyMember) {
		return nil, common.Errorf("study group %d: %w", groupID, err)
	}
	return group, err
}

type GroupBoard struct {
	Group    model.StudyGroup     `json:"group"`
	Members  []model.Student      `json:"members"`
	Messages []GroupMessageDetail `json:"messages"`
}

type GroupMessageDetail struct {
	model.GroupMessage
	StudentName string `json:"student_name"`
}

func (s *CollaborationService) GroupBoard(ctx context.Context, groupID int) (*GroupBoard, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, common.Errorf("study group %d: %w", groupID, err)
	}
	msgs, err := s.groupRepo.ListMessages(ctx, groupID)
	if err != nil {
		return nil, err
	}
	names, err := studentNames(ctx, s.studentRepo)
	if err != nil {
		return nil, err
	}

	board := &GroupBoard{Group: *group}
	for _, id := range group.Members {
		if st, err := s.studentRepo.FindByID(ctx, id); err == nil {
			board.Members = append(board.Members, *st)
		}
	}
	for _, m := range msgs {
		board.Messages = append(board.Messages, GroupMessageDetail{GroupMessage: m, StudentName: nameOr(names, m.StudentID)})
	}
	return board, nil
}

type PostMessageRequest struct {
	GroupID   int    `json:"group_id"`
	StudentID int    `json:"student_id"`
	Text      string `json:"text"`
}

// PostMessage posts to a group's board. Only members may post.
func (s *CollaborationService) PostMessage(ctx context.Context, req PostMessageRequest) (*model.GroupMessage, error) {
	if req.GroupID == 0 || req.StudentID == 0 || req.Text == "" {
		return nil, common.Errorf("missing required fields for message: %w", common.ErrBadRequest)
	}
	group, err := s.groupRepo.FindByID(ctx, req.GroupID)
	if err != nil {
		return nil, common.Errorf("study group %d: %w", req.GroupID, err)
	}
	if !group.HasMember(req.StudentID) {
		return nil, common.Errorf("student %d is not in group %d: %w", req.StudentID, req.GroupID, common.ErrValidation)
	}
	msg := &model.GroupMessage{
		GroupID:   req.GroupID,
		StudentID: req.StudentID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := s.groupRepo.PostMessage(ctx, msg); err != nil {
		return nil, common.Errorf("failed to post message: %w", err)
	}
	return msg, nil
}

// --- Hub ---

type StudentCollaboration struct {
	Student        model.Student       `json:"student"`
	Students       []model.Student     `json:"students"`
	StudyGroups    []model.StudyGroup  `json:"study_groups"`
	AllGroups      []model.StudyGroup  `json:"all_groups"`
	CodeShares     []model.CodeShare   `json:"code_shares"`
	ActiveSessions []model.PairSession `json:"active_sessions"`
}

func (s *CollaborationService) ListGroups(ctx context.Context) ([]model.StudyGroup, error) {
	return s.groupRepo.List(ctx)
}

func (s *CollaborationService) StudentCollaboration(ctx context.Context, studentID int) (*StudentCollaboration, error) {
	student, err := s.studentRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, common.Errorf("student %d: %w", studentID, err)
	}
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	mine, err := s.groupRepo.ListByMember(ctx, studentID)
	if err != nil {
		return nil, err
	}
	all, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	shares, err := s.shareRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(shares) > recentSharesLimit {
		shares = shares[len(shares)-recentSharesLimit:]
	}
	sessions, err := s.sessionRepo.ListActiveForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &StudentCollaboration{
		Student:        *student,
		Students:       students,
		StudyGroups:    mine,
		AllGroups:      all,
		CodeShares:     shares,
		ActiveSessions: sessions,
	}, nil
}

// --- Pair programming ---

type StartPairSessionRequest struct {
	Student1ID   int    `json:"student1_id"`
	Student2ID   int    `json:"student2_id"`
	ProblemTitle string `json:"problem_title"`
}

func (s *CollaborationService) StartPairSession(ctx context.Context, req StartPairSessionRequest) (*model.PairSession, error) {
	if req.Student1ID == 0 || req.Student2ID == 0 || req.ProblemTitle == "" {
		return nil, common.Errorf("missing required fields for pair session: %w", common.ErrBadRequest)
	}
	session := &model.PairSession{
		Student1ID:   req.Student1ID,
		Student2ID:   req.Student2ID,
		ProblemTitle: req.ProblemTitle,
		Code:         model.DefaultPairCode,
		StartedAt:    time.Now(),
		Active:       true,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, common.Errorf("failed to start pair session: %w", err)
	}
	return session, nil
}

type PairSessionView struct {
	Session  model.PairSession `json:"session"`
	Student1 *model.Student    `json:"student1,omitempty"`
	Student2 *model.Student    `json:"student2,omitempty"`
}

func (s *CollaborationService) GetPairSession(ctx context.Context, sessionID int) (*PairSessionView, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, common.Errorf("pair session %d: %w", sessionID, err)
	}
	view := &PairSessionView{Session: *session}
	view.Student1, _ = s.studentRepo.FindByID(ctx, session.Student1ID)
	view.Student2, _ = s.studentRepo.FindByID(ctx, session.Student2ID)
	return view, nil
}

func (s *CollaborationService) UpdatePairCode(ctx context.Context, sessionID int, code string) error {
	if err := s.sessionRepo.UpdateCode(ctx, sessionID, code); err != nil {
		return common.Errorf("pair session %d: %w", sessionID, err)
	}
	return nil
}

func (s *CollaborationService) GetPairCode(ctx context.Context, sessionID int) (string, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return "", common.Errorf("pair session %d: %w", sessionID, err)
	}
	return session.Code, nil
}

// --- Code sharing ---

type ShareCodeRequest struct {
	StudentID   int    `json:"student_id"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
	HelpNeeded  bool   `json:"help_needed"`
}

func (s *CollaborationService) ShareCode(ctx context.Context, req ShareCodeRequest) (*model.CodeShare, error) {
	if req.StudentID == 0 || req.Title == "" || req.Code == "" {
		return nil, common.Errorf("title and code are required: %w", common.ErrBadRequest)
	}
	share := &model.CodeShare{
		StudentID:   req.StudentID,
		Title:       req.Title,
		Code:        req.Code,
		Description: req.Description,
		HelpNeeded:  req.HelpNeeded,
		CreatedAt:   time.Now(),
		Comments:    []model.Comment{},
	}
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, common.Errorf("failed to share code: %w", err)
	}
	return share, nil
}

func (s *CollaborationService) CodeGallery(ctx context.Context) ([]model.CodeShareDetail, error) {
	shares, err := s.shareRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := studentNames(ctx, s.studentRepo)
	if err != nil {
		return nil, err
	}
	out := make([]model.CodeShareDetail, 0, len(shares))
	for _, sh := range shares {
		out = append(out, model.CodeShareDetail{CodeShare: sh, StudentName: nameOr(names, sh.StudentID)})
	}
	return out, nil
}

type AddCommentRequest struct {
	ShareID   int    `json:"share_id"`
	StudentID int    `json:"student_id"`
	Text      string `json:"text"`
}

func (s *CollaborationService) AddComment(ctx context.Context, req AddCommentRequest) (*model.Comment, error) {
	if req.ShareID == 0 || req.StudentID == 0 || req.Text == "" {
		return nil, common.Errorf("missing required fields for comment: %w", common.ErrBadRequest)
	}
	comment := &model.Comment{
		ShareID:   req.ShareID,
		StudentID: req.StudentID,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	if err := s.shareRepo.AddComment(ctx, comment); err != nil {
		return nil, common.Errorf("code share %d: %w", req.ShareID, err)
	}
	return comment, nil
}
