package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"edu_hub/internal/common"
	"edu_hub/internal/domain/model"
)

type StudyGroupRepository interface {
	Create(ctx context.Context, group *model.StudyGroup) error
	FindByID(ctx context.Context, id int) (*model.StudyGroup, error)
	List(ctx context.Context) ([]model.StudyGroup, error)
	ListByMember(ctx context.Context, studentID int) ([]model.StudyGroup, error)
	// AddMember returns common.ErrAlreadyMember when the student is already
	// in the group; membership is left untouched in that case.
	AddMember(ctx context.Context, groupID, studentID int) (*model.StudyGroup, error)

	PostMessage(ctx context.Context, msg *model.GroupMessage) error
	ListMessages(ctx context.Context, groupID int) ([]model.GroupMessage, error)
}

type memStudyGroupRepository struct {
	mu       sync.RWMutex
	seq      sequence
	msgSeq   sequence
	groups   []model.StudyGroup
	messages []model.GroupMessage
}

func NewMemStudyGroupRepository() StudyGroupRepository {
	return &memStudyGroupRepository{}
}

func cloneGroup(g model.StudyGroup) model.StudyGroup {
	g.Members = slices.Clone(g.Members)
	return g
}

func (r *memStudyGroupRepository) Create(ctx context.Context, group *model.StudyGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	group.ID = r.seq.claim(group.ID)
	r.groups = append(r.groups, cloneGroup(*group))
	return nil
}

func (r *memStudyGroupRepository) FindByID(ctx context.Context, id int) (*model.StudyGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		found := cloneGroup(r.groups[i])
		return &found, nil
	}
	return nil, common.ErrNotFound
}

func (r *memStudyGroupRepository) List(ctx context.Context) ([]model.StudyGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StudyGroup, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, cloneGroup(g))
	}
	return out, nil
}

func (r *memStudyGroupRepository) ListByMember(ctx context.Context, studentID int) ([]model.StudyGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.StudyGroup{}
	for _, g := range r.groups {
		if g.HasMember(studentID) {
			out = append(out, cloneGroup(g))
		}
	}
	return out, nil
}

func (r *memStudyGroupRepository) AddMember(ctx context.Context, groupID, studentID int) (*model.StudyGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(groupID)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	g := &r.groups[i]
	if g.HasMember(studentID) {
		found := cloneGroup(*g)
		return &found, fmt.Errorf("student %d in group %d: %w", studentID, groupID, common.ErrAlreadyMember)
	}
	g.Members = append(g.Members, studentID)
	updated := cloneGroup(*g)
	return &updated, nil
}

func (r *memStudyGroupRepository) PostMessage(ctx context.Context, msg *model.GroupMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(msg.GroupID) < 0 {
		return common.ErrNotFound
	}
	msg.ID = r.msgSeq.claim(msg.ID)
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *memStudyGroupRepository) ListMessages(ctx context.Context, groupID int) ([]model.GroupMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.GroupMessage{}
	for _, m := range r.messages {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memStudyGroupRepository) indexOf(id int) int {
	for i := range r.groups {
		if r.groups[i].ID == id {
			return i
		}
	}
	return -1
}
