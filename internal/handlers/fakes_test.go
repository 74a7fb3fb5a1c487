package handlers_test

import (
	"context"
	"errors"
	"sync"

	"career-compass-backend/internal/models"
	"career-compass-backend/internal/repository"
)

var errStoreDown = errors.New("connection refused")

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	s.users[user.Email] = *user
	return nil
}

type fakeAssessmentStore struct {
	mu          sync.Mutex
	assessments map[string]models.Assessment
	err         error
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{assessments: make(map[string]models.Assessment)}
}

func (s *fakeAssessmentStore) FindByEmail(_ context.Context, email string) (models.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	assessment, ok := s.assessments[email]
	if !ok {
		return nil, nil
	}
	return assessment, nil
}

func (s *fakeAssessmentStore) Upsert(_ context.Context, assessment models.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	email := assessment.UserEmail()
	if email == "" {
		return repository.ErrMissingUserEmail
	}
	s.assessments[email] = assessment
	return nil
}
