package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edustack/edustack-backend/internal/config"
	"github.com/edustack/edustack-backend/internal/model"
)

// fakeStudentStore keeps students in memory and counts password writes.
type fakeStudentStore struct {
	students        map[uuid.UUID]*model.Student
	passwordUpdates int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[uuid.UUID]*model.Student)}
}

func (s *fakeStudentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return st, nil
}

func (s *fakeStudentStore) GetByUsername(_ context.Context, username string) (*model.Student, error) {
	for _, st := range s.students {
		if st.Username == username {
			return st, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeStudentStore) List(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for _, st := range s.students {
		out = append(out, *st)
	}
	return out, nil
}

func (s *fakeStudentStore) ListByBatch(_ context.Context, batchID uuid.UUID) ([]model.Student, error) {
	var out []model.Student
	for _, st := range s.students {
		if st.BatchID != nil && *st.BatchID == batchID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) ListByCourse(_ context.Context, courseID uuid.UUID) ([]model.Student, error) {
	var out []model.Student
	for _, st := range s.students {
		for _, c := range st.CourseIDs {
			if c == courseID {
				out = append(out, *st)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeStudentStore) Create(_ context.Context, st *model.Student) error {
	st.ID = uuid.New()
	s.students[st.ID] = st
	return nil
}

func (s *fakeStudentStore) Update(_ context.Context, st *model.Student) error {
	if _, ok := s.students[st.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.students[st.ID] = st
	return nil
}

func (s *fakeStudentStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	st, ok := s.students[id]
	if !ok {
		return pgx.ErrNoRows
	}
	st.PasswordHash = hash
	s.passwordUpdates++
	return nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.students[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(s.students, id)
	return nil
}

func newTestStudentService(store StudentStore) *StudentService {
	auth := NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	return NewStudentService(store, auth)
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestStudentService(store)

	student := &model.Student{Username: "bob"}
	require.NoError(t, svc.Register(context.Background(), student, "secret123"))

	stored := store.students[student.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegisterDefaultsRole(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestStudentService(store)

	student := &model.Student{Username: "carol"}
	require.NoError(t, svc.Register(context.Background(), student, "secret123"))
	assert.Equal(t, model.RoleStudent, student.Role)

	admin := &model.Student{Username: "dave", Role: model.RoleAdmin}
	require.NoError(t, svc.Register(context.Background(), admin, "secret123"))
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func TestUpdateKeepsHashWithoutNewPassword(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestStudentService(store)

	student := &model.Student{Username: "erin"}
	require.NoError(t, svc.Register(context.Background(), student, "original"))
	originalHash := store.students[student.ID].PasswordHash

	student.Image = "avatar.png"
	require.NoError(t, svc.Update(context.Background(), student, ""))

	assert.Equal(t, originalHash, store.students[student.ID].PasswordHash)
	assert.Zero(t, store.passwordUpdates)
}

func TestUpdateRehashesNewPassword(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestStudentService(store)

	student := &model.Student{Username: "frank"}
	require.NoError(t, svc.Register(context.Background(), student, "original"))
	originalHash := store.students[student.ID].PasswordHash

	require.NoError(t, svc.Update(context.Background(), student, "replacement"))

	updated := store.students[student.ID].PasswordHash
	assert.NotEqual(t, originalHash, updated)
	assert.Equal(t, 1, store.passwordUpdates)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated), []byte("replacement")))
}

func TestUpdateMissingStudent(t *testing.T) {
	svc := newTestStudentService(newFakeStudentStore())

	err := svc.Update(context.Background(), &model.Student{ID: uuid.New()}, "")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestListByBatchFilters(t *testing.T) {
	store := newFakeStudentStore()
	svc := newTestStudentService(store)

	batchID := uuid.New()
	inBatch := &model.Student{Username: "in-batch", BatchID: &batchID}
	require.NoError(t, svc.Register(context.Background(), inBatch, "secret123"))
	require.NoError(t, svc.Register(context.Background(), &model.Student{Username: "no-batch"}, "secret123"))

	students, err := svc.ListByBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "in-batch", students[0].Username)
}
