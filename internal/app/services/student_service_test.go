package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/yigit/student-api/internal/app/models"
	"github.com/yigit/student-api/internal/app/repositories"
	"github.com/yigit/student-api/internal/app/services/mocks"
	"github.com/yigit/student-api/internal/pkg/apperrors"
)

type StudentServiceTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *mocks.MockStudentStore
	ctx   context.Context
}

func (s *StudentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStudentStore(s.ctrl)
	s.ctx = context.Background()
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}

func sampleStudent() *models.Student {
	return &models.Student{
		StudentID:   " S1 ",
		StudentName: "Ann",
		Course:      "CS",
		PresentDate: pgtype.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true},
	}
}

func (s *StudentServiceTestSuite) TestCreateWithPrecheck() {
	svc := NewStudentService(s.store, Options{ConflictPrecheck: true})

	gomock.InOrder(
		s.store.EXPECT().Exists(s.ctx, "S1").Return(false, nil),
		s.store.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, st *models.Student) (*models.Student, error) {
				return st, nil
			}),
	)

	created, err := svc.CreateStudent(s.ctx, sampleStudent())
	s.Require().NoError(err)
	s.Equal("S1", created.StudentID)
}

func (s *StudentServiceTestSuite) TestCreateRejectedByPrecheck() {
	svc := NewStudentService(s.store, Options{ConflictPrecheck: true})

	s.store.EXPECT().Exists(s.ctx, "S1").Return(true, nil)
	s.store.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.CreateStudent(s.ctx, sampleStudent())
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *StudentServiceTestSuite) TestCreateWithoutPrecheckReliesOnConstraint() {
	svc := NewStudentService(s.store, Options{ConflictPrecheck: false})

	s.store.EXPECT().Exists(gomock.Any(), gomock.Any()).Times(0)
	s.store.EXPECT().Create(s.ctx, gomock.Any()).Return(nil, repositories.ErrStudentExists)

	_, err := svc.CreateStudent(s.ctx, sampleStudent())
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Equal("student already exists", err.Error())
}

func (s *StudentServiceTestSuite) TestCreateMissingFieldsNeverTouchesStore() {
	svc := NewStudentService(s.store, Options{ConflictPrecheck: true})

	for _, mutate := range []func(*models.Student){
		func(st *models.Student) { st.StudentID = "  " },
		func(st *models.Student) { st.StudentName = "" },
		func(st *models.Student) { st.Course = "" },
		func(st *models.Student) { st.PresentDate = pgtype.Date{} },
	} {
		st := sampleStudent()
		mutate(st)
		_, err := svc.CreateStudent(s.ctx, st)
		s.ErrorIs(err, apperrors.ErrValidationFailed)
		s.Equal(MissingStudentFields, err.Error())
	}
}

func (s *StudentServiceTestSuite) TestCreatePropagatesPrecheckFailure() {
	svc := NewStudentService(s.store, Options{ConflictPrecheck: true})
	boom := errors.New("connection refused")

	s.store.EXPECT().Exists(s.ctx, "S1").Return(false, boom)

	_, err := svc.CreateStudent(s.ctx, sampleStudent())
	s.ErrorIs(err, boom)
}

func (s *StudentServiceTestSuite) TestUpdateTrimsAndForwards() {
	svc := NewStudentService(s.store, Options{})
	course := "  Math "

	s.store.EXPECT().Update(s.ctx, "S1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, c models.StudentChanges) (*models.Student, error) {
			s.Equal("Math", *c.Course)
			s.Nil(c.StudentName)
			return &models.Student{StudentID: "S1", Course: *c.Course}, nil
		})

	updated, err := svc.UpdateStudent(s.ctx, "S1", models.StudentChanges{Course: &course})
	s.Require().NoError(err)
	s.Equal("Math", updated.Course)
}

func (s *StudentServiceTestSuite) TestUpdateValidation() {
	svc := NewStudentService(s.store, Options{})
	blank := " "

	_, err := svc.UpdateStudent(s.ctx, "S1", models.StudentChanges{})
	s.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStudent(s.ctx, "S1", models.StudentChanges{StudentName: &blank})
	s.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateStudent(s.ctx, "", models.StudentChanges{Course: &blank})
	s.ErrorIs(err, apperrors.ErrValidationFailed)
}

func (s *StudentServiceTestSuite) TestUpdateMissingStudent() {
	svc := NewStudentService(s.store, Options{})
	course := "Math"

	s.store.EXPECT().Update(s.ctx, "nobody", gomock.Any()).Return(nil, repositories.ErrStudentNotFound)

	_, err := svc.UpdateStudent(s.ctx, "nobody", models.StudentChanges{Course: &course})
	s.ErrorIs(err, apperrors.ErrResourceNotFound)
}
