package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/skytech/srms/internal/app/models"
	"github.com/skytech/srms/internal/app/repositories"
	"github.com/skytech/srms/internal/pkg/apperrors"
)

func newCourse(code string) *models.Course {
	return &models.Course{
		CourseCode:  code,
		CourseTitle: "Introduction to Algorithms",
		Credits:     4,
	}
}

type CourseServiceSuite struct {
	suite.Suite
	stores  *repositories.MemoryStores
	service *CourseService
}

func (s *CourseServiceSuite) SetupTest() {
	s.stores = repositories.NewMemoryStores()
	s.service = NewCourseService(s.stores.Courses())
}

func TestCourseServiceSuite(t *testing.T) {
	suite.Run(t, new(CourseServiceSuite))
}

func (s *CourseServiceSuite) TestSaveNewCourse() {
	ctx := context.Background()

	saved, err := s.service.Save(ctx, newCourse("CS101"))
	s.Require().NoError(err)
	s.NotZero(saved.ID)

	found, err := s.service.FindByCourseCode(ctx, "CS101")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(saved, found)
}

func (s *CourseServiceSuite) TestSaveDuplicateCourseCode() {
	ctx := context.Background()

	_, err := s.service.Save(ctx, newCourse("CS101"))
	s.Require().NoError(err)

	_, err = s.service.Save(ctx, newCourse("CS101"))
	s.Require().ErrorIs(err, apperrors.ErrDuplicateKey)

	all, err := s.service.GetAll(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *CourseServiceSuite) TestCreditsBounds() {
	ctx := context.Background()

	for _, credits := range []int{0, -1, 11, 100} {
		course := newCourse("CS900")
		course.Credits = credits
		_, err := s.service.Save(ctx, course)
		s.Require().ErrorIs(err, apperrors.ErrValidationFailed, "credits=%d must be rejected", credits)
	}

	low := newCourse("CS001")
	low.Credits = 1
	_, err := s.service.Save(ctx, low)
	s.Require().NoError(err)

	high := newCourse("CS010")
	high.Credits = 10
	_, err = s.service.Save(ctx, high)
	s.Require().NoError(err)
}

func (s *CourseServiceSuite) TestSaveValidation() {
	ctx := context.Background()

	blankCode := newCourse("  ")
	_, err := s.service.Save(ctx, blankCode)
	s.Require().ErrorIs(err, apperrors.ErrValidationFailed)

	blankTitle := newCourse("CS101")
	blankTitle.CourseTitle = ""
	_, err = s.service.Save(ctx, blankTitle)
	s.Require().ErrorIs(err, apperrors.ErrValidationFailed)
}

func (s *CourseServiceSuite) TestUpdateKeepsCourseCode() {
	ctx := context.Background()

	saved, err := s.service.Save(ctx, newCourse("CS101"))
	s.Require().NoError(err)

	saved.CourseTitle = "Advanced Algorithms"
	updated, err := s.service.Save(ctx, saved)
	s.Require().NoError(err)
	s.Equal(saved.ID, updated.ID)
	s.Equal("Advanced Algorithms", updated.CourseTitle)

	all, err := s.service.GetAll(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *CourseServiceSuite) TestGetAllOrderedByCourseCode() {
	ctx := context.Background()

	for _, code := range []string{"MA201", "CS101", "PH110"} {
		_, err := s.service.Save(ctx, newCourse(code))
		s.Require().NoError(err)
	}

	all, err := s.service.GetAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("CS101", all[0].CourseCode)
	s.Equal("MA201", all[1].CourseCode)
	s.Equal("PH110", all[2].CourseCode)
}

func (s *CourseServiceSuite) TestDelete() {
	ctx := context.Background()

	err := s.service.Delete(ctx, 42)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)

	saved, err := s.service.Save(ctx, newCourse("CS101"))
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(ctx, saved.ID))

	found, err := s.service.FindByID(ctx, saved.ID)
	s.Require().NoError(err)
	s.Nil(found)
}
