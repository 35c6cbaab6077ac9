package services

import (
	"context"
	"errors"

	"videobelajar/internal/domain"
	"videobelajar/internal/repos"
)

// ErrCourseNotFound means an id-scoped operation matched no row.
var ErrCourseNotFound = errors.New("course not found")

// CourseStore is the persistence the service needs; *repos.CourseRepo
// satisfies it.
type CourseStore interface {
	ListAll(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id string) (domain.Course, error)
	Create(ctx context.Context, in domain.CourseInput) (int64, error)
	Update(ctx context.Context, id string, in domain.CourseInput) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type CourseService struct {
	Courses CourseStore
}

func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{Courses: courses}
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.Courses.ListAll(ctx)
}

func (s *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	c, err := s.Courses.GetByID(ctx, id)
	if errors.Is(err, repos.ErrNoRows) {
		return domain.Course{}, ErrCourseNotFound
	}
	return c, err
}

// Create stores a new course. Required columns are not checked here; the
// storage engine decides.
func (s *CourseService) Create(ctx context.Context, in domain.CourseInput) (int64, error) {
	return s.Courses.Create(ctx, in)
}

// Update replaces every mutable column of the course.
func (s *CourseService) Update(ctx context.Context, id string, in domain.CourseInput) error {
	n, err := s.Courses.Update(ctx, id, in)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	n, err := s.Courses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCourseNotFound
	}
	return nil
}
