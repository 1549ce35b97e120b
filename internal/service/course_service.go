package service

import (
	"context"
	"errors"
	"sync"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var (
	// ErrCourseNotFound is returned when the bound course id does not exist
	ErrCourseNotFound = errors.New("course not found")
	// ErrNotAuthorized is returned when a non-admin actor attempts a mutation
	ErrNotAuthorized = errors.New("admin role required to manage courses")
	// ErrSubmissionInFlight is returned when the actor already has a
	// submission pending; the duplicate is rejected, not queued
	ErrSubmissionInFlight = errors.New("a course submission is already in progress")
)

// CourseService defines course-related operations
type CourseService interface {
	// ListCourses returns all courses, most recently created first
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// CreateCourse inserts a new course on behalf of an admin actor
	CreateCourse(ctx context.Context, actor model.Actor, c *model.Course) (*model.Course, error)
	// UpdateCourse patches title and description of the bound course
	UpdateCourse(ctx context.Context, actor model.Actor, c *model.Course) (*model.Course, error)
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, actor model.Actor, courseID string) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo         repository.CourseRepository
	courseLogger zerolog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:         repo,
		courseLogger: logger.With().Str("service", "CourseService").Logger(),
		inflight:     make(map[string]struct{}),
	}
}

// beginSubmission marks a form submission as pending for the user. It returns
// false when one is already pending, which rejects rapid double submits.
func (s *courseService) beginSubmission(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, pending := s.inflight[userID]; pending {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *courseService) endSubmission(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}

// ListCourses returns all courses ordered by creation time descending
func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		s.courseLogger.Error().Err(err).Msg("Failed to list courses")
		return nil, err
	}
	return courses, nil
}

// GetCourseByID retrieves a course by its ID
func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	course, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to get course by ID")
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// CreateCourse creates a new course record carrying the actor as creator
func (s *courseService) CreateCourse(ctx context.Context, actor model.Actor, c *model.Course) (*model.Course, error) {
	if !actor.Role.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	if !s.beginSubmission(actor.UserID) {
		return nil, ErrSubmissionInFlight
	}
	defer s.endSubmission(actor.UserID)

	c.CreatedBy = actor.UserID
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		s.courseLogger.Error().Err(err).Str("user_id", actor.UserID).Msg("Failed to create course")
		return nil, err
	}
	return c, nil
}

// UpdateCourse updates an existing course scoped to the bound identifier
func (s *courseService) UpdateCourse(ctx context.Context, actor model.Actor, c *model.Course) (*model.Course, error) {
	if !actor.Role.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	if !s.beginSubmission(actor.UserID) {
		return nil, ErrSubmissionInFlight
	}
	defer s.endSubmission(actor.UserID)

	existingCourse, err := s.repo.GetCourseByID(ctx, c.CourseID)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", c.CourseID).Msg("Failed to get course by ID")
		return nil, err
	}
	if existingCourse == nil {
		return nil, ErrCourseNotFound
	}
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", c.CourseID).Msg("Failed to update course")
		return nil, err
	}
	return c, nil
}

// DeleteCourse removes a course after verifying it exists
func (s *courseService) DeleteCourse(ctx context.Context, actor model.Actor, courseID string) error {
	if !actor.Role.IsAdmin() {
		return ErrNotAuthorized
	}

	existingCourse, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to get course for deletion")
		return err
	}
	if existingCourse == nil {
		return ErrCourseNotFound
	}

	if err := s.repo.DeleteCourse(ctx, courseID); err != nil {
		s.courseLogger.Error().Err(err).Str("course_id", courseID).Msg("Failed to delete course record")
		return err
	}
	return nil
}
