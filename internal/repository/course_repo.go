package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	// ListCourses retrieves every course, most recently created first
	ListCourses(ctx context.Context) ([]model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// UpdateCourse updates the title and description of an existing course
	UpdateCourse(ctx context.Context, c *model.Course) error
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, courseID string) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

// ListCourses retrieves all courses ordered by creation time descending
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	query := `
		SELECT id, title, description, created_by, created_at, updated_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var course model.Course
		if err := rows.Scan(
			&course.CourseID,
			&course.Title,
			&course.Description,
			&course.CreatedBy,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course rows: %w", err)
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	return courses, nil
}

// CreateCourse inserts a new course and returns the created record
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (title, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, created_by, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.CreatedBy).
		Scan(&c.CourseID, &c.Title, &c.Description, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	query := `
		SELECT id, title, description, created_by, created_at, updated_at
		FROM courses
		WHERE id = $1
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&c.CourseID,
		&c.Title,
		&c.Description,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting course by id %s: %w", courseID, err)
	}
	return &c, nil
}

// UpdateCourse patches title and description for the bound course id only
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_by, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.CourseID).
		Scan(&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating course %s: %w", c.CourseID, err)
	}
	return nil
}

// DeleteCourse deletes a course by its ID
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("deleting course %s: %w", courseID, err)
	}
	return nil
}
