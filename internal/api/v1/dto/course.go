package dto

import "time"

// CourseCreateDTO is used for incoming course creation requests
type CourseCreateDTO struct {
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CourseUpdateDTO is used for incoming course update requests. The form
// always submits both fields, so the same constraints apply as on create.
type CourseUpdateDTO struct {
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
