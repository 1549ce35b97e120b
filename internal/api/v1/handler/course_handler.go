package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"
	"app/internal/validation"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validation.Validator
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validation.Validator) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/courses", authMw(http.HandlerFunc(h.handleCourses)))
	mux.Handle("/courses/", authMw(http.HandlerFunc(h.handleCourse)))
}

func (h *CourseHandler) handleCourses(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/courses" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.listCourses(w, r)
	case http.MethodPost:
		h.createCourse(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CourseHandler) handleCourse(w http.ResponseWriter, r *http.Request) {
	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")
	if courseID == "" || strings.Contains(courseID, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.getCourse(w, r, courseID)
	case http.MethodPut:
		h.updateCourse(w, r, courseID)
	case http.MethodDelete:
		h.deleteCourse(w, r, courseID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// listCourses godoc
// @Summary List courses
// @Description Returns every course, most recently created first.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Failed to fetch courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ActorFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch courses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, toCourseResponse(c))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a new course. Requires the admin role grant.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Admin role required"
// @Failure 409 {string} string "Submission already in progress"
// @Failure 500 {string} string "Failed to create course"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	// Validation runs before any database work; a violation aborts the
	// submission here.
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	course := &model.Course{
		Title:       req.Title,
		Description: derefOrEmpty(req.Description),
	}
	created, err := h.courseService.CreateCourse(r.Context(), actor, course)
	if err != nil {
		writeServiceError(w, "Failed to create course", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toCourseResponse(*created))
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by its ID.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to retrieve course"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	if _, ok := middleware.ActorFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	course, err := h.courseService.GetCourseByID(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, "Failed to retrieve course", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toCourseResponse(*course))
}

// updateCourse godoc
// @Summary Update a course
// @Description Patches title and description of an existing course. Requires the admin role grant.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Admin role required"
// @Failure 404 {string} string "Course not found"
// @Failure 409 {string} string "Submission already in progress"
// @Failure 500 {string} string "Failed to update course"
// @Router /courses/{courseId} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	course := &model.Course{
		CourseID:    courseID,
		Title:       req.Title,
		Description: derefOrEmpty(req.Description),
	}
	updated, err := h.courseService.UpdateCourse(r.Context(), actor, course)
	if err != nil {
		writeServiceError(w, "Failed to update course", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toCourseResponse(*updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course by its ID. Requires the admin role grant.
// @Tags courses
// @Param courseId path string true "Course ID"
// @Success 204 {string} string "No Content"
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Admin role required"
// @Failure 404 {string} string "Course not found"
// @Failure 500 {string} string "Failed to delete course"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	if err := h.courseService.DeleteCourse(r.Context(), actor, courseID); err != nil {
		writeServiceError(w, "Failed to delete course", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toCourseResponse(c model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		CourseID:    c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeServiceError maps service sentinel errors onto HTTP status codes.
// Backend errors pass their message through to the caller verbatim.
func writeServiceError(w http.ResponseWriter, prefix string, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		http.Error(w, "Course not found", http.StatusNotFound)
	case errors.Is(err, service.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrSubmissionInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, prefix+": "+err.Error(), http.StatusInternalServerError)
	}
}
