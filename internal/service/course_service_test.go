package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/model"

	"github.com/rs/zerolog"
)

// fakeCourseRepo is an in-memory CourseRepository recording calls. When
// createEntered/createRelease are set, CreateCourse blocks between them so
// tests can hold a submission in flight.
type fakeCourseRepo struct {
	courses map[string]model.Course

	createCalls int
	updateCalls int
	deleteCalls int

	lastCreated *model.Course
	lastUpdated *model.Course
	lastDeleted string

	getErr error

	createEntered chan struct{}
	createRelease chan struct{}
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]model.Course)}
}

func (f *fakeCourseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	out := make([]model.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	f.createCalls++
	if f.createEntered != nil {
		close(f.createEntered)
		<-f.createRelease
	}
	c.CourseID = "generated-id"
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.lastCreated = c
	f.courses[c.CourseID] = *c
	return nil
}

func (f *fakeCourseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCourseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	f.updateCalls++
	f.lastUpdated = c
	f.courses[c.CourseID] = *c
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	f.deleteCalls++
	f.lastDeleted = courseID
	delete(f.courses, courseID)
	return nil
}

var (
	adminActor  = model.Actor{UserID: "admin-1", Email: "admin@example.com", Role: model.RoleAdmin}
	viewerActor = model.Actor{UserID: "viewer-1", Email: "viewer@example.com", Role: model.RoleNone}
)

func TestCreateCourseRequiresAdmin(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo, zerolog.Nop())

	_, err := svc.CreateCourse(context.Background(), viewerActor, &model.Course{Title: "Intro to AI"})
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("repository write issued for non-admin actor: %d calls", repo.createCalls)
	}
}

func TestCreateCourseSetsCreator(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo, zerolog.Nop())

	created, err := svc.CreateCourse(context.Background(), adminActor, &model.Course{
		Title:       "Intro to AI",
		Description: "Foundations of AI.",
	})
	if err != nil {
		t.Fatalf("CreateCourse returned error: %v", err)
	}
	if created.CreatedBy != adminActor.UserID {
		t.Fatalf("created_by = %q, want %q", created.CreatedBy, adminActor.UserID)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.createCalls)
	}
}

func TestUpdateCourseScopedToBoundID(t *testing.T) {
	repo := newFakeCourseRepo()
	repo.courses["c1"] = model.Course{CourseID: "c1", Title: "Old title"}
	repo.courses["c2"] = model.Course{CourseID: "c2", Title: "Untouched"}
	svc := NewCourseService(repo, zerolog.Nop())

	_, err := svc.UpdateCourse(context.Background(), adminActor, &model.Course{
		CourseID: "c1",
		Title:    "New title",
	})
	if err != nil {
		t.Fatalf("UpdateCourse returned error: %v", err)
	}
	if repo.lastUpdated.CourseID != "c1" {
		t.Fatalf("update issued for id %q, want c1", repo.lastUpdated.CourseID)
	}
	if got := repo.courses["c2"].Title; got != "Untouched" {
		t.Fatalf("unrelated course mutated: title = %q", got)
	}
}

func TestUpdateCourseUnknownID(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo, zerolog.Nop())

	_, err := svc.UpdateCourse(context.Background(), adminActor, &model.Course{CourseID: "missing", Title: "New title"})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("update issued for unknown course id")
	}
}

func TestDeleteCourseRequiresAdmin(t *testing.T) {
	repo := newFakeCourseRepo()
	repo.courses["c1"] = model.Course{CourseID: "c1", Title: "Intro to AI"}
	svc := NewCourseService(repo, zerolog.Nop())

	if err := svc.DeleteCourse(context.Background(), viewerActor, "c1"); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatal("delete issued for non-admin actor")
	}
	if _, ok := repo.courses["c1"]; !ok {
		t.Fatal("course removed by non-admin delete")
	}
}

func TestDeleteCourse(t *testing.T) {
	repo := newFakeCourseRepo()
	repo.courses["c1"] = model.Course{CourseID: "c1", Title: "Intro to AI"}
	svc := NewCourseService(repo, zerolog.Nop())

	if err := svc.DeleteCourse(context.Background(), adminActor, "c1"); err != nil {
		t.Fatalf("DeleteCourse returned error: %v", err)
	}
	if repo.lastDeleted != "c1" {
		t.Fatalf("delete issued for id %q, want c1", repo.lastDeleted)
	}

	if err := svc.DeleteCourse(context.Background(), adminActor, "missing"); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound for unknown id, got %v", err)
	}
}

func TestDoubleSubmitRejected(t *testing.T) {
	repo := newFakeCourseRepo()
	repo.createEntered = make(chan struct{})
	repo.createRelease = make(chan struct{})
	svc := NewCourseService(repo, zerolog.Nop())

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.CreateCourse(context.Background(), adminActor, &model.Course{Title: "Intro to AI"})
		firstDone <- err
	}()

	// Wait until the first submission is inside the repository call, then
	// attempt a second one from the same user.
	select {
	case <-repo.createEntered:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for first submission to reach the repository")
	}

	_, err := svc.CreateCourse(context.Background(), adminActor, &model.Course{Title: "Another course"})
	if !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(repo.createRelease)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submission returned error: %v", err)
	}

	// The guard releases once the first submission finishes.
	repo.createEntered = nil
	if _, err := svc.CreateCourse(context.Background(), adminActor, &model.Course{Title: "Third course"}); err != nil {
		t.Fatalf("submission after release returned error: %v", err)
	}
}
