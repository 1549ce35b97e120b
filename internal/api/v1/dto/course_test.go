package dto

import (
	"strings"
	"testing"

	"app/internal/validation"
)

func strPtr(s string) *string { return &s }

func TestCourseCreateValidation(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		req     CourseCreateDTO
		wantErr string // substring of the surfaced message, empty for valid
	}{
		{
			name:    "title too short",
			req:     CourseCreateDTO{Title: "CS"},
			wantErr: "title must be at least 3 characters",
		},
		{
			name:    "title missing",
			req:     CourseCreateDTO{},
			wantErr: "title is a required field",
		},
		{
			name: "title at minimum length",
			req:  CourseCreateDTO{Title: "CS1"},
		},
		{
			name: "title at maximum length",
			req:  CourseCreateDTO{Title: strings.Repeat("a", 100)},
		},
		{
			name:    "title over maximum length",
			req:     CourseCreateDTO{Title: strings.Repeat("a", 101)},
			wantErr: "title must be a maximum of 100 characters",
		},
		{
			name: "description at maximum length",
			req:  CourseCreateDTO{Title: "Intro to AI", Description: strPtr(strings.Repeat("d", 500))},
		},
		{
			name:    "description over maximum length",
			req:     CourseCreateDTO{Title: "Intro to AI", Description: strPtr(strings.Repeat("d", 501))},
			wantErr: "description must be a maximum of 500 characters",
		},
		{
			name: "description omitted",
			req:  CourseCreateDTO{Title: "Intro to AI"},
		},
		{
			name: "valid submission",
			req:  CourseCreateDTO{Title: "Intro to AI", Description: strPtr("Foundations of AI.")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid submission, got error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestCourseUpdateValidation(t *testing.T) {
	v := validation.New()

	if err := v.Struct(&CourseUpdateDTO{Title: "CS"}); err == nil {
		t.Fatal("expected minimum-length violation on update")
	}
	if err := v.Struct(&CourseUpdateDTO{Title: "Intro to AI"}); err != nil {
		t.Fatalf("expected valid update submission, got error: %v", err)
	}
}
