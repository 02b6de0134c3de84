// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/deckboard/models"
)

func strPtr(s string) *string { return &s }

func TestStructValidButton(t *testing.T) {
	req := models.AddButtonRequest{ButtonSpec: models.ButtonSpec{
		Function: "switch_scene",
		Name:     strPtr("Go Live"),
		Scene:    strPtr("Live"),
	}}

	if err := Struct(&req); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
}

func TestStructMissingFunction(t *testing.T) {
	req := models.AddButtonRequest{ButtonSpec: models.ButtonSpec{Name: strPtr("Go Live")}}

	err := Struct(&req)
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *Error, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Tag != "required" {
		t.Errorf("Expected one required failure, got %+v", verr.Fields)
	}
	if !strings.Contains(err.Error(), "function is required") {
		t.Errorf("Expected message to name the function field, got %q", err.Error())
	}
}

func TestStructOptionalTooLong(t *testing.T) {
	req := models.UpdateButtonRequest{ButtonSpec: models.ButtonSpec{
		Function: "play_sound",
		Sound:    strPtr(strings.Repeat("s", 256)),
	}}

	err := Struct(&req)
	if err == nil || !strings.Contains(err.Error(), "sound must be at most 255 characters") {
		t.Errorf("Expected max length failure for sound, got %v", err)
	}
}

func TestStructImport(t *testing.T) {
	testCases := []struct {
		name    string
		req     models.ImportRequest
		wantErr string
	}{
		{
			name: "valid",
			req: models.ImportRequest{Tabs: []models.TabTree{
				{Name: "Scenes", Buttons: []models.ButtonSpec{{Function: "switch_scene"}}},
				{Name: "Audio"},
			}},
		},
		{
			name: "empty tree",
			req:  models.ImportRequest{},
		},
		{
			name: "duplicate tab names",
			req: models.ImportRequest{Tabs: []models.TabTree{
				{Name: "Scenes"},
				{Name: "Scenes"},
			}},
			wantErr: "tabs must not contain duplicate Name values",
		},
		{
			name:    "missing tab name",
			req:     models.ImportRequest{Tabs: []models.TabTree{{Name: ""}}},
			wantErr: "tabs[0].name is required",
		},
		{
			name:    "whitespace tab name",
			req:     models.ImportRequest{Tabs: []models.TabTree{{Name: " \t "}}},
			wantErr: "tabs[0].name must not be blank",
		},
		{
			name: "whitespace button function",
			req: models.ImportRequest{Tabs: []models.TabTree{
				{Name: "Scenes", Buttons: []models.ButtonSpec{{Function: "   "}}},
			}},
			wantErr: "tabs[0].buttons[0].function must not be blank",
		},
		{
			name: "nested button missing function",
			req: models.ImportRequest{Tabs: []models.TabTree{
				{Name: "Scenes", Buttons: []models.ButtonSpec{{Function: "a"}, {}}},
			}},
			wantErr: "tabs[0].buttons[1].function is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(&tc.req)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestFieldPath(t *testing.T) {
	testCases := []struct {
		namespace string
		expected  string
	}{
		{"ButtonSpec.function", "function"},
		{"AddButtonRequest.ButtonSpec.sound", "sound"},
		{"ImportRequest.tabs[0].buttons[1].function", "tabs[0].buttons[1].function"},
		{"ImportRequest.tabs", "tabs"},
		{"Request", "Request"},
	}

	for _, tc := range testCases {
		t.Run(tc.namespace, func(t *testing.T) {
			if got := fieldPath(tc.namespace); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
