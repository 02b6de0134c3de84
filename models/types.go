// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Plan tiers
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// Domain types

type User struct {
	ID         int64   `json:"user_id"`
	ExternalID string  `json:"-"`
	Email      *string `json:"email,omitempty"`
	Name       string  `json:"name"`
	Plan       *string `json:"plan,omitempty"`
}

type Tab struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"-"`
	Name        string `json:"name"`
	ButtonCount int    `json:"button_count"`
}

// ButtonSpec holds the client-configurable attributes of a button.
// Only Function is required; everything else may be null.
type ButtonSpec struct {
	Function          string  `json:"function" validate:"required,notblank,max=100"`
	Image             *string `json:"image,omitempty" validate:"omitempty,max=255"`
	Name              *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Scene             *string `json:"scene,omitempty" validate:"omitempty,max=255"`
	SceneCollection   *string `json:"scene_collection,omitempty" validate:"omitempty,max=255"`
	Profile           *string `json:"profile,omitempty" validate:"omitempty,max=255"`
	Sound             *string `json:"sound,omitempty" validate:"omitempty,max=255"`
	SceneItem         *string `json:"scene_item,omitempty" validate:"omitempty,max=255"`
	SceneItemFunction *string `json:"scene_item_function,omitempty" validate:"omitempty,max=255"`
}

type Button struct {
	ID    int64 `json:"id"`
	TabID int64 `json:"tab_id"`
	ButtonSpec
}

// ButtonView is a button annotated with the name of the tab that owns it.
type ButtonView struct {
	Button
	TabName string `json:"tab_name"`
}

// TabTree is one entry of a bulk-import snapshot.
type TabTree struct {
	Name    string       `json:"name" validate:"required,notblank,max=100"`
	Buttons []ButtonSpec `json:"buttons" validate:"dive"`
}

// Request types

type LoginRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=255"`
}

type AddButtonRequest struct {
	ButtonSpec
}

type UpdateButtonRequest struct {
	ButtonSpec
}

type ImportRequest struct {
	Tabs []TabTree `json:"tabs" validate:"unique=Name,dive"`
}

// Response types

type LoginResponse struct {
	UserID int64   `json:"user_id"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Plan   *string `json:"plan,omitempty"`
}

type PlanResponse struct {
	Plan string `json:"plan"`
}

type AddButtonResponse struct {
	ButtonID int64  `json:"button_id"`
	TabName  string `json:"tab_name"`
}

type RemoveButtonResponse struct {
	Deleted   bool `json:"deleted"`
	TabPruned bool `json:"tab_pruned"`
}

type ListButtonsResponse struct {
	Buttons []ButtonView `json:"buttons"`
}

type ListTabsResponse struct {
	Tabs []Tab `json:"tabs"`
}

type ImportResponse struct {
	Tabs    int `json:"tabs"`
	Buttons int `json:"buttons"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
