package goal

import (
	"fmt"
	"strings"
	"time"
)

// ResourceType categorizes the learning resource behind a goal.
type ResourceType string

const (
	ResourceCourse        ResourceType = "course"
	ResourceVideo         ResourceType = "video"
	ResourceArticle       ResourceType = "article"
	ResourceBook          ResourceType = "book"
	ResourceTutorial      ResourceType = "tutorial"
	ResourceCertification ResourceType = "certification"
)

// ResourceTypes lists every valid resource type in display order.
var ResourceTypes = []ResourceType{
	ResourceCourse,
	ResourceVideo,
	ResourceArticle,
	ResourceBook,
	ResourceTutorial,
	ResourceCertification,
}

// Valid reports whether r is one of the enumerated resource types.
func (r ResourceType) Valid() bool {
	for _, rt := range ResourceTypes {
		if r == rt {
			return true
		}
	}
	return false
}

// Status is the progress state of a goal.
type Status string

const (
	StatusStarted    Status = "started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every valid status in progression order.
var Statuses = []Status{StatusStarted, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	return s == StatusStarted || s == StatusInProgress || s == StatusCompleted
}

// Label returns the human-readable form of the status ("in progress").
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// Platforms is the suggestion set for the platform field. Free text is
// accepted; these are only the values offered by the add form.
var Platforms = []string{
	"Udemy", "YouTube", "Coursera", "edX", "Pluralsight",
	"LinkedIn Learning", "Skillshare", "FreeCodeCamp", "Khan Academy", "Other",
}

// Goal is a single tracked learning item. Field names match the GoalStore
// wire format.
type Goal struct {
	// ID uniquely identifies the goal. Assigned by GoalStore on creation.
	ID int64 `json:"id"`

	// SkillName is the skill being learned. Never empty.
	SkillName string `json:"skill_name"`

	// ResourceType is the kind of learning resource.
	ResourceType ResourceType `json:"resource_type"`

	// Platform is where the resource is hosted.
	Platform string `json:"platform"`

	// ProgressStatus is the current progress state.
	ProgressStatus Status `json:"progress_status"`

	// HoursSpent is the time invested so far. Never negative.
	HoursSpent float64 `json:"hours_spent"`

	// Notes is free-text progress notes. May be empty.
	Notes string `json:"notes"`

	// DifficultyRating is the perceived difficulty, 1 through 5.
	DifficultyRating int `json:"difficulty_rating"`

	// CreatedAt is set once by GoalStore at creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped by GoalStore on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRequest is the payload for creating a goal. GoalStore fills in
// id, created_at and updated_at.
type CreateRequest struct {
	SkillName        string       `json:"skill_name"`
	ResourceType     ResourceType `json:"resource_type"`
	Platform         string       `json:"platform"`
	ProgressStatus   Status       `json:"progress_status"`
	HoursSpent       float64      `json:"hours_spent"`
	Notes            string       `json:"notes"`
	DifficultyRating int          `json:"difficulty_rating"`
}

// Validate checks required fields and value ranges before the request is
// sent. A failing request is never put on the wire.
func (r *CreateRequest) Validate() error {
	if strings.TrimSpace(r.SkillName) == "" {
		return fmt.Errorf("skill name is required")
	}
	if !r.ResourceType.Valid() {
		return fmt.Errorf("invalid resource type %q", r.ResourceType)
	}
	if strings.TrimSpace(r.Platform) == "" {
		return fmt.Errorf("platform is required")
	}
	if !r.ProgressStatus.Valid() {
		return fmt.Errorf("invalid progress status %q", r.ProgressStatus)
	}
	if r.HoursSpent < 0 {
		return fmt.Errorf("hours spent cannot be negative")
	}
	if r.DifficultyRating < 1 || r.DifficultyRating > 5 {
		return fmt.Errorf("difficulty rating must be between 1 and 5, got %d", r.DifficultyRating)
	}
	return nil
}

// NewCreateRequest returns a request pre-filled with the defaults the add
// form starts from: status "started", zero hours, difficulty 1.
func NewCreateRequest() CreateRequest {
	return CreateRequest{
		ResourceType:     ResourceCourse,
		ProgressStatus:   StatusStarted,
		DifficultyRating: 1,
	}
}

// UpdateRequest carries a subset of the mutable fields. Nil fields are
// omitted from the wire payload and left unchanged by GoalStore.
type UpdateRequest struct {
	ProgressStatus   *Status  `json:"progress_status,omitempty"`
	HoursSpent       *float64 `json:"hours_spent,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	DifficultyRating *int     `json:"difficulty_rating,omitempty"`
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateRequest) IsEmpty() bool {
	return r.ProgressStatus == nil && r.HoursSpent == nil && r.Notes == nil && r.DifficultyRating == nil
}

// Validate checks the populated fields.
func (r *UpdateRequest) Validate() error {
	if r.IsEmpty() {
		return fmt.Errorf("update contains no fields")
	}
	if r.ProgressStatus != nil && !r.ProgressStatus.Valid() {
		return fmt.Errorf("invalid progress status %q", *r.ProgressStatus)
	}
	if r.HoursSpent != nil && *r.HoursSpent < 0 {
		return fmt.Errorf("hours spent cannot be negative")
	}
	if r.DifficultyRating != nil && (*r.DifficultyRating < 1 || *r.DifficultyRating > 5) {
		return fmt.Errorf("difficulty rating must be between 1 and 5, got %d", *r.DifficultyRating)
	}
	return nil
}
