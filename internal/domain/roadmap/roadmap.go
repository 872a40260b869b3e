package roadmap

import (
	"errors"
	"math"
	"time"
)

type ResourceType string

const (
	ResourceCourse    ResourceType = "COURSE"
	ResourceVideo     ResourceType = "VIDEO"
	ResourceMentor    ResourceType = "MENTOR"
	ResourceCommunity ResourceType = "COMMUNITY"
	ResourceTool      ResourceType = "TOOL"
)

type Resource struct {
	ID          string       `json:"id,omitempty"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description"`
	IsFree      bool         `json:"isFree"`
	Location    string       `json:"location,omitempty"`
}

// Step is one actionable unit of a roadmap. EstimatedDuration keeps the
// model's own phrasing ("2-4 weeks").
type Step struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	EstimatedDuration string     `json:"estimatedDuration"`
	Resources         []Resource `json:"resources"`
	IsCompleted       bool       `json:"isCompleted"`
	Order             int        `json:"order"`
}

type Roadmap struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"userId"`
	Goals                   []Goal    `json:"goals"`
	Steps                   []Step    `json:"steps"`
	GeneratedAt             time.Time `json:"generatedAt"`
	Progress                int       `json:"progress"`
	EstimatedCompletionDate time.Time `json:"estimatedCompletionDate"`
}

var ErrStepNotFound = errors.New("step not found")

// SetStepCompleted flips one step's completion flag and recomputes Progress.
func (r *Roadmap) SetStepCompleted(stepID string, completed bool) error {
	for i := range r.Steps {
		if r.Steps[i].ID == stepID {
			r.Steps[i].IsCompleted = completed
			r.RecomputeProgress()
			return nil
		}
	}
	return ErrStepNotFound
}

// RecomputeProgress sets Progress to the rounded percentage of completed steps.
func (r *Roadmap) RecomputeProgress() {
	if len(r.Steps) == 0 {
		r.Progress = 0
		return
	}
	done := 0
	for _, s := range r.Steps {
		if s.IsCompleted {
			done++
		}
	}
	r.Progress = int(math.Round(float64(done) * 100 / float64(len(r.Steps))))
}
