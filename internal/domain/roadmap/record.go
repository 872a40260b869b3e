package roadmap

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Record is the stored form of a Roadmap. Goals and steps are snapshotted
// as JSON so later goal edits never rewrite history.
type Record struct {
	ID                      string         `gorm:"primaryKey;size:64"`
	UserID                  string         `gorm:"index;not null;size:64;column:user_id"`
	Goals                   datatypes.JSON `gorm:"column:goals"`
	Steps                   datatypes.JSON `gorm:"column:steps"`
	GeneratedAt             time.Time      `gorm:"index;column:generated_at"`
	Progress                int            `gorm:"column:progress"`
	EstimatedCompletionDate time.Time      `gorm:"column:estimated_completion_date"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (Record) TableName() string { return "roadmaps" }

func ToRecord(r *Roadmap) (*Record, error) {
	goals, err := json.Marshal(r.Goals)
	if err != nil {
		return nil, fmt.Errorf("encode goals: %w", err)
	}
	steps, err := json.Marshal(r.Steps)
	if err != nil {
		return nil, fmt.Errorf("encode steps: %w", err)
	}
	return &Record{
		ID:                      r.ID,
		UserID:                  r.UserID,
		Goals:                   datatypes.JSON(goals),
		Steps:                   datatypes.JSON(steps),
		GeneratedAt:             r.GeneratedAt,
		Progress:                r.Progress,
		EstimatedCompletionDate: r.EstimatedCompletionDate,
	}, nil
}

func FromRecord(rec *Record) (*Roadmap, error) {
	out := &Roadmap{
		ID:                      rec.ID,
		UserID:                  rec.UserID,
		GeneratedAt:             rec.GeneratedAt,
		Progress:                rec.Progress,
		EstimatedCompletionDate: rec.EstimatedCompletionDate,
	}
	if len(rec.Goals) > 0 {
		if err := json.Unmarshal(rec.Goals, &out.Goals); err != nil {
			return nil, fmt.Errorf("decode goals: %w", err)
		}
	}
	if len(rec.Steps) > 0 {
		if err := json.Unmarshal(rec.Steps, &out.Steps); err != nil {
			return nil, fmt.Errorf("decode steps: %w", err)
		}
	}
	return out, nil
}
