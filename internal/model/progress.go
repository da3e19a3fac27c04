package model

import (
	"time"
)

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressDone       ProgressStatus = "done"
)

// Progress keeps one row per (student, module) pair. Writes always go
// through an upsert on that pair, so concurrent submissions resolve to
// last-write-wins without a version column.
// swagger:model Progress
type Progress struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID    uint           `gorm:"uniqueIndex:idx_student_module;not null" json:"student_id"`
	ModuleID     string         `gorm:"type:varchar(36);uniqueIndex:idx_student_module;not null" json:"module_id"`
	Status       ProgressStatus `gorm:"size:20;default:'not_started'" json:"status"`
	Score        *int           `json:"score,omitempty"`
	LastViewedAt time.Time      `json:"last_viewed_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Progress) TableName() string {
	return "progress"
}
