package model

import "time"

// OperationStatus исход одной операции сохранения состава.
type OperationStatus string

const (
	OperationSucceeded OperationStatus = "succeeded"
	OperationFailed    OperationStatus = "failed"
	OperationSkipped   OperationStatus = "skipped"
)

// SaveReport отчёт об одном сохранении экрана "My Team": кто сохранял и что из этого прошло.
type SaveReport struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	ActorEmail string            `json:"actor_email"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Succeeded  int               `json:"succeeded"`
	Failed     int               `json:"failed"`
	Skipped    int               `json:"skipped"`
	Operations []ReportOperation `json:"operations"`
}

// ReportOperation строка отчёта по одной операции.
type ReportOperation struct {
	Kind     string          `json:"kind"`
	MemberID string          `json:"member_id"`
	Status   OperationStatus `json:"status"`
	Error    string          `json:"error,omitempty"`
}
