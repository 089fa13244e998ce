package model

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/botfut/botfut/constant"
)

// SubmissionEntity represents the submission table entity
type SubmissionEntity struct {
	ID            uint64                    `db:"id" json:"id"`
	UserID        uint64                    `db:"user_id" json:"user_id"`
	WorkspaceID   uint64                    `db:"workspace_id" json:"workspace_id"`
	Kind          constant.FormKind         `db:"kind" json:"kind"`
	Payload       types.JSONText            `db:"payload" json:"payload"`
	Status        constant.SubmissionStatus `db:"status" json:"status"`
	FailureReason *string                   `db:"failure_reason" json:"failure_reason,omitempty"`
	CreatedAt     time.Time                 `db:"created_at" json:"created_at"`
	DeliveredAt   *time.Time                `db:"delivered_at" json:"delivered_at,omitempty"`
}

type SubmissionFilter struct {
	WorkspaceID uint64
	Kind        constant.FormKind
}

type SubmitResponse struct {
	SubmissionID uint64      `json:"submission_id"`
	Status       string      `json:"status"`
	Values       interface{} `json:"values"`
}

type SubmissionListResponse struct {
	Items      []SubmissionEntity `json:"items"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
	Pages      []int              `json:"pages"`
}

// SubmissionMessage is published once a submission is stored and consumed by the delivery
// worker.
type SubmissionMessage struct {
	SubmissionID uint64            `json:"submission_id"`
	WorkspaceID  uint64            `json:"workspace_id"`
	Kind         constant.FormKind `json:"kind"`
	Payload      json.RawMessage   `json:"payload"`
	CreatedAt    time.Time         `json:"created_at"`
}

// SubmissionStatusResponse is what the delivery consumer reads before forwarding a message.
type SubmissionStatusResponse struct {
	SubmissionID uint64 `json:"submission_id"`
	Status       string `json:"status"`
}

type MarkFailedRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}
