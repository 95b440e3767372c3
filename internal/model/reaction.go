package model

import (
	"time"

	"github.com/google/uuid"
)

type ReactionList []Reaction

type Reaction struct {
	ID          uuid.UUID `db:"id" json:"id"`
	WorkspaceID uuid.UUID `db:"workspace_id" json:"workspace_id"`
	MessageID   uuid.UUID `db:"message_id" json:"message_id"`
	MemberID    uuid.UUID `db:"member_id" json:"member_id"`
	Value       string    `db:"value" json:"value"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ReactionGroup summarises every reaction with the same value on one message.
type ReactionGroup struct {
	Value     string      `json:"value"`
	Count     int         `json:"count"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

type ToggleResult struct {
	ReactionID uuid.UUID
	Added      bool
}
