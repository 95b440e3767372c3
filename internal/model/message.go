package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	WorkspaceID     uuid.UUID  `db:"workspace_id" json:"workspace_id"`
	ChannelID       *uuid.UUID `db:"channel_id" json:"channel_id,omitempty"`
	ConversationID  *uuid.UUID `db:"conversation_id" json:"conversation_id,omitempty"`
	ParentMessageID *uuid.UUID `db:"parent_message_id" json:"parent_message_id,omitempty"`
	MemberID        uuid.UUID  `db:"member_id" json:"member_id"`
	Body            string     `db:"body" json:"body"`
	Image           *string    `db:"image" json:"image,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// IsReply reports whether the message belongs to a thread.
func (m *Message) IsReply() bool {
	return m.ParentMessageID != nil
}

// NewMessage is the input of a send operation. Image is uploaded before the
// message row is written.
type NewMessage struct {
	Body            string
	WorkspaceID     *uuid.UUID
	ChannelID       *uuid.UUID
	ConversationID  *uuid.UUID
	ParentMessageID *uuid.UUID
	Image           *Upload
}

type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}
