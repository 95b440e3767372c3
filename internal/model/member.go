package model

import "github.com/google/uuid"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Member struct {
	ID          uuid.UUID `db:"id" json:"id"`
	WorkspaceID uuid.UUID `db:"workspace_id" json:"workspace_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Role        string    `db:"role" json:"role"`
}

type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Image *string   `db:"image" json:"image,omitempty"`
}

// UserProfileUpdate is the payload of the user service update topic.
type UserProfileUpdate struct {
	UserID string  `json:"user_uuid"`
	Name   *string `json:"nickname,omitempty"`
	Image  *string `json:"avatar_link,omitempty"`
}
