package model

import "github.com/google/uuid"

type Channel struct {
	ID          uuid.UUID `db:"id" json:"id"`
	WorkspaceID uuid.UUID `db:"workspace_id" json:"workspace_id"`
	Name        string    `db:"name" json:"name"`
}

type Conversation struct {
	ID          uuid.UUID `db:"id" json:"id"`
	WorkspaceID uuid.UUID `db:"workspace_id" json:"workspace_id"`
	MemberOneID uuid.UUID `db:"member_one_id" json:"member_one_id"`
	MemberTwoID uuid.UUID `db:"member_two_id" json:"member_two_id"`
}

// OrderedPair returns the two member ids in storage order, so (a, b) and
// (b, a) address the same conversation row.
func OrderedPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() <= b.String() {
		return a, b
	}
	return b, a
}
