package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/team-chat-service/internal/model"
)

func (r *Repository) GetReactions(ctx context.Context, messageID uuid.UUID) (model.ReactionList, error) {
	query, args, err := sq.Select("id", "workspace_id", "message_id", "member_id", "value", "created_at").
		From("reactions").
		Where(sq.Eq{"message_id": messageID}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reactions model.ReactionList
	if err := r.Chk(ctx).SelectContext(ctx, &reactions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get reactions: %v", err)
	}

	return reactions, nil
}

// DeleteReaction returns the id of the removed row, or nil when the member
// had no reaction with this value.
func (r *Repository) DeleteReaction(ctx context.Context, messageID, memberID uuid.UUID, value string) (*uuid.UUID, error) {
	query, args, err := sq.Delete("reactions").
		Where(sq.Eq{"message_id": messageID, "member_id": memberID, "value": value}).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var id uuid.UUID
	if err := r.Chk(ctx).GetContext(ctx, &id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete reaction: %v", err)
	}

	return &id, nil
}

// InsertReaction reports false when the same reaction already exists.
func (r *Repository) InsertReaction(ctx context.Context, reaction *model.Reaction) (bool, error) {
	query, args, err := sq.Insert("reactions").
		Columns("id", "workspace_id", "message_id", "member_id", "value", "created_at").
		Values(reaction.ID, reaction.WorkspaceID, reaction.MessageID, reaction.MemberID, reaction.Value, reaction.CreatedAt).
		Suffix("ON CONFLICT (message_id, member_id, value) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to insert reaction: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %v", err)
	}

	return affected > 0, nil
}
