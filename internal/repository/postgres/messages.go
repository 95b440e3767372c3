package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/team-chat-service/internal/model"
)

var messageColumns = []string{
	"id",
	"workspace_id",
	"channel_id",
	"conversation_id",
	"parent_message_id",
	"member_id",
	"body",
	"image",
	"created_at",
	"updated_at",
}

func selectMessages() sq.SelectBuilder {
	return sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"deleted_at": nil})
}

// feedPredicate builds the WHERE clause matching the partial index the filter
// names, so the planner can serve the walk from that index.
func feedPredicate(filter model.FeedFilter) (sq.Sqlizer, error) {
	switch filter.Index {
	case model.IndexByChannelParent:
		if filter.ChannelID == nil {
			return nil, fmt.Errorf("index %s needs a channel id", filter.Index)
		}
		return sq.And{sq.Eq{"channel_id": *filter.ChannelID}, sq.Eq{"parent_message_id": nil}}, nil
	case model.IndexByConversationParent:
		if filter.ConversationID == nil {
			return nil, fmt.Errorf("index %s needs a conversation id", filter.Index)
		}
		return sq.And{sq.Eq{"conversation_id": *filter.ConversationID}, sq.Eq{"parent_message_id": nil}}, nil
	case model.IndexByParentMessage:
		if filter.ParentMessageID == nil {
			return nil, fmt.Errorf("index %s needs a parent message id", filter.Index)
		}
		return sq.And{sq.Eq{"parent_message_id": *filter.ParentMessageID}}, nil
	default:
		return nil, fmt.Errorf("unknown feed index %q", filter.Index)
	}
}

func (r *Repository) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	query, args, err := selectMessages().
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	if err := r.Chk(ctx).GetContext(ctx, &message, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &message, nil
}

// GetMessages returns up to limit messages matching filter, newest first,
// strictly older than before when it is set.
func (r *Repository) GetMessages(ctx context.Context, filter model.FeedFilter, before *model.Cursor, limit uint64) (model.MessageList, error) {
	predicate, err := feedPredicate(filter)
	if err != nil {
		return nil, err
	}

	queryBuilder := selectMessages().
		Where(predicate).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)

	if before != nil {
		queryBuilder = queryBuilder.Where(sq.Expr("(created_at, id) < (?, ?)", before.CreatedAt, before.ID))
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	if err := r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	return messages, nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "workspace_id", "channel_id", "conversation_id", "parent_message_id", "member_id", "body", "image", "created_at").
		Values(
			message.ID,
			message.WorkspaceID,
			message.ChannelID,
			message.ConversationID,
			message.ParentMessageID,
			message.MemberID,
			message.Body,
			message.Image,
			message.CreatedAt,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) UpdateMessageBody(ctx context.Context, messageID uuid.UUID, body string, updatedAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("body", body).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": messageID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update message: %v", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *Repository) RemoveMessage(ctx context.Context, messageID uuid.UUID, deletedAt time.Time) error {
	query, args, err := sq.Update("messages").
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": messageID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove message: %v", err)
	}

	return nil
}

func (r *Repository) CountReplies(ctx context.Context, parentMessageID uuid.UUID) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("messages").
		Where(sq.Eq{"parent_message_id": parentMessageID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int
	if err := r.Chk(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count replies: %v", err)
	}

	return count, nil
}

func (r *Repository) GetLastReply(ctx context.Context, parentMessageID uuid.UUID) (*model.Message, error) {
	query, args, err := selectMessages().
		Where(sq.Eq{"parent_message_id": parentMessageID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	if err := r.Chk(ctx).GetContext(ctx, &message, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &message, nil
}
