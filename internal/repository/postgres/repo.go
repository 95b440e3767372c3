package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/model"
)

type txKey struct{}

type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx by WithTx, or the pool.
func (r *Repository) Chk(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

// WithTx runs cb in a transaction. Nested calls join the outer transaction.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %v", err)
	}

	if err := cb(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback tx: %v (cause: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %v", err)
	}

	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

func (r *Repository) GetMember(ctx context.Context, workspaceID, userID uuid.UUID) (*model.Member, error) {
	query, args, err := sq.Select("id", "workspace_id", "user_id", "role").
		From("members").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var member model.Member
	if err := r.Chk(ctx).GetContext(ctx, &member, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &member, nil
}

func (r *Repository) GetMemberByID(ctx context.Context, memberID uuid.UUID) (*model.Member, error) {
	query, args, err := sq.Select("id", "workspace_id", "user_id", "role").
		From("members").
		Where(sq.Eq{"id": memberID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var member model.Member
	if err := r.Chk(ctx).GetContext(ctx, &member, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &member, nil
}

func (r *Repository) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	query, args, err := sq.Select("id", "name", "image").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	if err := r.Chk(ctx).GetContext(ctx, &user, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

// UpsertUserProfile applies a profile change from the user service. Fields
// left nil keep their stored value.
func (r *Repository) UpsertUserProfile(ctx context.Context, userID uuid.UUID, name, image *string) error {
	insertName := ""
	if name != nil {
		insertName = *name
	}

	suffix := "ON CONFLICT (id) DO UPDATE SET name = COALESCE(?, users.name), image = COALESCE(?, users.image)"

	query, args, err := sq.Insert("users").
		Columns("id", "name", "image").
		Values(userID, insertName, image).
		Suffix(suffix, name, image).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert user profile: %v", err)
	}

	return nil
}

func (r *Repository) GetChannel(ctx context.Context, channelID uuid.UUID) (*model.Channel, error) {
	query, args, err := sq.Select("id", "workspace_id", "name").
		From("channels").
		Where(sq.Eq{"id": channelID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var channel model.Channel
	if err := r.Chk(ctx).GetContext(ctx, &channel, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &channel, nil
}

func (r *Repository) GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "workspace_id", "member_one_id", "member_two_id").
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	if err := r.Chk(ctx).GetContext(ctx, &conversation, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &conversation, nil
}

// FindConversation matches the pair in either column order.
func (r *Repository) FindConversation(ctx context.Context, workspaceID, memberOneID, memberTwoID uuid.UUID) (*model.Conversation, error) {
	query, args, err := sq.Select("id", "workspace_id", "member_one_id", "member_two_id").
		From("conversations").
		Where(sq.Eq{"workspace_id": workspaceID}).
		Where(sq.Or{
			sq.Eq{"member_one_id": memberOneID, "member_two_id": memberTwoID},
			sq.Eq{"member_one_id": memberTwoID, "member_two_id": memberOneID},
		}).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	if err := r.Chk(ctx).GetContext(ctx, &conversation, query, args...); err != nil {
		return nil, notFound(err)
	}

	return &conversation, nil
}

// CreateConversation reports false when the pair already has a row.
func (r *Repository) CreateConversation(ctx context.Context, conversation *model.Conversation) (bool, error) {
	query, args, err := sq.Insert("conversations").
		Columns("id", "workspace_id", "member_one_id", "member_two_id").
		Values(conversation.ID, conversation.WorkspaceID, conversation.MemberOneID, conversation.MemberTwoID).
		Suffix("ON CONFLICT (workspace_id, member_one_id, member_two_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to create conversation: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %v", err)
	}

	return affected > 0, nil
}
