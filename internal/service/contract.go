//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/team-chat-service/internal/model"
)

type DBRepo interface {
	GetMember(ctx context.Context, workspaceID, userID uuid.UUID) (*model.Member, error)
	GetMemberByID(ctx context.Context, memberID uuid.UUID) (*model.Member, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	GetChannel(ctx context.Context, channelID uuid.UUID) (*model.Channel, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	FindConversation(ctx context.Context, workspaceID, memberOneID, memberTwoID uuid.UUID) (*model.Conversation, error)
	CreateConversation(ctx context.Context, conversation *model.Conversation) (bool, error)

	GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error)
	GetMessages(ctx context.Context, filter model.FeedFilter, before *model.Cursor, limit uint64) (model.MessageList, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	UpdateMessageBody(ctx context.Context, messageID uuid.UUID, body string, updatedAt time.Time) error
	RemoveMessage(ctx context.Context, messageID uuid.UUID, deletedAt time.Time) error
	CountReplies(ctx context.Context, parentMessageID uuid.UUID) (int, error)
	GetLastReply(ctx context.Context, parentMessageID uuid.UUID) (*model.Message, error)

	GetReactions(ctx context.Context, messageID uuid.UUID) (model.ReactionList, error)
	DeleteReaction(ctx context.Context, messageID, memberID uuid.UUID, value string) (*uuid.UUID, error)
	InsertReaction(ctx context.Context, reaction *model.Reaction) (bool, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type BlobStorage interface {
	Upload(ctx context.Context, upload *model.Upload) (string, error)
	Remove(ctx context.Context, key string) error
	URL(ctx context.Context, key string) (string, error)
	LinkEpoch(now time.Time) int64
}

type VersionStore interface {
	Incr(ctx context.Context, scope string) (int64, error)
	Get(ctx context.Context, scope string) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event model.FeedEvent) error
}
