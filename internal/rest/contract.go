//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	api "github.com/s21platform/team-chat-service/internal/generated"
	"github.com/s21platform/team-chat-service/internal/model"
)

type FeedService interface {
	GetMessagePage(ctx context.Context, userUUID string, req model.PageRequest) (*model.Page, error)
	AuthorizeFeed(ctx context.Context, userUUID string, req model.PageRequest) (model.Scope, error)
	FeedVersion(ctx context.Context, scope model.Scope) (model.FeedVersion, error)
	GetMessageByID(ctx context.Context, userUUID string, messageID uuid.UUID) (*model.EnrichedMessage, error)
	SendMessage(ctx context.Context, userUUID string, in *model.NewMessage) (*model.Message, error)
	UpdateMessage(ctx context.Context, userUUID string, messageID uuid.UUID, body string) (*model.Message, error)
	RemoveMessage(ctx context.Context, userUUID string, messageID uuid.UUID) error
	ToggleReaction(ctx context.Context, userUUID string, messageID uuid.UUID, value string) (*model.ToggleResult, error)
	CreateOrGetConversation(ctx context.Context, userUUID string, workspaceID, otherMemberID uuid.UUID) (uuid.UUID, error)
}

type Validator interface {
	ValidateSendMessage(in *model.NewMessage) error
	ValidateUpdateMessage(req *api.UpdateMessageRequest) error
	ValidateToggleReaction(req *api.ToggleReactionRequest) error
	ValidateCreateConversation(req *api.CreateConversationRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID string, scope model.Scope) (string, int64, error)
}
