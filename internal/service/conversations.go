package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/model"
	"github.com/s21platform/team-chat-service/internal/pkg/tx"
)

// CreateOrGetConversation returns the direct conversation between the caller
// and otherMemberID, creating it on first use. Either side gets the same id.
func (s *Service) CreateOrGetConversation(ctx context.Context, userUUID string, workspaceID, otherMemberID uuid.UUID) (uuid.UUID, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("CreateOrGetConversation")

	userID, err := callerID(userUUID)
	if err != nil {
		return uuid.Nil, err
	}

	current, err := s.authorize(ctx, userID, workspaceID)
	if err != nil {
		return uuid.Nil, err
	}

	other, err := s.repository.GetMemberByID(ctx, otherMemberID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get member: %w", err)
	}
	if other.WorkspaceID != workspaceID {
		return uuid.Nil, fmt.Errorf("%w: member %s is not in workspace %s", model.ErrNotFound, otherMemberID, workspaceID)
	}

	one, two := model.OrderedPair(current.ID, other.ID)

	var conversationID uuid.UUID
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		existing, err := s.repository.FindConversation(ctx, workspaceID, one, two)
		if err == nil {
			conversationID = existing.ID
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to find conversation: %w", err)
		}

		conversation := &model.Conversation{
			ID:          uuid.New(),
			WorkspaceID: workspaceID,
			MemberOneID: one,
			MemberTwoID: two,
		}
		created, err := s.repository.CreateConversation(ctx, conversation)
		if err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}
		if created {
			conversationID = conversation.ID
			return nil
		}

		existing, err = s.repository.FindConversation(ctx, workspaceID, one, two)
		if err != nil {
			return fmt.Errorf("failed to find concurrently created conversation: %w", err)
		}
		conversationID = existing.ID
		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create or get conversation: %v", err))
		return uuid.Nil, err
	}

	return conversationID, nil
}
