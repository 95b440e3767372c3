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

const maxToggleAttempts = 3

var errToggleContention = errors.New("reaction changed concurrently")

// ToggleReaction removes the caller's reaction with this value if present and
// adds it otherwise. Both steps are conditional writes, so a concurrent toggle
// on the same key is observed instead of duplicated.
func (s *Service) ToggleReaction(ctx context.Context, userUUID string, messageID uuid.UUID, value string) (*model.ToggleResult, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ToggleReaction")

	userID, err := callerID(userUUID)
	if err != nil {
		return nil, err
	}

	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	member, err := s.authorize(ctx, userID, message.WorkspaceID)
	if err != nil {
		return nil, err
	}

	var result *model.ToggleResult
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		for attempt := 0; attempt < maxToggleAttempts; attempt++ {
			deletedID, err := s.repository.DeleteReaction(ctx, message.ID, member.ID, value)
			if err != nil {
				return fmt.Errorf("failed to delete reaction: %w", err)
			}
			if deletedID != nil {
				result = &model.ToggleResult{ReactionID: *deletedID, Added: false}
				return nil
			}

			reaction := &model.Reaction{
				ID:          uuid.New(),
				WorkspaceID: message.WorkspaceID,
				MessageID:   message.ID,
				MemberID:    member.ID,
				Value:       value,
				CreatedAt:   s.now(),
			}
			inserted, err := s.repository.InsertReaction(ctx, reaction)
			if err != nil {
				return fmt.Errorf("failed to insert reaction: %w", err)
			}
			if inserted {
				result = &model.ToggleResult{ReactionID: reaction.ID, Added: true}
				return nil
			}
		}
		return errToggleContention
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to toggle reaction: %v", err))
		return nil, err
	}

	s.notify(ctx, model.FeedEventReactionToggle, message)

	return result, nil
}
