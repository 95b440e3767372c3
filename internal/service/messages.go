package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/metrics"
	"github.com/s21platform/team-chat-service/internal/model"
)

// placement resolves where a new message goes. A reply inherits the
// container of its parent; the parent must be a root message.
func (s *Service) placement(ctx context.Context, in *model.NewMessage) (*model.Message, error) {
	if in.ParentMessageID != nil {
		parent, err := s.repository.GetMessage(ctx, *in.ParentMessageID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent message: %w", err)
		}
		if parent.IsReply() {
			return nil, fmt.Errorf("%w: replies cannot have replies", model.ErrInvalidScope)
		}
		if in.ChannelID != nil && (parent.ChannelID == nil || *parent.ChannelID != *in.ChannelID) {
			return nil, fmt.Errorf("%w: parent message is not in channel %s", model.ErrInvalidScope, *in.ChannelID)
		}
		if in.ConversationID != nil && (parent.ConversationID == nil || *parent.ConversationID != *in.ConversationID) {
			return nil, fmt.Errorf("%w: parent message is not in conversation %s", model.ErrInvalidScope, *in.ConversationID)
		}

		parentID := parent.ID
		return &model.Message{
			WorkspaceID:     parent.WorkspaceID,
			ChannelID:       parent.ChannelID,
			ConversationID:  parent.ConversationID,
			ParentMessageID: &parentID,
		}, nil
	}

	switch {
	case in.ChannelID != nil && in.ConversationID != nil, in.ChannelID == nil && in.ConversationID == nil:
		return nil, fmt.Errorf("%w: expected exactly one of channel_id, conversation_id", model.ErrInvalidScope)
	case in.ChannelID != nil:
		channel, err := s.repository.GetChannel(ctx, *in.ChannelID)
		if err != nil {
			return nil, fmt.Errorf("failed to get channel: %w", err)
		}
		channelID := channel.ID
		return &model.Message{WorkspaceID: channel.WorkspaceID, ChannelID: &channelID}, nil
	default:
		conversation, err := s.repository.GetConversation(ctx, *in.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get conversation: %w", err)
		}
		conversationID := conversation.ID
		return &model.Message{WorkspaceID: conversation.WorkspaceID, ConversationID: &conversationID}, nil
	}
}

// SendMessage uploads the attachment first and writes the message only after
// the upload succeeded, so no row ever references a missing object.
func (s *Service) SendMessage(ctx context.Context, userUUID string, in *model.NewMessage) (*model.Message, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SendMessage")

	userID, err := callerID(userUUID)
	if err != nil {
		return nil, err
	}

	message, err := s.placement(ctx, in)
	if err != nil {
		return nil, err
	}

	if in.WorkspaceID != nil && *in.WorkspaceID != message.WorkspaceID {
		return nil, fmt.Errorf("%w: target does not belong to workspace %s", model.ErrInvalidScope, *in.WorkspaceID)
	}

	member, err := s.authorize(ctx, userID, message.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		key, err := s.storage.Upload(ctx, in.Image)
		if err != nil {
			metrics.AttachmentFailure("upload")
			logger.Error(fmt.Sprintf("failed to upload attachment: %v", err))
			return nil, fmt.Errorf("%w: %v", model.ErrUploadFailure, err)
		}
		message.Image = &key
	}

	message.ID = uuid.New()
	message.MemberID = member.ID
	message.Body = in.Body
	message.CreatedAt = s.now()

	if err := s.repository.SaveMessage(ctx, message); err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		if message.Image != nil {
			if rmErr := s.storage.Remove(ctx, *message.Image); rmErr != nil {
				logger.Error(fmt.Sprintf("failed to remove orphaned attachment %s: %v", *message.Image, rmErr))
			}
		}
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.notify(ctx, model.FeedEventMessageCreated, message)

	return message, nil
}

// authoredMessage loads a message the caller is allowed to change.
func (s *Service) authoredMessage(ctx context.Context, userUUID string, messageID uuid.UUID) (*model.Message, error) {
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

	if member.ID != message.MemberID {
		return nil, fmt.Errorf("%w: only the author can change message %s", model.ErrForbidden, messageID)
	}

	return message, nil
}

func (s *Service) UpdateMessage(ctx context.Context, userUUID string, messageID uuid.UUID, body string) (*model.Message, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UpdateMessage")

	message, err := s.authoredMessage(ctx, userUUID, messageID)
	if err != nil {
		return nil, err
	}

	updatedAt := s.now()
	if err := s.repository.UpdateMessageBody(ctx, messageID, body, updatedAt); err != nil {
		logger.Error(fmt.Sprintf("failed to update message: %v", err))
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	message.Body = body
	message.UpdatedAt = &updatedAt

	s.notify(ctx, model.FeedEventMessageUpdated, message)

	return message, nil
}

func (s *Service) RemoveMessage(ctx context.Context, userUUID string, messageID uuid.UUID) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("RemoveMessage")

	message, err := s.authoredMessage(ctx, userUUID, messageID)
	if err != nil {
		return err
	}

	if err := s.repository.RemoveMessage(ctx, messageID, s.now()); err != nil {
		logger.Error(fmt.Sprintf("failed to remove message: %v", err))
		return fmt.Errorf("failed to remove message: %w", err)
	}

	s.notify(ctx, model.FeedEventMessageRemoved, message)

	return nil
}
