package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/team-chat-service/internal/model"
)

func callerID(userUUID string) (uuid.UUID, error) {
	if userUUID == "" {
		return uuid.Nil, fmt.Errorf("%w: caller is not authenticated", model.ErrUnauthorized)
	}

	id, err := uuid.Parse(userUUID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed caller id", model.ErrUnauthorized)
	}

	return id, nil
}

// authorize resolves the caller's membership in the workspace.
func (s *Service) authorize(ctx context.Context, userID, workspaceID uuid.UUID) (*model.Member, error) {
	member, err := s.repository.GetMember(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: not a member of workspace %s", model.ErrUnauthorized, workspaceID)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (s *Service) scopeWorkspace(ctx context.Context, scope model.Scope) (uuid.UUID, error) {
	switch scope.Kind {
	case model.ScopeChannel:
		channel, err := s.repository.GetChannel(ctx, scope.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to get channel: %w", err)
		}
		return channel.WorkspaceID, nil
	case model.ScopeConversation:
		conversation, err := s.repository.GetConversation(ctx, scope.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to get conversation: %w", err)
		}
		return conversation.WorkspaceID, nil
	case model.ScopeThread:
		parent, err := s.repository.GetMessage(ctx, scope.ID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to get parent message: %w", err)
		}
		return parent.WorkspaceID, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: unknown scope kind %q", model.ErrInvalidScope, scope.Kind)
	}
}

func (s *Service) authorizeScope(ctx context.Context, userUUID string, scope model.Scope) (*model.Member, error) {
	userID, err := callerID(userUUID)
	if err != nil {
		return nil, err
	}

	workspaceID, err := s.scopeWorkspace(ctx, scope)
	if err != nil {
		return nil, err
	}

	return s.authorize(ctx, userID, workspaceID)
}
