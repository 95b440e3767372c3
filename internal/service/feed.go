package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/metrics"
	"github.com/s21platform/team-chat-service/internal/model"
)

// GetMessagePage returns one newest-first page of the requested feed.
func (s *Service) GetMessagePage(ctx context.Context, userUUID string, req model.PageRequest) (*model.Page, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("GetMessagePage")

	scope, filter, err := ResolveScope(req)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizeScope(ctx, userUUID, scope); err != nil {
		return nil, err
	}

	start := time.Now()

	messages, next, hasMore, err := s.fetchPage(ctx, filter, req.Cursor, req.Limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch page of %s: %v", scope.Key(), err))
		return nil, err
	}

	enriched, err := s.enrich(ctx, messages)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to enrich page of %s: %v", scope.Key(), err))
		return nil, err
	}

	metrics.ObservePage(string(scope.Kind), len(enriched), time.Since(start))

	return &model.Page{
		Messages: enriched,
		Cursor:   next,
		HasMore:  hasMore,
	}, nil
}

// AuthorizeFeed resolves the request scope and admits the caller to it.
func (s *Service) AuthorizeFeed(ctx context.Context, userUUID string, req model.PageRequest) (model.Scope, error) {
	scope, _, err := ResolveScope(req)
	if err != nil {
		return model.Scope{}, err
	}

	if _, err := s.authorizeScope(ctx, userUUID, scope); err != nil {
		return model.Scope{}, err
	}

	return scope, nil
}

// FeedVersion changes whenever a page of the scope would render differently:
// a mutation in the scope, a profile update or a new presigned link
// generation. Callers must run AuthorizeFeed first.
func (s *Service) FeedVersion(ctx context.Context, scope model.Scope) (model.FeedVersion, error) {
	feed, err := s.versions.Get(ctx, scope.Key())
	if err != nil {
		return model.FeedVersion{}, fmt.Errorf("failed to get feed version: %w", err)
	}

	profiles, err := s.versions.Get(ctx, model.ProfilesVersionKey)
	if err != nil {
		return model.FeedVersion{}, fmt.Errorf("failed to get profiles version: %w", err)
	}

	return model.FeedVersion{
		Feed:      feed,
		Profiles:  profiles,
		LinkEpoch: s.storage.LinkEpoch(s.now()),
	}, nil
}

func (s *Service) GetMessageByID(ctx context.Context, userUUID string, messageID uuid.UUID) (*model.EnrichedMessage, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("GetMessageByID")

	userID, err := callerID(userUUID)
	if err != nil {
		return nil, err
	}

	message, err := s.repository.GetMessage(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	if _, err := s.authorize(ctx, userID, message.WorkspaceID); err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, model.MessageList{*message})
	if err != nil {
		return nil, err
	}

	return &enriched[0], nil
}
