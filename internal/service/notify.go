package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/model"
)

type feedChange struct {
	scope     model.Scope
	eventType string
	messageID uuid.UUID
}

// affectedFeeds lists every feed whose pages change when m changes. A reply
// changes its thread and the thread summary of its root in the container feed.
func affectedFeeds(eventType string, m *model.Message) []feedChange {
	var changes []feedChange

	container, ok := containerScope(m)

	if m.ParentMessageID == nil {
		if ok {
			changes = append(changes, feedChange{scope: container, eventType: eventType, messageID: m.ID})
		}
		return changes
	}

	changes = append(changes, feedChange{
		scope:     model.Scope{Kind: model.ScopeThread, ID: *m.ParentMessageID},
		eventType: eventType,
		messageID: m.ID,
	})
	if ok {
		changes = append(changes, feedChange{scope: container, eventType: model.FeedEventThreadUpdated, messageID: *m.ParentMessageID})
	}

	return changes
}

// notify bumps feed versions and publishes change events. Failures are logged
// only; the mutation has already been committed.
func (s *Service) notify(ctx context.Context, eventType string, m *model.Message) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for _, change := range affectedFeeds(eventType, m) {
		key := change.scope.Key()

		version, err := s.versions.Incr(ctx, key)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to bump version of %s: %v", key, err))
		}

		event := model.FeedEvent{
			Type:      change.eventType,
			Scope:     key,
			MessageID: change.messageID,
			Version:   version,
		}

		if err := s.publisher.Publish(ctx, key, event); err != nil {
			logger.Error(fmt.Sprintf("failed to publish %s to %s: %v", change.eventType, key, err))
		}
	}
}
