package service

import (
	"context"
	"fmt"

	"github.com/s21platform/team-chat-service/internal/model"
	"github.com/s21platform/team-chat-service/internal/pkg/cursor"
)

func (s *Service) pageLimit(requested uint64) uint64 {
	switch {
	case requested == 0:
		return s.pageSize
	case requested > s.maxPageSize:
		return s.maxPageSize
	default:
		return requested
	}
}

// fetchPage walks the scope index newest-first starting strictly below the
// cursor. One extra row is requested to learn whether an older page exists.
func (s *Service) fetchPage(ctx context.Context, filter model.FeedFilter, token string, requested uint64) (model.MessageList, string, bool, error) {
	before, err := cursor.Decode(token)
	if err != nil {
		return nil, "", false, fmt.Errorf("%w: %v", model.ErrInvalidCursor, err)
	}

	limit := s.pageLimit(requested)

	messages, err := s.repository.GetMessages(ctx, filter, before, limit+1)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to get messages: %w", err)
	}

	hasMore := uint64(len(messages)) > limit
	if hasMore {
		messages = messages[:limit]
	}

	next := token
	if len(messages) > 0 {
		oldest := messages[len(messages)-1]
		next = cursor.Encode(model.Cursor{CreatedAt: oldest.CreatedAt, ID: oldest.ID})
	}

	return messages, next, hasMore, nil
}
