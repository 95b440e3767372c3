package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/metrics"
	"github.com/s21platform/team-chat-service/internal/model"
)

// enrich runs the per-message lookups concurrently and keeps the input order.
func (s *Service) enrich(ctx context.Context, messages model.MessageList) ([]model.EnrichedMessage, error) {
	result := make([]model.EnrichedMessage, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range messages {
		g.Go(func() error {
			result[i] = s.enrichMessage(gctx, &messages[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enrichment interrupted: %w", err)
	}

	return result, nil
}

func (s *Service) enrichMessage(ctx context.Context, m *model.Message) model.EnrichedMessage {
	enriched := model.EnrichedMessage{
		Message:   *m,
		Author:    s.resolveAuthor(ctx, m.MemberID),
		Reactions: s.reactionGroups(ctx, m.ID),
	}

	if !m.IsReply() {
		enriched.Thread = s.threadSummary(ctx, m.ID)
	}

	if m.Image != nil {
		enriched.ImageURL = s.resolveImage(ctx, *m.Image)
	}

	return enriched
}

// resolveAuthor never fails: a vanished member or user yields the placeholder.
func (s *Service) resolveAuthor(ctx context.Context, memberID uuid.UUID) model.Author {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	author := model.Author{
		MemberID: memberID,
		Name:     model.PlaceholderAuthorName,
	}

	member, err := s.repository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			metrics.DanglingReference("member")
		}
		logger.Warn(fmt.Sprintf("failed to resolve author member %s: %v", memberID, err))
		return author
	}

	userID := member.UserID
	author.UserID = &userID

	user, err := s.repository.GetUser(ctx, member.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			metrics.DanglingReference("user")
		}
		logger.Warn(fmt.Sprintf("failed to resolve author user %s: %v", member.UserID, err))
		return author
	}

	author.Name = user.Name
	author.Image = user.Image

	return author
}

func (s *Service) reactionGroups(ctx context.Context, messageID uuid.UUID) []model.ReactionGroup {
	reactions, err := s.repository.GetReactions(ctx, messageID)
	if err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to get reactions for message %s: %v", messageID, err))
		return []model.ReactionGroup{}
	}

	return groupReactions(reactions)
}

// groupReactions groups by value in first-seen order. Count is the number of
// distinct members in the group.
func groupReactions(reactions model.ReactionList) []model.ReactionGroup {
	groups := make([]model.ReactionGroup, 0)
	index := make(map[string]int)
	seen := make(map[string]map[uuid.UUID]struct{})

	for _, r := range reactions {
		i, ok := index[r.Value]
		if !ok {
			i = len(groups)
			index[r.Value] = i
			seen[r.Value] = make(map[uuid.UUID]struct{})
			groups = append(groups, model.ReactionGroup{Value: r.Value, MemberIDs: []uuid.UUID{}})
		}

		if _, dup := seen[r.Value][r.MemberID]; dup {
			continue
		}
		seen[r.Value][r.MemberID] = struct{}{}

		groups[i].MemberIDs = append(groups[i].MemberIDs, r.MemberID)
		groups[i].Count++
	}

	return groups
}

// threadSummary returns nil when the message has no replies.
func (s *Service) threadSummary(ctx context.Context, messageID uuid.UUID) *model.ThreadSummary {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	count, err := s.repository.CountReplies(ctx, messageID)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to count replies of %s: %v", messageID, err))
		return nil
	}
	if count == 0 {
		return nil
	}

	last, err := s.repository.GetLastReply(ctx, messageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			metrics.DanglingReference("reply")
		}
		logger.Warn(fmt.Sprintf("failed to get last reply of %s: %v", messageID, err))
		return nil
	}

	return &model.ThreadSummary{
		ReplyCount:           count,
		LastReplyAt:          last.CreatedAt,
		LastReplyAuthorImage: s.resolveAuthor(ctx, last.MemberID).Image,
	}
}

func (s *Service) resolveImage(ctx context.Context, key string) *string {
	url, err := s.storage.URL(ctx, key)
	if err != nil {
		metrics.AttachmentFailure("url")
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("failed to resolve attachment %s: %v", key, err))
		return nil
	}

	return &url
}
