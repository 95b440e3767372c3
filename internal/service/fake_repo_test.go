package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/team-chat-service/internal/model"
)

// memRepo is an in-memory DBRepo with the same ordering and cursor rules as
// the postgres repository.
type memRepo struct {
	mu            sync.Mutex
	members       map[uuid.UUID]model.Member
	users         map[uuid.UUID]model.User
	channels      map[uuid.UUID]model.Channel
	conversations map[uuid.UUID]model.Conversation
	messages      map[uuid.UUID]model.Message
	deleted       map[uuid.UUID]bool
	reactions     []model.Reaction
}

func newMemRepo() *memRepo {
	return &memRepo{
		members:       make(map[uuid.UUID]model.Member),
		users:         make(map[uuid.UUID]model.User),
		channels:      make(map[uuid.UUID]model.Channel),
		conversations: make(map[uuid.UUID]model.Conversation),
		messages:      make(map[uuid.UUID]model.Message),
		deleted:       make(map[uuid.UUID]bool),
	}
}

func (r *memRepo) GetMember(_ context.Context, workspaceID, userID uuid.UUID) (*model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.WorkspaceID == workspaceID && m.UserID == userID {
			member := m
			return &member, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *memRepo) GetMemberByID(_ context.Context, memberID uuid.UUID) (*model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[memberID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &m, nil
}

func (r *memRepo) GetUser(_ context.Context, userID uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &u, nil
}

func (r *memRepo) GetChannel(_ context.Context, channelID uuid.UUID) (*model.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.channels[channelID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &c, nil
}

func (r *memRepo) GetConversation(_ context.Context, conversationID uuid.UUID) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[conversationID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &c, nil
}

func (r *memRepo) FindConversation(_ context.Context, workspaceID, memberOneID, memberTwoID uuid.UUID) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.conversations {
		if c.WorkspaceID != workspaceID {
			continue
		}
		if (c.MemberOneID == memberOneID && c.MemberTwoID == memberTwoID) ||
			(c.MemberOneID == memberTwoID && c.MemberTwoID == memberOneID) {
			conversation := c
			return &conversation, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *memRepo) CreateConversation(_ context.Context, conversation *model.Conversation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.conversations {
		if c.WorkspaceID == conversation.WorkspaceID && c.MemberOneID == conversation.MemberOneID && c.MemberTwoID == conversation.MemberTwoID {
			return false, nil
		}
	}
	r.conversations[conversation.ID] = *conversation
	return true, nil
}

func (r *memRepo) GetMessage(_ context.Context, messageID uuid.UUID) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[messageID]
	if !ok || r.deleted[messageID] {
		return nil, model.ErrNotFound
	}
	return &m, nil
}

func (r *memRepo) GetMessages(_ context.Context, filter model.FeedFilter, before *model.Cursor, limit uint64) (model.MessageList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list model.MessageList
	for id, m := range r.messages {
		if r.deleted[id] || !matchesFilter(filter, &m) {
			continue
		}
		if before != nil && !olderThan(*before, &m) {
			continue
		}
		list = append(list, m)
	}

	sortNewestFirst(list)

	if uint64(len(list)) > limit {
		list = list[:limit]
	}
	return list, nil
}

// matchesFilter is what the partial index behind filter.Index would hold.
func matchesFilter(filter model.FeedFilter, m *model.Message) bool {
	switch filter.Index {
	case model.IndexByChannelParent:
		return m.ParentMessageID == nil && m.ChannelID != nil && *m.ChannelID == *filter.ChannelID
	case model.IndexByConversationParent:
		return m.ParentMessageID == nil && m.ConversationID != nil && *m.ConversationID == *filter.ConversationID
	case model.IndexByParentMessage:
		return m.ParentMessageID != nil && *m.ParentMessageID == *filter.ParentMessageID
	default:
		return false
	}
}

// olderThan reports whether m lies strictly below the cursor position.
func olderThan(c model.Cursor, m *model.Message) bool {
	if !m.CreatedAt.Equal(c.CreatedAt) {
		return m.CreatedAt.Before(c.CreatedAt)
	}
	return m.ID.String() < c.ID.String()
}

func sortNewestFirst(list model.MessageList) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID.String() > list[j].ID.String()
	})
}

func (r *memRepo) SaveMessage(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages[message.ID] = *message
	return nil
}

func (r *memRepo) UpdateMessageBody(_ context.Context, messageID uuid.UUID, body string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[messageID]
	if !ok {
		return model.ErrNotFound
	}
	m.Body = body
	m.UpdatedAt = &updatedAt
	r.messages[messageID] = m
	return nil
}

func (r *memRepo) RemoveMessage(_ context.Context, messageID uuid.UUID, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleted[messageID] = true
	return nil
}

func (r *memRepo) replies(parentMessageID uuid.UUID) model.MessageList {
	var list model.MessageList
	for id, m := range r.messages {
		if !r.deleted[id] && m.ParentMessageID != nil && *m.ParentMessageID == parentMessageID {
			list = append(list, m)
		}
	}
	sortNewestFirst(list)
	return list
}

func (r *memRepo) CountReplies(_ context.Context, parentMessageID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.replies(parentMessageID)), nil
}

func (r *memRepo) GetLastReply(_ context.Context, parentMessageID uuid.UUID) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.replies(parentMessageID)
	if len(list) == 0 {
		return nil, model.ErrNotFound
	}
	return &list[0], nil
}

func (r *memRepo) GetReactions(_ context.Context, messageID uuid.UUID) (model.ReactionList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list model.ReactionList
	for _, reaction := range r.reactions {
		if reaction.MessageID == messageID {
			list = append(list, reaction)
		}
	}
	return list, nil
}

func (r *memRepo) DeleteReaction(_ context.Context, messageID, memberID uuid.UUID, value string) (*uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, reaction := range r.reactions {
		if reaction.MessageID == messageID && reaction.MemberID == memberID && reaction.Value == value {
			r.reactions = append(r.reactions[:i], r.reactions[i+1:]...)
			id := reaction.ID
			return &id, nil
		}
	}
	return nil, nil
}

func (r *memRepo) InsertReaction(_ context.Context, reaction *model.Reaction) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reactions {
		if existing.MessageID == reaction.MessageID && existing.MemberID == reaction.MemberID && existing.Value == reaction.Value {
			return false, nil
		}
	}
	r.reactions = append(r.reactions, *reaction)
	return true, nil
}

func (r *memRepo) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	return cb(ctx)
}
