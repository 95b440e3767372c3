package service

import (
	"fmt"

	"github.com/s21platform/team-chat-service/internal/model"
)

// ResolveScope checks that exactly one discriminator is present and maps it
// to the index and predicate the repository walks.
func ResolveScope(req model.PageRequest) (model.Scope, model.FeedFilter, error) {
	supplied := 0
	if req.ChannelID != nil {
		supplied++
	}
	if req.ConversationID != nil {
		supplied++
	}
	if req.ParentMessageID != nil {
		supplied++
	}
	if supplied != 1 {
		return model.Scope{}, model.FeedFilter{}, fmt.Errorf("%w: expected exactly one of channel_id, conversation_id, parent_message_id, got %d", model.ErrInvalidScope, supplied)
	}

	switch {
	case req.ChannelID != nil:
		scope := model.Scope{Kind: model.ScopeChannel, ID: *req.ChannelID}
		return scope, FilterFor(scope), nil
	case req.ConversationID != nil:
		scope := model.Scope{Kind: model.ScopeConversation, ID: *req.ConversationID}
		return scope, FilterFor(scope), nil
	default:
		scope := model.Scope{Kind: model.ScopeThread, ID: *req.ParentMessageID}
		return scope, FilterFor(scope), nil
	}
}

func FilterFor(scope model.Scope) model.FeedFilter {
	id := scope.ID

	switch scope.Kind {
	case model.ScopeChannel:
		return model.FeedFilter{Index: model.IndexByChannelParent, ChannelID: &id}
	case model.ScopeConversation:
		return model.FeedFilter{Index: model.IndexByConversationParent, ConversationID: &id}
	default:
		return model.FeedFilter{Index: model.IndexByParentMessage, ParentMessageID: &id}
	}
}

// containerScope is the channel or conversation feed a message lives in.
func containerScope(m *model.Message) (model.Scope, bool) {
	switch {
	case m.ChannelID != nil:
		return model.Scope{Kind: model.ScopeChannel, ID: *m.ChannelID}, true
	case m.ConversationID != nil:
		return model.Scope{Kind: model.ScopeConversation, ID: *m.ConversationID}, true
	default:
		return model.Scope{}, false
	}
}
