package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const PlaceholderAuthorName = "Member"

type ScopeKind string

const (
	ScopeChannel      ScopeKind = "channel"
	ScopeConversation ScopeKind = "conversation"
	ScopeThread       ScopeKind = "thread"
)

// Scope identifies one feed: a channel, a direct conversation or the replies
// of a single root message.
type Scope struct {
	Kind ScopeKind
	ID   uuid.UUID
}

// Key is the name of the scope in the version store and in Centrifugo.
func (s Scope) Key() string {
	return string(s.Kind) + ":" + s.ID.String()
}

// ProfilesVersionKey counts author name and avatar changes. They show up in
// every feed, so every feed tag includes it.
const ProfilesVersionKey = "profiles"

// FeedVersion is everything a rendered page depends on besides its rows:
// the feed counter, the profile counter and the generation of presigned links.
type FeedVersion struct {
	Feed      int64
	Profiles  int64
	LinkEpoch int64
}

func (v FeedVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Feed, v.Profiles, v.LinkEpoch)
}

type FeedIndex string

const (
	IndexByChannelParent      FeedIndex = "messages_by_channel_id_parent_message_id"
	IndexByConversationParent FeedIndex = "messages_by_conversation_id_parent_message_id"
	IndexByParentMessage      FeedIndex = "messages_by_parent_message_id"
)

// FeedFilter is the lookup index a scope resolves to plus the key for it.
// The channel and conversation indexes only hold root messages; the parent
// index holds the replies of one root.
type FeedFilter struct {
	Index           FeedIndex
	ChannelID       *uuid.UUID
	ConversationID  *uuid.UUID
	ParentMessageID *uuid.UUID
}

// Cursor is the position of the oldest message already delivered. Ties on
// CreatedAt are broken by ID so the walk never skips or repeats a row.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type PageRequest struct {
	ChannelID       *uuid.UUID
	ConversationID  *uuid.UUID
	ParentMessageID *uuid.UUID
	Cursor          string
	Limit           uint64
}

type Page struct {
	Messages []EnrichedMessage
	Cursor   string
	HasMore  bool
}

type Author struct {
	MemberID uuid.UUID
	UserID   *uuid.UUID
	Name     string
	Image    *string
}

// ThreadSummary is set only for root messages that have at least one reply.
type ThreadSummary struct {
	ReplyCount           int
	LastReplyAt          time.Time
	LastReplyAuthorImage *string
}

type EnrichedMessage struct {
	Message
	ImageURL  *string
	Author    Author
	Reactions []ReactionGroup
	Thread    *ThreadSummary
}
