package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	FeedEventMessageCreated = "message_created"
	FeedEventMessageUpdated = "message_updated"
	FeedEventMessageRemoved = "message_removed"
	FeedEventReactionToggle = "reaction_toggled"
	FeedEventThreadUpdated  = "thread_updated"
)

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string    `json:"channel"`
	Data    FeedEvent `json:"data"`
}

// FeedEvent tells subscribers of a scope which message changed; clients
// refetch the affected page.
type FeedEvent struct {
	Type      string    `json:"type"`
	Scope     string    `json:"scope"`
	MessageID uuid.UUID `json:"message_id"`
	Version   int64     `json:"version"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID string `json:"user_id"`
	Scope  string `json:"scope"`
}
