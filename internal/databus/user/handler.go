package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	"github.com/s21platform/team-chat-service/internal/model"
)

type Handler struct {
	dbR      DBRepo
	versions VersionStore
}

func New(dbR DBRepo, versions VersionStore) *Handler {
	return &Handler{dbR: dbR, versions: versions}
}

// Handler keeps the local copy of author names and avatars in sync with the
// user service. Malformed events are logged and skipped.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserProfileUpdate")

	var msg model.UserProfileUpdate
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update: %v", err))
		return nil
	}

	userID, err := uuid.Parse(msg.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid user uuid %q: %v", msg.UserID, err))
		return nil
	}

	if msg.Name == nil && msg.Image == nil {
		return nil
	}

	if err := h.dbR.UpsertUserProfile(ctx, userID, msg.Name, msg.Image); err != nil {
		logger.Error(fmt.Sprintf("failed to update profile of %s: %v", userID, err))
		return fmt.Errorf("failed to update profile: %v", err)
	}

	if _, err := h.versions.Incr(ctx, model.ProfilesVersionKey); err != nil {
		logger.Warn(fmt.Sprintf("failed to bump profiles version: %v", err))
	}

	return nil
}
