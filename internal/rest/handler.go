package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/team-chat-service/internal/config"
	api "github.com/s21platform/team-chat-service/internal/generated"
	"github.com/s21platform/team-chat-service/internal/model"
	"github.com/s21platform/team-chat-service/internal/pkg/validator"
)

const multipartMemory = 1 << 20

type Handler struct {
	service      FeedService
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(service FeedService, validator Validator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		service:      service,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request, params api.GetMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	userUUID := callerUUID(r)

	req := model.PageRequest{
		ChannelID:       params.ChannelId,
		ConversationID:  params.ConversationId,
		ParentMessageID: params.ParentMessageId,
	}
	if params.Cursor != nil {
		req.Cursor = *params.Cursor
	}
	if params.Limit != nil {
		if *params.Limit < 1 {
			h.writeError(w, "limit must be positive", http.StatusBadRequest)
			return
		}
		req.Limit = uint64(*params.Limit)
	}

	scope, err := h.service.AuthorizeFeed(r.Context(), userUUID, req)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to authorize feed: %v", err))
		h.writeServiceError(w, err)
		return
	}

	// The version is read before the page so a concurrent change can only
	// make the tag stale, never hide new data behind it.
	etag := ""
	if version, err := h.service.FeedVersion(r.Context(), scope); err != nil {
		logger.Warn(fmt.Sprintf("failed to get feed version of %s: %v", scope.Key(), err))
	} else {
		etag = feedETag(scope, version, req)
	}

	if etag != "" && params.IfNoneMatch != nil && *params.IfNoneMatch == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	page, err := h.service.GetMessagePage(r.Context(), userUUID, req)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message page: %v", err))
		h.writeServiceError(w, err)
		return
	}

	messages := make([]api.Message, len(page.Messages))
	for i := range page.Messages {
		messages[i] = toAPIMessage(&page.Messages[i])
	}

	if etag != "" {
		w.Header().Set("ETag", etag)
	}

	h.writeJSON(w, api.MessagePage{
		Messages: messages,
		Cursor:   page.Cursor,
		HasMore:  page.HasMore,
	}, http.StatusOK)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request, messageId api.MessageId) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessage")

	message, err := h.service.GetMessageByID(r.Context(), callerUUID(r), messageId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message %s: %v", messageId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, toAPIMessage(message), http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	r.Body = http.MaxBytesReader(w, r.Body, validator.MaxImageSize+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		logger.Error(fmt.Sprintf("failed to parse multipart form: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	in, err := newMessageFromForm(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read message form: %v", err))
		h.writeError(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(in); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message, err := h.service.SendMessage(r.Context(), callerUUID(r), in)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SendMessageResponse{
		MessageId: message.ID,
		CreatedAt: message.CreatedAt,
	}, http.StatusOK)
}

func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request, messageId api.MessageId) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateMessage")

	var req api.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateUpdateMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message, err := h.service.UpdateMessage(r.Context(), callerUUID(r), messageId, req.Body)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update message %s: %v", messageId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.UpdateMessageResponse{
		MessageId: message.ID,
		UpdatedAt: *message.UpdatedAt,
	}, http.StatusOK)
}

func (h *Handler) RemoveMessage(w http.ResponseWriter, r *http.Request, messageId api.MessageId) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveMessage")

	if err := h.service.RemoveMessage(r.Context(), callerUUID(r), messageId); err != nil {
		logger.Error(fmt.Sprintf("failed to remove message %s: %v", messageId, err))
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ToggleReaction(w http.ResponseWriter, r *http.Request, messageId api.MessageId) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ToggleReaction")

	var req api.ToggleReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateToggleReaction(&req); err != nil {
		logger.Error(fmt.Sprintf("reaction validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("reaction validation failed: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.service.ToggleReaction(r.Context(), callerUUID(r), messageId, req.Value)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to toggle reaction on %s: %v", messageId, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.ToggleReactionResponse{
		ReactionId: result.ReactionID,
		Added:      result.Added,
	}, http.StatusOK)
}

func (h *Handler) CreateOrGetConversation(w http.ResponseWriter, r *http.Request, workspaceId uuid.UUID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateOrGetConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateConversation(&req); err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversationID, err := h.service.CreateOrGetConversation(r.Context(), callerUUID(r), workspaceId, req.MemberId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create or get conversation: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.CreateConversationResponse{ConversationId: conversationID}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID := callerUUID(r)
	if _, err := uuid.Parse(userUUID); err != nil {
		logger.Error("failed to get user UUID")
		h.writeServiceError(w, model.ErrUnauthorized)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	h.writeJSON(w, api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request, params api.GetSubscribeTokenParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userUUID := callerUUID(r)

	scope, err := h.service.AuthorizeFeed(r.Context(), userUUID, model.PageRequest{
		ChannelID:       params.ChannelId,
		ConversationID:  params.ConversationId,
		ParentMessageID: params.ParentMessageId,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to authorize feed: %v", err))
		h.writeServiceError(w, err)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, scope)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, feed %s", userUUID, scope.Key()))

	h.writeJSON(w, api.GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   scope.Key(),
	}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

// feedETag identifies one page of one feed at one version. Different pages of
// the same feed get different tags.
func feedETag(scope model.Scope, version model.FeedVersion, req model.PageRequest) string {
	return fmt.Sprintf("\"%s:%s:%s:%d\"", scope.Key(), version, req.Cursor, req.Limit)
}

func callerUUID(r *http.Request) string {
	userUUID, _ := r.Context().Value(config.KeyUUID).(string)
	return userUUID
}

func optionalUUID(r *http.Request, field string) (*uuid.UUID, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid uuid", field)
	}

	return &id, nil
}

func newMessageFromForm(r *http.Request) (*model.NewMessage, error) {
	in := &model.NewMessage{Body: r.FormValue("body")}

	var err error
	if in.WorkspaceID, err = optionalUUID(r, "workspace_id"); err != nil {
		return nil, err
	}
	if in.ChannelID, err = optionalUUID(r, "channel_id"); err != nil {
		return nil, err
	}
	if in.ConversationID, err = optionalUUID(r, "conversation_id"); err != nil {
		return nil, err
	}
	if in.ParentMessageID, err = optionalUUID(r, "parent_message_id"); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %v", err)
	}
	defer file.Close() //nolint:errcheck // .

	data, err := io.ReadAll(io.LimitReader(file, validator.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %v", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	in.Image = &model.Upload{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}

	return in, nil
}

func toAPIMessage(m *model.EnrichedMessage) api.Message {
	reactions := make([]api.ReactionGroup, len(m.Reactions))
	for i, group := range m.Reactions {
		reactions[i] = api.ReactionGroup{
			Value:     group.Value,
			Count:     group.Count,
			MemberIds: group.MemberIDs,
		}
	}

	var thread *api.ThreadSummary
	if m.Thread != nil {
		thread = &api.ThreadSummary{
			ReplyCount:           m.Thread.ReplyCount,
			LastReplyAt:          m.Thread.LastReplyAt,
			LastReplyAuthorImage: m.Thread.LastReplyAuthorImage,
		}
	}

	return api.Message{
		Id:              m.ID,
		WorkspaceId:     m.WorkspaceID,
		ChannelId:       m.ChannelID,
		ConversationId:  m.ConversationID,
		ParentMessageId: m.ParentMessageID,
		Body:            m.Body,
		ImageUrl:        m.ImageURL,
		Author: api.Author{
			MemberId: m.Author.MemberID,
			UserId:   m.Author.UserID,
			Name:     m.Author.Name,
			Image:    m.Author.Image,
		},
		Reactions: reactions,
		Thread:    thread,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrInvalidScope), errors.Is(err, model.ErrInvalidCursor):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUploadFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	h.writeError(w, message, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
