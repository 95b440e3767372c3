package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	api "github.com/s21platform/team-chat-service/internal/generated"
	"github.com/s21platform/team-chat-service/internal/model"
)

const (
	MaxBodyLength     = 4000
	MaxReactionLength = 64
	MaxImageSize      = 10 << 20
)

type messageInput struct {
	Body             string `validate:"required_if=HasImage false,runemax=4000"`
	HasImage         bool
	ImageContentType string `validate:"required_if=HasImage true,omitempty,oneof=image/png image/jpeg image/gif image/webp"`
	ImageSize        int64  `validate:"gte=0,lte=10485760"`
}

type bodyInput struct {
	Body string `validate:"required,runemax=4000"`
}

type reactionInput struct {
	Value string `validate:"required,runemax=64"`
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	if err := v.RegisterValidation("runemax", validateRuneMax); err != nil {
		panic(fmt.Sprintf("failed to register runemax validation: %v", err))
	}

	return &Validator{validate: v}
}

// validateRuneMax bounds the length in characters rather than bytes.
func validateRuneMax(fl validator.FieldLevel) bool {
	var limit int
	if _, err := fmt.Sscan(fl.Param(), &limit); err != nil {
		return false
	}
	return utf8.RuneCountInString(fl.Field().String()) <= limit
}

func (v *Validator) check(in interface{}) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	reasons := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		reasons = append(reasons, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return errors.New(strings.Join(reasons, "; "))
}

// ValidateSendMessage accepts a blank body only when an image is attached.
func (v *Validator) ValidateSendMessage(in *model.NewMessage) error {
	input := messageInput{Body: strings.TrimSpace(in.Body)}
	if in.Image != nil {
		input.HasImage = true
		input.ImageContentType = in.Image.ContentType
		input.ImageSize = in.Image.Size
	}

	return v.check(input)
}

func (v *Validator) ValidateUpdateMessage(req *api.UpdateMessageRequest) error {
	return v.check(bodyInput{Body: strings.TrimSpace(req.Body)})
}

// ValidateToggleReaction accepts a single emoji or shortcode token.
func (v *Validator) ValidateToggleReaction(req *api.ToggleReactionRequest) error {
	if strings.ContainsAny(req.Value, " \t\r\n") {
		return fmt.Errorf("value must not contain whitespace")
	}

	return v.check(reactionInput{Value: req.Value})
}

func (v *Validator) ValidateCreateConversation(req *api.CreateConversationRequest) error {
	if uuid.UUID(req.MemberId) == uuid.Nil {
		return fmt.Errorf("member_id is required")
	}

	return nil
}
