package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/team-chat-service/internal/model"
)

const tokenTTL = 30 * time.Minute

// Generator issues Centrifugo connection and feed subscription tokens.
type Generator struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (g *Generator) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

func (g *Generator) registered(userID string) (jwt.RegisteredClaims, time.Time) {
	now := g.now()
	expiresAt := now.Add(tokenTTL)

	return jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}, expiresAt
}

func (g *Generator) GenerateConnectToken(userID string) (string, int64, error) {
	registered, expiresAt := g.registered(userID)

	token, err := g.sign(model.CentrifugoConnectClaims{RegisteredClaims: registered})
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign connect JWT token: %w", err)
	}

	return token, expiresAt.Unix(), nil
}

// GenerateSubscribeToken grants userID the live channel of one feed scope.
// The caller must have authorized the scope already.
func (g *Generator) GenerateSubscribeToken(userID string, scope model.Scope) (string, int64, error) {
	registered, expiresAt := g.registered(userID)

	claims := model.CentrifugoSubscribeClaims{
		RegisteredClaims: registered,
		Channel:          scope.Key(),
		UserID:           userID,
		Scope:            string(scope.Kind),
	}

	token, err := g.sign(claims)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign subscribe JWT token: %w", err)
	}

	return token, expiresAt.Unix(), nil
}

func (g *Generator) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return g.secret, nil
}

func (g *Generator) ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CentrifugoConnectClaims{}, g.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connect JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.CentrifugoConnectClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid connect JWT token")
}

func (g *Generator) ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.CentrifugoSubscribeClaims{}, g.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse subscribe JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.CentrifugoSubscribeClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid subscribe JWT token")
}
