package auth

import (
	"fmt"
	"time"

	"staybook/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// TokenManager issues and verifies bearer tokens.
type TokenManager struct {
	Secret    []byte
	Blacklist *Blacklist
}

// Claims carried by a staybook token.
type Claims struct {
	TokenID string
	UserID  int64
	IsStaff bool
	Expires time.Time
}

// Issue signs a token for the given user.
func (m TokenManager) Issue(userID int64, isStaff bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":      uuid.NewString(),
		"user_id":  userID,
		"is_staff": isStaff,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(m.Secret)
}

// Verify parses and validates a token, rejecting revoked ones.
func (m TokenManager) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, domain.PermissionError{Msg: "invalid or expired token", Err: err}
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, domain.PermissionError{Msg: "invalid token claims"}
	}

	var claims Claims
	if jti, ok := mapClaims["jti"].(string); ok {
		claims.TokenID = jti
	}
	if id, ok := mapClaims["user_id"].(float64); ok {
		claims.UserID = int64(id)
	}
	if staff, ok := mapClaims["is_staff"].(bool); ok {
		claims.IsStaff = staff
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Expires = time.Unix(int64(exp), 0)
	}
	if claims.UserID <= 0 {
		return Claims{}, domain.PermissionError{Msg: "invalid token claims"}
	}

	if m.Blacklist != nil && m.Blacklist.IsRevoked(claims.TokenID) {
		return Claims{}, domain.PermissionError{Msg: "token has been revoked"}
	}

	return claims, nil
}

// Revoke blacklists the token until its natural expiry.
func (m TokenManager) Revoke(claims Claims) {
	if m.Blacklist == nil || claims.TokenID == "" {
		return
	}
	ttl := time.Until(claims.Expires)
	if ttl <= 0 {
		return
	}
	m.Blacklist.Revoke(claims.TokenID, ttl)
}
