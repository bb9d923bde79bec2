package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ResetClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateResetToken creates a signed, expiring password-reset token.
func GenerateResetToken(cfg ResetTokenConfig, userID, email string) (string, error) {
	if cfg.Secret == "" {
		return "", errors.New("reset token secret is not configured")
	}

	expirationTime := time.Now().Add(time.Duration(cfg.ExpiryMinutes) * time.Minute)
	claims := &ResetClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateResetToken verifies the signature and expiry of a reset token.
func ValidateResetToken(cfg ResetTokenConfig, tokenStr string) (*ResetClaims, error) {
	if cfg.Secret == "" {
		return nil, errors.New("reset token secret is not configured")
	}

	claims := &ResetClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse reset token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid reset token")
	}

	return claims, nil
}
