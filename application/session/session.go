package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	redisrepo "github.com/muhammadheryan/gadgetfix/repository/redis"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

type SessionApp interface {
	Issue(ctx context.Context, userID uint64, role constant.Role) (string, error)
	Verify(ctx context.Context, tokenString string) (*model.Actor, error)
	Revoke(ctx context.Context, tokenString string) error
}

// Claims is the signed payload of a session token.
type Claims struct {
	Role constant.Role `json:"role"`
	jwt.RegisteredClaims
}

type sessionAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
	now       func() time.Time
}

func NewSessionApp(config *config.Config, redisRepo redisrepo.Repository) SessionApp {
	return &sessionAppImpl{config: config, redisRepo: redisRepo, now: time.Now}
}

// Issue signs a token for the account and records its session id in Redis.
func (s *sessionAppImpl) Issue(ctx context.Context, userID uint64, role constant.Role) (string, error) {
	token, jti, err := s.generateJWT(userID, role)
	if err != nil {
		logger.Error("[Issue] err generateJWT", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, userID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Issue] err SetSession", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return token, nil
}

func (s *sessionAppImpl) Verify(ctx context.Context, tokenString string) (*model.Actor, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		logger.Debug("[Verify] rejected token", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if !constant.ValidRoles[claims.Role] {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil || sessionUserID != userID {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return &model.Actor{ID: userID, Role: claims.Role}, nil
}

// Revoke ends the session behind a token; unusable tokens are ignored.
func (s *sessionAppImpl) Revoke(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Revoke] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *sessionAppImpl) parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("empty token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the account
func (s *sessionAppImpl) generateJWT(userID uint64, role constant.Role) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
