package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSession = errors.New("invalid or expired session")
	ErrSessionRevoked = errors.New("session has been revoked")
)

const (
	sessionKeyPrefix = "session:"
	scanBatchSize    = 100
)

// SessionService issues signed session tokens and keeps a registry of live
// token ids in Redis, so a session can be revoked before its expiry.
type SessionService struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionService(jwtService *jwt.JWTService, redisClient *redis.Client, log *logrus.Logger) *SessionService {
	return &SessionService{
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
	}
}

func sessionKey(userID uint, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", sessionKeyPrefix, userID, tokenID)
}

// Create signs a session token for user and registers it.
func (s *SessionService) Create(ctx context.Context, user *entity.User) (string, error) {
	token, tokenID, err := s.jwtService.GenerateSessionToken(user.ID, user.Email, user.Status.String())
	if err != nil {
		s.log.Warnf("Failed to generate session token: %+v", err)
		return "", err
	}

	if err := s.redisClient.Set(ctx, sessionKey(user.ID, tokenID), "valid", s.jwtService.GetExpiry()).Err(); err != nil {
		s.log.Warnf("Failed to store session in Redis: %+v", err)
		return "", err
	}

	return token, nil
}

// Validate returns the claims of a token that verifies and is still registered.
func (s *SessionService) Validate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if claims.TokenType != jwt.SessionToken {
		return nil, ErrInvalidSession
	}

	exists, err := s.redisClient.Exists(ctx, sessionKey(claims.UserID, claims.TokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check session in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrSessionRevoked
	}

	return claims, nil
}

// Destroy revokes the session behind token. Unparseable tokens are ignored.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	if err := s.redisClient.Del(ctx, sessionKey(claims.UserID, claims.TokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

// RevokeUser removes every registered session of userID.
func (s *SessionService) RevokeUser(ctx context.Context, userID uint) error {
	pattern := fmt.Sprintf("%s%d:*", sessionKeyPrefix, userID)

	var cursor uint64
	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			s.log.Warnf("Failed to scan sessions: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete sessions: %+v", err)
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *SessionService) Expiry() time.Duration {
	return s.jwtService.GetExpiry()
}
