package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"recircleBack/internal/models"
	"recircleBack/utils"
)

const sessionKeyPrefix = "session:"

// SessionService stores browser login sessions in Redis, keyed by an
// opaque session id with a TTL.
type SessionService struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *SessionService) Create(ctx context.Context, userID int) (string, error) {
	sid, err := utils.NewSessionID()
	if err != nil {
		return "", err
	}

	if err := s.Client.Set(ctx, sessionKeyPrefix+sid, userID, s.TTL).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func (s *SessionService) UserID(ctx context.Context, sid string) (int, error) {
	userID, err := s.Client.Get(ctx, sessionKeyPrefix+sid).Int()
	if errors.Is(err, redis.Nil) {
		return 0, models.ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *SessionService) Delete(ctx context.Context, sid string) error {
	return s.Client.Del(ctx, sessionKeyPrefix+sid).Err()
}
