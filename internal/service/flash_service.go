package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const flashKeyPrefix = "flash:"

// FlashService stores one-shot messages shown on the next rendered page.
// Messages are grouped under a flash id carried by a browser cookie.
type FlashService struct {
	redisClient *redis.Client
	expiry      time.Duration
	log         *logrus.Logger
}

func NewFlashService(redisClient *redis.Client, expiry time.Duration, log *logrus.Logger) *FlashService {
	return &FlashService{
		redisClient: redisClient,
		expiry:      expiry,
		log:         log,
	}
}

func (f *FlashService) Add(ctx context.Context, flashID, message string) error {
	key := flashKeyPrefix + flashID
	_, err := f.redisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, message)
		pipe.Expire(ctx, key, f.expiry)
		return nil
	})
	if err != nil {
		f.log.Warnf("Failed to store flash message: %+v", err)
	}
	return err
}

// Pop returns the pending messages for flashID in insertion order and clears them.
func (f *FlashService) Pop(ctx context.Context, flashID string) ([]string, error) {
	key := flashKeyPrefix + flashID

	var messages *redis.StringSliceCmd
	_, err := f.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		messages = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		f.log.Warnf("Failed to read flash messages: %+v", err)
		return nil, err
	}

	return messages.Val(), nil
}

func (f *FlashService) Expiry() time.Duration {
	return f.expiry
}
