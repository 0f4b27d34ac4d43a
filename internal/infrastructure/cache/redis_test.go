package cache

import (
	"context"
	"testing"

	"hospital-management/config"
	"hospital-management/internal/testutil"

	"github.com/alicebob/miniredis/v2"
)

func TestOptions(t *testing.T) {
	opts := Options(config.RedisConfig{Host: "cache", Port: "6380", Password: "pw", DB: 2})
	if opts.Addr != "cache:6380" || opts.Password != "pw" || opts.DB != 2 {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(config.RedisConfig{Host: mr.Host(), Port: mr.Port()}, testutil.NewLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, _ := mr.Get("k"); got != "v" {
		t.Errorf("expected value in redis, got %q", got)
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: mr.Host(), Port: mr.Port()}
	mr.Close()

	if _, err := NewRedisClient(cfg, testutil.NewLogger()); err == nil {
		t.Error("expected an error when redis does not answer")
	}
}
