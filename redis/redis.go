package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// MaxOTPAttempts bounds brute forcing of the 6-digit codes per booking
// within the throttle window.
const (
	MaxOTPAttempts    = 5
	OTPAttemptsWindow = 15 * time.Minute
)

// RegisterOTPAttempt counts a verification attempt for a booking and
// reports whether the caller is still within the allowed budget. The
// throttle is best-effort: when Redis is not configured every attempt is
// allowed.
func RegisterOTPAttempt(bookingID uint) bool {
	if Client == nil {
		return true
	}
	key := fmt.Sprintf("otp-attempts:%d", bookingID)
	count, err := Client.Incr(Ctx, key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		Client.Expire(Ctx, key, OTPAttemptsWindow)
	}
	return count <= MaxOTPAttempts
}

// ClearOTPAttempts resets the counter after a successful verification.
func ClearOTPAttempts(bookingID uint) {
	if Client == nil {
		return
	}
	Client.Del(Ctx, fmt.Sprintf("otp-attempts:%d", bookingID))
}
