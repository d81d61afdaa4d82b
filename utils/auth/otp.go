package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/krishimitra/api/utils/cache"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrTooManyRequests = errors.New("too many verification codes requested")
	ErrCodeExpired     = errors.New("verification code expired or never requested")
	ErrCodeInvalid     = errors.New("verification code does not match")
	ErrTooManyAttempts = errors.New("too many failed verification attempts")
)

const (
	otpLength      = 6
	otpTTL         = 5 * time.Minute
	otpMaxRequests = 3
	otpRequestTTL  = 10 * time.Minute
	otpMaxAttempts = 5
)

// SMSSender delivers a verification code to a phone number. The production
// gateway is an external collaborator; the default sender only logs.
type SMSSender interface {
	SendOTP(ctx context.Context, phoneNumber string, code string) error
}

// OTPService issues and verifies one-time codes for phone login. Codes are
// bcrypt-hashed before they reach Redis and expire after five minutes.
type OTPService struct {
	cache  *cache.RedisCache
	sender SMSSender
}

// NewOTPService creates a new OTP service
func NewOTPService(c *cache.RedisCache, sender SMSSender) *OTPService {
	return &OTPService{cache: c, sender: sender}
}

// Request generates a code for phoneNumber, stores its hash and dispatches
// it. At most three codes per phone per ten minutes.
func (s *OTPService) Request(ctx context.Context, phoneNumber string) error {
	requests, err := s.cache.Increment(ctx, requestKey(phoneNumber))
	if err != nil {
		return err
	}
	if requests == 1 {
		if err := s.cache.Expire(ctx, requestKey(phoneNumber), otpRequestTTL); err != nil {
			return err
		}
	}
	if requests > otpMaxRequests {
		return ErrTooManyRequests
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, codeKey(phoneNumber), string(hash), otpTTL); err != nil {
		return err
	}
	// Reset the failed attempt counter for the fresh code
	if err := s.cache.Delete(ctx, attemptKey(phoneNumber)); err != nil {
		return err
	}

	return s.sender.SendOTP(ctx, phoneNumber, code)
}

// Verify compares code against the stored hash for phoneNumber. The code is
// consumed on success; five failed attempts invalidate it.
func (s *OTPService) Verify(ctx context.Context, phoneNumber string, code string) error {
	hash, err := s.cache.Get(ctx, codeKey(phoneNumber))
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return ErrCodeExpired
		}
		return err
	}

	attempts, err := s.cache.Increment(ctx, attemptKey(phoneNumber))
	if err != nil {
		return err
	}
	if attempts == 1 {
		if err := s.cache.Expire(ctx, attemptKey(phoneNumber), otpTTL); err != nil {
			return err
		}
	}
	if attempts > otpMaxAttempts {
		if err := s.cache.Delete(ctx, codeKey(phoneNumber)); err != nil {
			return err
		}
		return ErrTooManyAttempts
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return ErrCodeInvalid
	}

	return s.cache.Delete(ctx, codeKey(phoneNumber), attemptKey(phoneNumber))
}

// generateCode returns a random zero-padded 6 digit code
func generateCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n.Int64()), nil
}

func codeKey(phoneNumber string) string {
	return "otp:code:" + phoneNumber
}

func requestKey(phoneNumber string) string {
	return "otp:requests:" + phoneNumber
}

func attemptKey(phoneNumber string) string {
	return "otp:attempts:" + phoneNumber
}
