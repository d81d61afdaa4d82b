package auth

import (
	"context"
	"log"
)

// LogSMSSender writes codes to the application log instead of dispatching
// them. Used in development and wherever no SMS gateway is configured.
type LogSMSSender struct{}

func (LogSMSSender) SendOTP(ctx context.Context, phoneNumber string, code string) error {
	log.Printf("[SMS] OTP for %s: %s", phoneNumber, code)
	return nil
}
