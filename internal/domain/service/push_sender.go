package service

import "context"

// PushSender defines the interface for delivering push notifications to
// device tokens. Implemented by the Firebase Cloud Messaging adapter.
type PushSender interface {
	// SendSingle sends a push notification to a single device token.
	SendSingle(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatch sends a push notification to up to 500 device tokens.
	// It returns per-batch success/failure counts plus the tokens FCM
	// reported as invalid or unregistered.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
