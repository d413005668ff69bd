package impl

import (
	"io"
	"log/slog"

	"nearbite/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Messaging: &config.MessagingConfig{
			MinRadiusKm:    1,
			MaxRadiusKm:    25,
			MaxBodyLength:  500,
			MaxTitleLength: 100,
		},
	}
}
