package impl

import (
	"io"
	"log/slog"

	"bitefeed/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSubscriptionTestConfig() *config.Config {
	return &config.Config{
		Subscription: &config.SubscriptionConfig{
			Amount:    99.0,
			PayeeVPA:  "bitefeed@upi",
			PayeeName: "BiteFeed",
		},
	}
}
