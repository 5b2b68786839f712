// Copyright (c) 2026 World of Alafia Logistics. All rights reserved.
// Author: dev@worldofalafialogistics.com

/*
Package notify defines the fire-and-forget notification surface consumed by
the cart and auth services.

# Architecture

The core emits human-readable notifications (title, description, severity)
for add/remove/clear/login/logout/verification events. Rendering belongs to
the presentation layer: the storefront shows them as toasts, a mobile client
as banners. The default implementation here only writes structured log
entries, so the core never blocks on a delivery channel.
*/
package notify

import (
	"context"
	"log/slog"
)

// Severity classifies a notification for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Notifier delivers notifications without reporting failures to the caller.
//
// # Contract
//
// Notify must never block the emitting operation and must never return an
// error: a lost toast is acceptable, a stalled cart mutation is not.
type Notifier interface {
	Notify(ctx context.Context, notification Notification)
}

// # Log-backed implementation

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a [LogNotifier].
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements [Notifier].
func (notifier *LogNotifier) Notify(ctx context.Context, notification Notification) {
	level := slog.LevelInfo
	if notification.Severity == SeverityError {
		level = slog.LevelWarn
	}

	notifier.logger.Log(ctx, level, "user_notification",
		slog.String("title", notification.Title),
		slog.String("description", notification.Description),
		slog.String("severity", string(notification.Severity)),
	)
}

// # Two-factor code delivery

// DevCodeSender is a development stand-in for the email/SMS gateway that
// delivers two-factor verification codes.
//
// It satisfies the auth service's CodeSender contract structurally, so the
// real gateway can replace it in wiring without touching the state machine.
type DevCodeSender struct {
	logger *slog.Logger
}

// NewDevCodeSender creates a [DevCodeSender].
func NewDevCodeSender(logger *slog.Logger) *DevCodeSender {
	return &DevCodeSender{logger: logger}
}

// SendCode logs the code instead of delivering it.
//
// Debug level only: production runs never log verification codes.
func (sender *DevCodeSender) SendCode(ctx context.Context, method, destination, code string) error {
	sender.logger.DebugContext(ctx, "two_factor_code_issued",
		slog.String("method", method),
		slog.String("destination", destination),
		slog.String("code", code),
	)
	return nil
}
