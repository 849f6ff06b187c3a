package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tracker-api/pkg/log"
)

// IDiscord posts operational messages to a Discord webhook.
type IDiscord interface {
	// ReportBug posts an unexpected server error report.
	ReportBug(ctx context.Context, message string) error
	// SendActivityLog posts an audit line, e.g. a role change.
	SendActivityLog(ctx context.Context, action, user, details string) error
	Close() error
}

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
)

// New builds a Discord client for the webhook identified by id and token.
func New(l log.Logger, id, token string) (IDiscord, error) {
	id, token = strings.TrimSpace(id), strings.TrimSpace(token)
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:      l,
		url:    fmt.Sprintf(webhookURLTemplate, id, token),
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}, nil
}
