package discord

import (
	"net/http"
	"time"

	"tracker-api/pkg/log"
)

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	ColorInfo  = 3447003
	ColorError = 15158332

	MaxDescriptionLen = 4096
	DefaultUsername   = "Tracker Bot"
	UserAgent         = "Tracker-Bot/1.0"
	ReportBugTitle    = "Tracker API Error Report"
	ActivityLogTitle  = "Activity Log"
)

// Config tunes delivery.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		RetryCount: 2,
		RetryDelay: time.Second,
	}
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type WebhookPayload struct {
	Username string  `json:"username,omitempty"`
	Content  string  `json:"content,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

type discordImpl struct {
	l      log.Logger
	url    string
	config Config
	client *http.Client
}
