package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, &WebhookPayload{
		Username: DefaultUsername,
		Embeds: []Embed{{
			Title:       ReportBugTitle,
			Description: truncate("```"+message+"```", MaxDescriptionLen),
			Color:       ColorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) SendActivityLog(ctx context.Context, action, user, details string) error {
	return d.send(ctx, &WebhookPayload{
		Username: DefaultUsername,
		Embeds: []Embed{{
			Title: ActivityLogTitle,
			Color: ColorInfo,
			Fields: []EmbedField{
				{Name: "Action", Value: action, Inline: true},
				{Name: "User", Value: user, Inline: true},
				{Name: "Details", Value: truncate(details, 1024)},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload *WebhookPayload) error {
	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
		if lastErr = d.post(ctx, payload); lastErr == nil {
			return nil
		}
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.send: attempt %d failed: %v", attempt+1, lastErr)
		}
	}
	return fmt.Errorf("discord: failed after %d attempts: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) post(ctx context.Context, payload *WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(msg))
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
