package http

import (
	"tracker-api/config"
	"tracker-api/internal/auth"
	"tracker-api/pkg/discord"
	pkgLog "tracker-api/pkg/log"
)

type Handler struct {
	l         pkgLog.Logger
	uc        auth.UseCase
	d         discord.IDiscord
	cookieCfg config.CookieConfig
}

func New(l pkgLog.Logger, uc auth.UseCase, d discord.IDiscord, cookieCfg config.CookieConfig) *Handler {
	return &Handler{
		l:         l,
		uc:        uc,
		d:         d,
		cookieCfg: cookieCfg,
	}
}
