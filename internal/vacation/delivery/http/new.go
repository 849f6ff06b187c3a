package http

import (
	"tracker-api/internal/vacation"
	"tracker-api/pkg/discord"
	pkgLog "tracker-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc vacation.UseCase
	d  discord.IDiscord
}

func New(l pkgLog.Logger, uc vacation.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
