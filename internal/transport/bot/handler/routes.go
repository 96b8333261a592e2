package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"berry_buddy/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	messages := bh.Group(th.AnyMessage())
	messages.Use(middleware.AdminOnly(adminID))

	messages.HandleMessage(h.OnStart, th.CommandEqual("start"))
	messages.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	messages.HandleMessage(h.OnMute, th.CommandEqual("mute"))
	messages.HandleMessage(h.OnUnmute, th.CommandEqual("unmute"))

	callbacks := bh.Group(th.AnyCallbackQuery())
	callbacks.Use(middleware.AdminOnly(adminID))

	callbacks.HandleCallbackQuery(h.OnToggleCallback, th.CallbackDataPrefix(togglePrefix))
}
