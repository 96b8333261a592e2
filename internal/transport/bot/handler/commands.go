package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"berry_buddy/internal/domain/entity"
	"berry_buddy/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	muted := h.filter.Muted()

	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      tu.ID(msg.Chat.ID),
		Text:        statusText(h.dispatcher, muted),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: toggleKeyboard(muted),
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func (h *Handler) OnMute(ctx *th.Context, msg telego.Message) error {
	return h.changeKinds(ctx, msg, "mute", h.filter.Mute)
}

func (h *Handler) OnUnmute(ctx *th.Context, msg telego.Message) error {
	return h.changeKinds(ctx, msg, "unmute", h.filter.Unmute)
}

func (h *Handler) changeKinds(
	ctx *th.Context,
	msg telego.Message,
	command string,
	apply func(...entity.ActivityKind),
) error {
	_, _, args := tu.ParseCommand(msg.Text)

	kinds, invalid := parseKinds(args)
	if len(kinds) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(
			"❌ Usage: /%s <code>kind</code> ...\n\nKinds: review, price, photo", command,
		))
	}

	apply(kinds...)

	var sb strings.Builder

	sb.WriteString(statusText(h.dispatcher, h.filter.Muted()))

	if len(invalid) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️ Unknown kinds skipped: %s", strings.Join(invalid, ", ")))
	}

	return h.sendHTML(ctx, msg.Chat.ID, sb.String())
}

// OnToggleCallback flips the muted state of the kind in the callback data and
// redraws the status message.
func (h *Handler) OnToggleCallback(ctx *th.Context, query telego.CallbackQuery) error {
	kind, err := entity.ParseActivityKind(strings.TrimPrefix(query.Data, togglePrefix))
	if err != nil {
		logger(ctx).Warn("unexpected callback data", logx.Error(err))

		return nil
	}

	if h.filter.Allows(kind) {
		h.filter.Mute(kind)
	} else {
		h.filter.Unmute(kind)
	}

	muted := h.filter.Muted()

	if query.Message != nil {
		_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        statusText(h.dispatcher, muted),
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: toggleKeyboard(muted),
		})
		if err != nil {
			logger(ctx).Warn("bot.EditMessageText", logx.Error(err))
		}
	}

	if err := ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID)); err != nil {
		return fmt.Errorf("bot.AnswerCallbackQuery: %w", err)
	}

	return nil
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    tu.ID(chatID),
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	if err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
