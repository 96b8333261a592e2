package notifier

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"berry_buddy/internal/domain/entity"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// NotifyActivity posts a contribution notice to the moderation chat.
func (b *TelegramBot) NotifyActivity(ctx context.Context, activity entity.Activity) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatActivity(activity),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// SendText sends a plain text message.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	if _, err := b.bot.SendMessage(ctx, tu.Message(tu.ID(b.chatID), text)); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func FormatActivity(activity entity.Activity) string {
	return fmt.Sprintf(
		"%s <b>New %s</b>\n\n"+
			"<b>Vendor:</b> <code>%s</code>\n"+
			"<b>By:</b> <code>%s</code>\n"+
			"<b>What:</b> %s\n"+
			"<b>When:</b> %s\n"+
			"<b>ID:</b> <code>%s</code>",
		icon(activity.Kind),
		activity.Kind,
		html.EscapeString(activity.VendorID),
		html.EscapeString(activity.UserID),
		html.EscapeString(activity.Summary),
		activity.OccurredAt.UTC().Format(time.RFC3339),
		html.EscapeString(activity.ID),
	)
}

func icon(kind entity.ActivityKind) string {
	switch kind {
	case entity.ActivityReview:
		return "⭐"
	case entity.ActivityPrice:
		return "💰"
	case entity.ActivityPhoto:
		return "📷"
	default:
		return "🫐"
	}
}
