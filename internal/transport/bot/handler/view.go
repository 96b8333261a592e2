package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"berry_buddy/internal/domain/entity"
)

const (
	togglePrefix = "toggle:"

	startMessage = "🫐 <b>Berry Buddy moderation</b>\n\n" +
		"New reviews, prices and photos are posted here.\n\n" +
		"/status shows delivery state\n" +
		"/mute <code>kind</code> stops notices of a kind\n" +
		"/unmute <code>kind</code> resumes them\n\n" +
		"Kinds: review, price, photo"
)

// parseKinds splits command arguments into known kinds and the rest.
func parseKinds(args []string) ([]entity.ActivityKind, []string) {
	var (
		kinds   []entity.ActivityKind
		invalid []string
	)

	for _, arg := range args {
		kind, err := entity.ParseActivityKind(arg)
		if err != nil {
			invalid = append(invalid, arg)
			continue
		}

		kinds = append(kinds, kind)
	}

	return lo.Uniq(kinds), invalid
}

func statusText(dispatcher DispatcherStatus, muted []entity.ActivityKind) string {
	delivery := "📬 queue"
	if dispatcher != nil {
		delivery = "🔴 stopped"
		if dispatcher.IsRunning() {
			delivery = "🟢 running"
		}
	}

	var sb strings.Builder

	sb.WriteString("📊 <b>Status</b>\n\n")
	sb.WriteString(fmt.Sprintf("<b>Delivery:</b> %s\n\n", delivery))

	for _, kind := range entity.ActivityKinds {
		state := "🔔"
		if lo.Contains(muted, kind) {
			state = "🔕"
		}

		sb.WriteString(fmt.Sprintf("%s %s\n", state, kind))
	}

	return sb.String()
}

// toggleKeyboard has one button per kind flipping its muted state.
func toggleKeyboard(muted []entity.ActivityKind) *telego.InlineKeyboardMarkup {
	row := lo.Map(entity.ActivityKinds, func(kind entity.ActivityKind, _ int) telego.InlineKeyboardButton {
		label := "🔕 " + string(kind)
		if lo.Contains(muted, kind) {
			label = "🔔 " + string(kind)
		}

		return tu.InlineKeyboardButton(label).WithCallbackData(togglePrefix + string(kind))
	})

	return tu.InlineKeyboard(row)
}
