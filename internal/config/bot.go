package config

// Bot posts contribution notices to a moderation chat. Commands are accepted
// from AdminID only; without it the command bot is not started.
type Bot struct {
	Token      string   `env:"BOT_TOKEN" json:"-"`
	ChatID     int64    `env:"BOT_CHAT_ID"`
	AdminID    int64    `env:"BOT_ADMIN_ID"`
	MutedKinds []string `env:"BOT_MUTED_KINDS" envSeparator:","`
	Queue      string   `env:"BOT_QUEUE" envDefault:"activity"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}
