package config

import "strings"

// Supabase holds the hosted auth and storage project settings.
type Supabase struct {
	URL            string `env:"SUPABASE_URL"`
	SecretKey      string `env:"SUPABASE_SECRET_KEY" json:"-"`
	PublishableKey string `env:"SUPABASE_PUBLISHABLE_KEY" json:"-"`
	JWTSecret      string `env:"SUPABASE_JWT_SECRET" json:"-"`
}

// OTPEnabled reports whether the email code flow can be served.
func (s Supabase) OTPEnabled() bool {
	return s.URL != "" && s.PublishableKey != ""
}

// UserLookupEnabled reports whether bearer tokens can be resolved remotely.
func (s Supabase) UserLookupEnabled() bool {
	return s.URL != "" && s.SecretKey != ""
}

func (s Supabase) BaseURL() string {
	return strings.TrimRight(s.URL, "/")
}
