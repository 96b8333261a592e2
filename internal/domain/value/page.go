package value

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	DefaultLimit = 25
	MinLimit     = 1
	MaxLimit     = 100
)

// Page is an inclusive row range [Offset, Offset+Limit-1].
type Page struct {
	Limit  int
	Offset int
}

// NewPage clamps limit to [MinLimit, MaxLimit] and offset to >= 0.
func NewPage(limit, offset int) Page {
	return Page{
		Limit:  min(max(limit, MinLimit), MaxLimit),
		Offset: max(offset, 0),
	}
}

// ParsePage reads raw query values leniently: only the leading integer is
// used ("10abc" is 10, "1.5" is 1), and values without one fall back to the
// defaults. The result is always clamped, never an error.
func ParsePage(rawLimit, rawOffset string) Page {
	return NewPage(leadingInt(rawLimit, DefaultLimit), leadingInt(rawOffset, 0))
}

func (p Page) From() int {
	return p.Offset
}

func (p Page) To() int {
	return p.Offset + p.Limit - 1
}

// leadingInt parses optional leading spaces, an optional sign and the digits
// that follow. Values out of the int range saturate.
func leadingInt(raw string, fallback int) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digitsFrom := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsFrom {
		return fallback
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt
		}

		return math.MaxInt
	}

	return v
}
