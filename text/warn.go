package text

import "github.com/torii-format/torii/debug"

func warnf(msg string, args ...any) {
	debug.Warnf(msg, args...)
}
