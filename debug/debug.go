// Package debug provides env-gated tracing for toolchain internals.
// Gates are read once at process start and are immutable afterwards.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Text  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("TORII_DEBUG_LEX")
	d.Parse = boolEnv("TORII_DEBUG_PARSE")
	d.Text = boolEnv("TORII_DEBUG_TEXT")
	d.LSP = boolEnv("TORII_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Text() bool {
	return d.Text
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}

// Warnf always logs; it reports repaired invariant violations that
// should be visible regardless of gates.
func Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "warn: "+msg+"\n", args...)
}
