package entities

import "strings"

type KeyClass string

const (
	LiveKey    KeyClass = "live"
	SandboxKey KeyClass = "sandbox"
	UnknownKey KeyClass = "unknown"
)

// Credentials is the processor credential set selected by the operating mode.
// TerminalID is only populated in production mode.
type Credentials struct {
	SecretKey  string
	LocationID string
	TerminalID string
}

// KeyClass reports whether the secret key is a live or sandbox key without exposing it.
func (c Credentials) KeyClass() KeyClass {
	switch {
	case strings.HasPrefix(c.SecretKey, "sk_live_"), strings.HasPrefix(c.SecretKey, "rk_live_"):
		return LiveKey
	case strings.HasPrefix(c.SecretKey, "sk_test_"), strings.HasPrefix(c.SecretKey, "rk_test_"):
		return SandboxKey
	default:
		return UnknownKey
	}
}
