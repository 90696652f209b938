package utils

import (
	"os"
	"strings"
)

var Listeners []string

var HttpPort string

var UdpPort string

var TcpPort string

var DBPath string

var StaticDir string

// Version is set at build time via -ldflags "-X slogforge/utils.Version=...".
var Version string

func init() {
	Listeners = strings.Split(GetSanitizedEnvString("SLOGFORGE_LISTENERS", ""), ",")
	HttpPort = GetSanitizedEnvString("SLOGFORGE_HTTP_PORT", "8000")
	UdpPort = GetSanitizedEnvString("SLOGFORGE_UDP_PORT", "5514")
	TcpPort = GetSanitizedEnvString("SLOGFORGE_TCP_PORT", "6514")
	DBPath = GetEnvString("SLOGFORGE_DB_PATH", "examples.db")
	StaticDir = GetEnvString("SLOGFORGE_STATIC_DIR", "static")
}

func GetSanitizedEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	value = strings.TrimSpace(value)
	value = strings.ToLower(value)

	return value
}

// GetEnvString reads an env var without case folding. Used for paths,
// which are case-sensitive.
func GetEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	return strings.TrimSpace(value)
}
