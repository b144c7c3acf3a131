package app

import "log/slog"

// Set with -ldflags "-X github.com/heartmarshall/notekeeper-backend/internal/app.Version=1.2.0" etc.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version reported by /health: the release plus a short
// commit hash when one was stamped in.
func BuildVersion() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return Version + "+" + c
}

func buildAttrs() []any {
	return []any{
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	}
}
