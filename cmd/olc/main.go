// Command olc is a thin command-line front end over the olc package. It
// exercises only the package's exported API; none of the subcommands touch
// olc's internals directly.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := newLogger()
	cmd := NewRootCmd(log)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(out).With().Timestamp().Logger()
}
