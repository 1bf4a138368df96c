package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/shared/failure"
)

func InitLogger() {
	InitLoggerTo(os.Stdout)
}

// InitLoggerTo installs a console logger writing to out.
func InitLoggerTo(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: out != os.Stdout}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// Failure logs err at a level chosen by its failure kind: a missing row is
// info, a rejected input is warn, everything else is an error.
func Failure(err error, msg string) {
	if err == nil {
		return
	}

	switch failure.GetKind(err) {
	case failure.KindNotFound:
		log.Info().Err(err).Msg(msg)
	case failure.KindBadRequest:
		log.Warn().Err(err).Msg(msg)
	case failure.KindUnavailable:
		log.Error().Err(err).Str("kind", "unavailable").Msg(msg)
	case failure.KindSchemaMissing:
		log.Error().Err(err).Str("kind", "schema_missing").Msg(msg)
	default:
		log.Error().Err(err).Msg(msg)
	}
}
