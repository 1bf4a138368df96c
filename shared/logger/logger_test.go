package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"todolist/config"
	"todolist/shared/failure"
	"todolist/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("test error"))

	assert.Contains(t, buf.String(), "test error")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "disabled level", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{
			name:          "empty level uses NoLevel",
			logLevel:      "",
			expectedLevel: zerolog.NoLevel, // ParseLevel("") returns NoLevel with no error
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestFailure(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantField string
	}{
		{
			name:      "not found logs at info",
			err:       failure.NotFound("task not found"),
			wantLevel: `"level":"info"`,
		},
		{
			name:      "bad request logs at warn",
			err:       failure.BadRequestFromString("description is required"),
			wantLevel: `"level":"warn"`,
		},
		{
			name:      "unavailable logs at error with kind",
			err:       failure.ErrDatabaseUnavailable,
			wantLevel: `"level":"error"`,
			wantField: `"kind":"unavailable"`,
		},
		{
			name:      "schema missing logs at error with kind",
			err:       failure.SchemaMissing(errors.New(`relation "tasks" does not exist`)),
			wantLevel: `"level":"error"`,
			wantField: `"kind":"schema_missing"`,
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.Logger = zerolog.New(&buf)

			logger.Failure(tt.err, "operation failed")

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "operation failed")

			if tt.wantField != "" {
				assert.Contains(t, out, tt.wantField)
			}
		})
	}
}

func TestFailure_NilIsSilent(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.Failure(nil, "nothing happened")

	assert.Empty(t, buf.String())
}

func TestInitLoggerTo(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	var buf bytes.Buffer
	logger.InitLoggerTo(&buf)

	log.Info().Msg("hello console")

	assert.Contains(t, buf.String(), "hello console")
}
