package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = New(os.Stdout, zerolog.InfoLevel)

// Entry is a logger carrying a fixed set of fields.
type Entry struct {
	l zerolog.Logger
}

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Init configures the package logger. An unknown or empty level means info;
// development switches to the console writer. Safe to call more than once.
func Init(level string, development bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log = New(out, lvl)
}

// SetOutput replaces the package logger, mainly for tests.
func SetOutput(w io.Writer, level zerolog.Level) {
	log = New(w, level)
}

func Info(msg string, keyvals ...interface{}) {
	withPairs(log.Info(), keyvals).Msg(msg)
}

func Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func Warn(msg string, keyvals ...interface{}) {
	withPairs(log.Warn(), keyvals).Msg(msg)
}

func Error(msg string, keyvals ...interface{}) {
	withPairs(log.Error(), keyvals).Msg(msg)
}

func Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}

func Debug(msg string, keyvals ...interface{}) {
	withPairs(log.Debug(), keyvals).Msg(msg)
}

func Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func Fatal(msg string, keyvals ...interface{}) {
	withPairs(log.Fatal(), keyvals).Msg(msg)
}

func Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}

func WithError(err error) *Entry {
	return &Entry{l: log.With().Err(err).Logger()}
}

func WithFields(fields map[string]interface{}) *Entry {
	return &Entry{l: log.With().Fields(fields).Logger()}
}

func (e *Entry) WithField(key string, value interface{}) *Entry {
	return &Entry{l: e.l.With().Interface(key, value).Logger()}
}

func (e *Entry) Info(msg string, keyvals ...interface{}) {
	withPairs(e.l.Info(), keyvals).Msg(msg)
}

func (e *Entry) Warn(msg string, keyvals ...interface{}) {
	withPairs(e.l.Warn(), keyvals).Msg(msg)
}

func (e *Entry) Error(msg string, keyvals ...interface{}) {
	withPairs(e.l.Error(), keyvals).Msg(msg)
}

func (e *Entry) Debug(msg string, keyvals ...interface{}) {
	withPairs(e.l.Debug(), keyvals).Msg(msg)
}

// withPairs attaches alternating key/value arguments to the event. A trailing
// key without a value is logged under "!BADKEY".
func withPairs(ev *zerolog.Event, keyvals []interface{}) *zerolog.Event {
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 >= len(keyvals) {
			ev = ev.Interface("!BADKEY", keyvals[i])
			break
		}
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		switch v := keyvals[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}
