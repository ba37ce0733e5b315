package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { SetOutput(os.Stdout, zerolog.InfoLevel) })

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "empty", level: "", want: zerolog.InfoLevel},
		{name: "unknown", level: "chatty", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestInit_IgnoresProcessEnvironment(t *testing.T) {
	t.Cleanup(func() { SetOutput(os.Stdout, zerolog.InfoLevel) })
	t.Setenv("LOG_LEVEL", "error")

	Init("debug", true)

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestInfo_KeyValues(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Info("HTTP request", "method", "GET", "status", 200)

	output := buf.String()
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"status":200`)
}

func TestInfo_OddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Info("dangling", "orphan")

	assert.Contains(t, buf.String(), "!BADKEY")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Error("test error", "error", assert.AnError)

	output := buf.String()
	assert.Contains(t, output, "test error")
	assert.Contains(t, output, assert.AnError.Error())
}

func TestDebug_FilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	Debugf("test %s", "debug")

	assert.Contains(t, buf.String(), "test debug")
}

func TestInfofErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Infof("booked %d slots", 3)
	Errorf("failed %s", "twice")

	output := buf.String()
	assert.Contains(t, output, "booked 3 slots")
	assert.Contains(t, output, "failed twice")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	WithError(assert.AnError).Info("test with error")

	output := buf.String()
	assert.Contains(t, output, "test with error")
	assert.Contains(t, output, `"error"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 123,
	}).WithField("key3", true).Info("test with fields")

	output := buf.String()
	assert.Contains(t, output, "test with fields")
	assert.Contains(t, output, `"key1":"value1"`)
	assert.Contains(t, output, `"key2":123`)
	assert.Contains(t, output, `"key3":true`)
}
