package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func run(t *testing.T, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	cmd := NewCommand(zap.New(core))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), logs, err
}

func TestCommand_Informal(t *testing.T) {
	out, logs, err := run(t, "Frodo")

	require.NoError(t, err)
	assert.Equal(t, "Hey Frodo.\n", out)
	assert.Equal(t, 1, logs.FilterMessage("welcome").FilterLevelExact(zapcore.InfoLevel).Len())
}

func TestCommand_FormalFlag(t *testing.T) {
	out, _, err := run(t, "--setting", "formal", "Frodo", "Sam")

	require.NoError(t, err)
	assert.Equal(t, "Hello, Mr. Frodo.\nHello, Mr. Sam.\n", out)
}

func TestCommand_SettingFromEnv(t *testing.T) {
	t.Setenv("GREETER_SETTING", "formal")

	out, _, err := run(t, "Frodo")

	require.NoError(t, err)
	assert.Equal(t, "Hello, Mr. Frodo.\n", out)
}

func TestCommand_InvalidNames(t *testing.T) {
	out, logs, err := run(t, "Frodo", "4", " ")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "invalid input: name \"4\" must not contain digits; name must not be blank\n", out)
	assert.Equal(t, 1, logs.FilterMessage("welcome").FilterLevelExact(zapcore.WarnLevel).Len())
}
