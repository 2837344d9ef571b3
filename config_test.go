package treelog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestApplyConfig(t *testing.T) {
	reg := NewRegistry()

	err := reg.Apply(&Config{
		Loggers: []LoggerConfig{
			{Name: "", Level: "info"},
			{Name: "app.db", Level: "debug"},
			{Name: "app.http", Additive: boolPtr(false)},
		},
	})
	require.NoError(t, err)

	require.Equal(t, LevelInfo, reg.Root().Level())
	require.Equal(t, LevelDebug, reg.Logger("app.db").Level())
	require.False(t, reg.Logger("app.http").Additive())
	// Untouched fields keep their defaults.
	require.Equal(t, LevelInfo, reg.Logger("app.http").Level())
	require.True(t, reg.Logger("app.db").Additive())
}

func TestApplyNilConfig(t *testing.T) {
	reg := NewRegistry()
	err := reg.Apply(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), errMsgNilConfig)
}

func TestApplyInvalidLevel(t *testing.T) {
	reg := NewRegistry()
	err := reg.Apply(&Config{
		Loggers: []LoggerConfig{{Name: "app", Level: "loud"}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), errMsgConfigInvalid)

	// Validation failed up front, so nothing was created.
	require.Equal(t, []string{""}, reg.Names())
}

func TestApplyInheritOnRootIgnored(t *testing.T) {
	reg := NewRegistry()
	reg.Root().SetLevel(LevelError)

	err := reg.Apply(&Config{
		Loggers: []LoggerConfig{{Name: "", Level: "inherit"}},
	})
	require.NoError(t, err)
	require.Equal(t, LevelError, reg.Root().Level())
}
