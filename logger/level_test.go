package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		TraceLevel: "TRACE",
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		Level(-1):  "Level(-1)",
		Level(9):   "Level(9)",
	}

	for level, want := range cases {
		require.Equal(t, want, level.String())
	}
}

func TestAllLevelsAscending(t *testing.T) {
	levels := AllLevels()
	require.Len(t, levels, 5)

	for i := 1; i < len(levels); i++ {
		require.Less(t, int(levels[i-1]), int(levels[i]))
	}
}

func TestParseLevel(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected Level
	}

	cases := []testCase{
		{name: "Trace", input: "trace", expected: TraceLevel},
		{name: "Debug", input: "DEBUG", expected: DebugLevel},
		{name: "Info", input: " Info ", expected: InfoLevel},
		{name: "Warn", input: "warn", expected: WarnLevel},
		{name: "WarningAlias", input: "WARNING", expected: WarnLevel},
		{name: "Error", input: "error", expected: ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, level)
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)
	require.Contains(t, err.Error(), `"verbose"`)
}
