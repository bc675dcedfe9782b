package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-staff-reports/internal/report"
)

func TestResolveArgs(t *testing.T) {
	t.Run("no arguments means all defaults", func(t *testing.T) {
		opts, err := ResolveArgs([]string{"report"})
		require.NoError(t, err)
		assert.Equal(t, DefaultInputFile, opts.InputFile)
		assert.Equal(t, DefaultOutputFile, opts.OutputFile)
		assert.Equal(t, DefaultSeparator, opts.Separator)
	})

	t.Run("short flags", func(t *testing.T) {
		opts, err := ResolveArgs([]string{"report", "-if", "staff.csv", "-of", "out.csv", "-s", ","})
		require.NoError(t, err)
		assert.Equal(t, "staff.csv", opts.InputFile)
		assert.Equal(t, "out.csv", opts.OutputFile)
		assert.Equal(t, ",", opts.Separator)
	})

	t.Run("long flags", func(t *testing.T) {
		opts, err := ResolveArgs([]string{"report", "--input-file", "staff.csv", "--separator", "|"})
		require.NoError(t, err)
		assert.Equal(t, "staff.csv", opts.InputFile)
		assert.Equal(t, DefaultOutputFile, opts.OutputFile)
		assert.Equal(t, "|", opts.Separator)
	})

	t.Run("absent flags fall back to defaults", func(t *testing.T) {
		opts, err := ResolveArgs([]string{"report", "-s", "\t"})
		require.NoError(t, err)
		assert.Equal(t, DefaultInputFile, opts.InputFile)
		assert.Equal(t, "\t", opts.Separator)
	})

	t.Run("unrecognized tokens are ignored", func(t *testing.T) {
		opts, err := ResolveArgs([]string{"report", "whatever", "-if", "staff.csv", "noise"})
		require.NoError(t, err)
		assert.Equal(t, "staff.csv", opts.InputFile)
	})

	t.Run("a flag given twice is a config error", func(t *testing.T) {
		_, err := ResolveArgs([]string{"report", "-if", "a.csv", "--input-file", "b.csv"})
		var configErr *report.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, err.Error(), "input file")
	})

	t.Run("mixing short and long forms of the same flag is a config error", func(t *testing.T) {
		_, err := ResolveArgs([]string{"report", "-s", ";", "-s", ","})
		var configErr *report.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("a trailing flag without a value is a config error", func(t *testing.T) {
		_, err := ResolveArgs([]string{"report", "-if", "staff.csv", "-of"})
		var configErr *report.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, err.Error(), "output file")
	})
}
