package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-staff-reports/internal/model"
	"go-staff-reports/internal/report"
)

func TestPromptMode(t *testing.T) {
	t.Run("selections map to modes", func(t *testing.T) {
		cases := map[string]model.Mode{
			"1": model.ModeHierarchy,
			"2": model.ModeSummary,
			"3": model.ModeSave,
		}
		for input, want := range cases {
			mode, err := PromptMode(strings.NewReader(input+"\n"), &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, want, mode)
		}
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		mode, err := PromptMode(strings.NewReader(" 2 \n"), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, model.ModeSummary, mode)
	})

	t.Run("the menu is printed before reading", func(t *testing.T) {
		var out bytes.Buffer
		_, err := PromptMode(strings.NewReader("1\n"), &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Choose a report mode.")
		assert.Contains(t, out.String(), "3. Save the department summary")
	})

	t.Run("anything else is a config error", func(t *testing.T) {
		for _, input := range []string{"4\n", "0\n", "one\n", "\n", ""} {
			_, err := PromptMode(strings.NewReader(input), &bytes.Buffer{})
			var configErr *report.ConfigError
			assert.ErrorAs(t, err, &configErr, "input %q", input)
		}
	})
}
