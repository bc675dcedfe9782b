package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHierarchy(t *testing.T) {
	parser := Parser{Separator: ";"}

	t.Run("groups teams under their department", func(t *testing.T) {
		lines := []string{
			"id;dept;team;role;level;salary",
			"1;Eng;Backend;dev;2;1000",
			"2;Eng;Frontend;dev;2;3000",
		}
		h, err := BuildHierarchy(lines, parser)
		require.NoError(t, err)

		assert.Equal(t, []string{"Eng"}, h.Departments())
		assert.ElementsMatch(t, []string{"Backend", "Frontend"}, h.Teams("Eng"))
	})

	t.Run("first line is always skipped as the header", func(t *testing.T) {
		lines := []string{
			"this header does not even split",
			"1;Eng;Backend;dev;2;1000",
		}
		h, err := BuildHierarchy(lines, parser)
		require.NoError(t, err)
		assert.Equal(t, 1, h.Len())
	})

	t.Run("duplicate department-team pairs collapse", func(t *testing.T) {
		lines := []string{
			"header",
			"1;Eng;Backend;dev;2;1000",
			"2;Eng;Backend;dev;3;2000",
		}
		h, err := BuildHierarchy(lines, parser)
		require.NoError(t, err)
		assert.Equal(t, []string{"Backend"}, h.Teams("Eng"))
	})

	t.Run("departments keep first-seen order", func(t *testing.T) {
		lines := []string{
			"header",
			"1;Sales;Field;x;1;100",
			"2;Eng;Backend;x;1;100",
			"3;Sales;Inside;x;1;100",
			"4;HR;People;x;1;100",
		}
		h, err := BuildHierarchy(lines, parser)
		require.NoError(t, err)
		assert.Equal(t, []string{"Sales", "Eng", "HR"}, h.Departments())
	})

	t.Run("header-only input yields an empty hierarchy", func(t *testing.T) {
		h, err := BuildHierarchy([]string{"id;dept;team;role;level;salary"}, parser)
		require.NoError(t, err)
		assert.Equal(t, 0, h.Len())
	})

	t.Run("a malformed later line aborts the whole build", func(t *testing.T) {
		lines := []string{
			"header",
			"1;Eng;Backend;dev;2;1000",
			"broken",
		}
		_, err := BuildHierarchy(lines, parser)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 3, formatErr.Line)
	})
}
