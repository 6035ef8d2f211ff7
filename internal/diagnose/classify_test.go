package diagnose

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"reportrepair/internal/config"
	"reportrepair/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	_, parseErr := report.Parse("1\nfoo")
	_, emptyErr := report.Parse("")
	_, noPairErr := report.FindPairs([]int32{1}, 5)

	tests := []struct {
		name string
		err  error
		want Category
		code int
	}{
		{"config", fmt.Errorf("load: %w", config.ErrInvalid), CategoryConfig, 2},
		{"missing file", fmt.Errorf("%w: x.csv", report.ErrFileNotFound), CategoryFilesystem, 3},
		{"read failure", report.ErrRead, CategoryFilesystem, 3},
		{"parse", parseErr, CategoryInput, 4},
		{"empty", emptyErr, CategoryInput, 4},
		{"no candidate", fmt.Errorf("a.csv: %w", noPairErr), CategorySearch, 5},
		{"cancelled", context.Canceled, CategoryInterrupted, 130},
		{"other", errors.New("boom"), CategoryUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := Classify(tt.err)
			require.NotNil(t, ce)
			assert.Equal(t, tt.want, ce.Category)
			assert.Equal(t, tt.code, ce.Category.ExitCode())
			assert.ErrorIs(t, ce, tt.err)
			assert.Equal(t, tt.err.Error(), ce.Error())
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_ParseLine(t *testing.T) {
	_, err := report.Parse("1\n2\nfoo")
	ce := Classify(err)
	assert.Contains(t, ce.Summary, "line 3")
}

func TestFormat(t *testing.T) {
	ce := Classify(fmt.Errorf("%w: report.csv", report.ErrFileNotFound))
	out := ce.Format()

	assert.Contains(t, out, "[FILESYSTEM] Report file could not be opened")
	assert.Contains(t, out, "Details: report file not found: report.csv")
	assert.Contains(t, out, "Suggested fixes:")
	assert.Contains(t, out, "  - Set report.path or REPORTREPAIR_INPUT")
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "search", CategorySearch.String())
	assert.Equal(t, "unknown", Category(99).String())
	assert.Equal(t, "[INTERRUPTED]", CategoryInterrupted.Prefix())
}
