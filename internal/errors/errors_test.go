package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/Aman-CERP/sitequery/internal/errors"
)

func TestNew_DerivesCategoryAndSeverityFromCode(t *testing.T) {
	// Given a decode error code
	// When constructing a CoreError
	err := coreerrors.New(coreerrors.ErrCodeDecodeShard, "bad shard", nil)

	// Then category and severity are derived from the code prefix
	assert.Equal(t, coreerrors.CategoryValidation, err.Category)
	assert.Equal(t, coreerrors.SeverityError, err.Severity)
}

func TestCoreError_Is_MatchesByCode(t *testing.T) {
	// Given two errors constructed with the same code
	a := coreerrors.New(coreerrors.ErrCodeFileNotFound, "missing a", nil)
	b := coreerrors.New(coreerrors.ErrCodeFileNotFound, "missing b", nil)

	// When compared with errors.Is
	// Then they are considered equal regardless of message
	assert.True(t, stderrors.Is(a, b))
}

func TestCoreError_Unwrap_ReturnsCause(t *testing.T) {
	// Given an error wrapping a cause
	cause := stderrors.New("disk read failed")
	err := coreerrors.Wrap(coreerrors.ErrCodeFileNotFound, cause)
	require.NotNil(t, err)

	// When unwrapped
	// Then the original cause is returned
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestDecodeError_CarriesOffsetDetail(t *testing.T) {
	// Given a decode failure at a specific byte offset
	err := coreerrors.DecodeError("unexpected array length", 42, nil)

	// Then the offset is recorded as a detail
	assert.Equal(t, "42", err.Details["offset"])
	assert.Equal(t, coreerrors.ErrCodeDecodeShard, err.Code)
}

func TestIsFatal_OnlyTrueForFatalSeverity(t *testing.T) {
	// Given a disk-full error (fatal) and a decode error (not fatal)
	fatal := coreerrors.New(coreerrors.ErrCodeDiskFull, "no space left", nil)
	notFatal := coreerrors.New(coreerrors.ErrCodeDecodeShard, "bad shard", nil)

	// Then only the disk-full error reports fatal
	assert.True(t, coreerrors.IsFatal(fatal))
	assert.False(t, coreerrors.IsFatal(notFatal))
}

func TestWithDetailAndSuggestion_Chain(t *testing.T) {
	// Given a base error
	err := coreerrors.New(coreerrors.ErrCodeInvalidInput, "bad filter document", nil)

	// When chaining detail and suggestion
	err = err.WithDetail("filter", "language").WithSuggestion("check the JSON shape")

	// Then both are present
	assert.Equal(t, "language", err.Details["filter"])
	assert.Equal(t, "check the JSON shape", err.Suggestion)
}

func TestFormatForCLI_IncludesCodeAndSuggestion(t *testing.T) {
	// Given an error with a suggestion
	err := coreerrors.New(coreerrors.ErrCodeConfigInvalid, "bad config", nil).
		WithSuggestion("check sitequery.yaml")

	// When formatted for CLI
	out := coreerrors.FormatForCLI(err)

	// Then it contains the message, hint, and code
	assert.Contains(t, out, "bad config")
	assert.Contains(t, out, "check sitequery.yaml")
	assert.Contains(t, out, coreerrors.ErrCodeConfigInvalid)
}

func TestFormatJSON_RoundTripsFields(t *testing.T) {
	// Given an error with a cause
	cause := stderrors.New("root cause")
	err := coreerrors.New(coreerrors.ErrCodeInternal, "wrapped", cause)

	// When formatted as JSON
	b, jerr := coreerrors.FormatJSON(err)

	// Then marshalling succeeds and contains the cause text
	require.NoError(t, jerr)
	assert.Contains(t, string(b), "root cause")
}
