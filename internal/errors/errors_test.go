package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := Parsing("cannot read scenario", stderrors.New("unexpected EOF"))
	assert.Equal(t, "[PARSING_ERROR] cannot read scenario: unexpected EOF", err.Error())
	assert.True(t, err.Is(TypeParsing))
}

func TestUnknownValueSuggestion(t *testing.T) {
	err := UnknownValue("cooling upgrade", "vfr", "vrf")
	assert.Contains(t, err.Error(), `unknown cooling upgrade "vfr"`)
	assert.Contains(t, err.Error(), `did you mean "vrf"?`)
	assert.Equal(t, []string{"field", "suggestion", "value"}, err.ContextKeys())

	bare := UnknownValue("roof type", "dome", "")
	assert.NotContains(t, bare.Error(), "did you mean")
}

func TestIsTypeFollowsWrapping(t *testing.T) {
	inner := NotFound("scenario", "office.hcl")
	wrapped := fmt.Errorf("estimate: %w", inner)

	require.True(t, IsType(wrapped, TypeNotFound))
	assert.False(t, IsType(wrapped, TypeInput))
	assert.False(t, IsType(stderrors.New("plain"), TypeNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Config("cannot write config", cause)
	assert.ErrorIs(t, err, cause)
}
