package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	err := New(CodeInvalidWeight, "negative weight")
	assert.Equal(t, "[INVALID_WEIGHT] negative weight", err.Error())

	withField := NewWithField(CodeOutOfRangeVertex, "target out of range", "targets[3]")
	assert.Equal(t, "[OUT_OF_RANGE_VERTEX] target out of range (field: targets[3])", withField.Error())
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, CodeInternalInvariant, "bucket cursor regressed")
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsAndCode(t *testing.T) {
	err := New(CodeResourceExhaustion, "bucket array allocation failed")
	assert.True(t, Is(err, CodeResourceExhaustion))
	assert.False(t, Is(err, CodeInvalidShape))
	assert.Equal(t, CodeResourceExhaustion, Code(err))
	assert.Equal(t, CodeInternalInvariant, Code(errors.New("plain")))
}

func TestResultCode_NonZeroForEveryKnownCode(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidShape, CodeOutOfRangeVertex, CodeInvalidWeight,
		CodeResourceExhaustion, CodeInternalInvariant,
	}
	seen := map[int32]bool{}
	for _, c := range codes {
		rc := ResultCode(c)
		assert.NotZero(t, rc)
		seen[rc] = true
	}
	assert.Len(t, seen, len(codes))
}

func TestWithDetailsAndField(t *testing.T) {
	err := New(CodeInvalidShape, "bad csr").
		WithField("offsets").
		WithDetails("n", 4)
	assert.Equal(t, "offsets", err.Field)
	assert.Equal(t, 4, err.Details["n"])
}
