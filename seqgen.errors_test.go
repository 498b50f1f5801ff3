package seqgen

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-seqgen/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	pos := Position{Offset: 12, Line: 2, Column: 5}
	cause := internal.NewStructureError(internal.ConstructMarker, internal.ErrMsgMultipleMarkers, pos)

	err := wrapError(ErrMsgExpansionFailed, cause)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgExpansionFailed)
	assert.True(t, errors.Is(err, cause))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	metadata := map[string]string{
		MetaKeyKind:      "structure",
		MetaKeyConstruct: internal.ConstructMarker,
		MetaKeyLine:      "2",
		MetaKeyColumn:    "5",
		MetaKeyOffset:    "12",
	}
	for key, expected := range metadata {
		value, ok := customErr.GetMetadata(key)
		assert.True(t, ok, key)
		assert.Equal(t, expected, value, key)
	}
}

func TestWrapError_PlainCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapError(ErrMsgExpansionFailed, cause)

	assert.True(t, errors.Is(err, cause))
	_, ok := AsDiagnostic(err)
	assert.False(t, ok)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeSyntax, errorCode(ErrorKindSyntax))
	assert.Equal(t, ErrCodeRange, errorCode(ErrorKindRange))
	assert.Equal(t, ErrCodeStructure, errorCode(ErrorKindStructure))
}

func TestAsDiagnostic(t *testing.T) {
	_, err := MustNew().ExpandSource("N in 0..2 {\n  a #(b)\n}")
	require.Error(t, err)

	diag, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, ErrorKindStructure, diag.Kind)
	assert.Equal(t, internal.ConstructMarker, diag.Construct)
	assert.Equal(t, Position{Offset: 16, Line: 2, Column: 5}, diag.Position)
	assert.Equal(t, "structure error: "+diag.Message+" at line 2, column 5", diag.String())

	_, ok = AsDiagnostic(nil)
	assert.False(t, ok)

	_, ok = AsDiagnostic(NewConfigError(ErrMsgInvalidLimit, ConfigFieldMaxDepth, "-1", nil))
	assert.False(t, ok)
}
