package taglex

import (
	"errors"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTokenizeError tests tokenize error creation with position context
func TestNewTokenizeError(t *testing.T) {
	t.Run("with cause error", func(t *testing.T) {
		pos := Position{Offset: 50, Line: 5, Column: 10}
		causeErr := errors.New("underlying grammar issue")
		err := NewTokenizeError(ErrMsgIdentifierParse, "user:x", pos, causeErr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgIdentifierParse)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		line, ok := customErr.GetMetadata(MetaKeyLine)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(pos.Line), line)

		column, ok := customErr.GetMetadata(MetaKeyColumn)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(pos.Column), column)

		offset, ok := customErr.GetMetadata(MetaKeyOffset)
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(pos.Offset), offset)

		body, ok := customErr.GetMetadata(MetaKeyBody)
		assert.True(t, ok)
		assert.Equal(t, "user:x", body)

		assert.True(t, errors.Is(err, causeErr))
	})

	t.Run("without cause error", func(t *testing.T) {
		pos := Position{Offset: 0, Line: 1, Column: 1}
		err := NewTokenizeError(ErrMsgUnknownTag, "[nope]", pos, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownTag)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))

		line, ok := customErr.GetMetadata(MetaKeyLine)
		assert.True(t, ok)
		assert.Equal(t, "1", line)
	})
}

// TestNewUnknownTagError tests unknown tag error creation
func TestNewUnknownTagError(t *testing.T) {
	err := NewUnknownTagError("[mystery]")

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownTag)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	body, ok := customErr.GetMetadata(MetaKeyBody)
	assert.True(t, ok)
	assert.Equal(t, "[mystery]", body)
}

// TestNewCaptureMissingError tests the defensive capture error
func TestNewCaptureMissingError(t *testing.T) {
	err := NewCaptureMissingError("user:5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgCaptureMissing)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	body, ok := customErr.GetMetadata(MetaKeyBody)
	assert.True(t, ok)
	assert.Equal(t, "user:5", body)
}

// TestNewIdentifierParseError tests identifier parse error creation
func TestNewIdentifierParseError(t *testing.T) {
	_, causeErr := strconv.ParseUint("99999999999999999999", 10, 64)
	require.Error(t, causeErr)

	err := NewIdentifierParseError("user:99999999999999999999", causeErr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgIdentifierParse)
	assert.True(t, errors.Is(err, strconv.ErrRange))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	body, ok := customErr.GetMetadata(MetaKeyBody)
	assert.True(t, ok)
	assert.Equal(t, "user:99999999999999999999", body)
}
