package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/greenroom/pkg/errors"
)

func TestUpstreamStatus_TruncatesBody(t *testing.T) {
	err := errors.UpstreamStatus("TMDB", 503, strings.Repeat("a", 300))

	var appErr *errors.AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeUpstreamResponse, appErr.Type)
	assert.Equal(t, 503, appErr.StatusCode)
	assert.Len(t, appErr.Body, 200)
	assert.True(t, strings.HasPrefix(appErr.Message, "TMDB API error: 503 - aaa"))
}

func TestUpstreamStatus_ExcerptIsValidUTF8(t *testing.T) {
	body := strings.Repeat("a", 199) + "éééé"
	err := errors.UpstreamStatus("Ollama", 500, body)

	var appErr *errors.AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, strings.Repeat("a", 199), appErr.Body)
	assert.True(t, utf8.ValidString(appErr.Error()))

	err = errors.UpstreamStatus("Ollama", 500, "bad \xff\xfe body")
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "bad \uFFFD body", appErr.Body)
	assert.True(t, utf8.ValidString(appErr.Message))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	base := errors.UpstreamConnection("Ollama unreachable", stderrors.New("dial tcp: refused"))
	wrapped := fmt.Errorf("generate: %w", base)

	assert.True(t, errors.IsUpstreamConnection(wrapped))
	assert.False(t, errors.IsUpstreamResponse(wrapped))
	assert.Equal(t, errors.ErrorTypeUpstreamConnection, errors.TypeOf(wrapped))
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestTypeOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, errors.ErrorTypeInternal, errors.TypeOf(stderrors.New("boom")))
}

func TestWrapKeepsSentinel(t *testing.T) {
	sentinel := stderrors.New("unsupported")
	err := errors.Wrap(errors.ErrorTypeInvalidArgument, "no adapter", sentinel)

	assert.True(t, stderrors.Is(err, sentinel))
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, "INVALID_ARGUMENT: no adapter: unsupported", err.Error())
}

func TestConstructors(t *testing.T) {
	assert.True(t, errors.IsInvalidArgument(errors.InvalidArgumentf("page %d", 0)))
	assert.True(t, errors.IsSamplingFailure(errors.SamplingFailure("x", nil)))
	assert.True(t, errors.IsNotFound(errors.NotFound("tool")))
	assert.Equal(t, errors.ErrorTypeInternal, errors.TypeOf(errors.Internal("x")))
	assert.Equal(t, "NOT_FOUND: tool", errors.NotFound("tool").Error())
}
