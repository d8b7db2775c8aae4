package contract

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, NotFoundError, ClassifyStatus(http.StatusNotFound))
	assert.Equal(t, RateLimitError, ClassifyStatus(http.StatusForbidden))
	assert.Equal(t, RateLimitError, ClassifyStatus(http.StatusTooManyRequests))
	assert.Equal(t, GenericError, ClassifyStatus(http.StatusInternalServerError))
	assert.Equal(t, GenericError, ClassifyStatus(http.StatusUnauthorized))
	assert.Equal(t, GenericError, ClassifyStatus(0))
}

func TestQueryErrorMessages(t *testing.T) {
	assert.Equal(t, NotFoundMessage, NewStatusError(404, errors.New("missing")).Message())
	assert.Equal(t, RateLimitMessage, NewStatusError(403, errors.New("quota")).Message())
	assert.Equal(t, GenericMessage, NewStatusError(502, errors.New("gateway")).Message())
}

func TestAsQueryError(t *testing.T) {
	assert.Nil(t, AsQueryError(nil))

	inner := NewStatusError(404, errors.New("missing"))
	wrapped := fmt.Errorf("fetch user: %w", inner)
	qe := AsQueryError(wrapped)
	require.NotNil(t, qe)
	assert.Same(t, inner, qe)

	plain := AsQueryError(errors.New("dial tcp: refused"))
	assert.Equal(t, GenericError, plain.Kind)
	assert.Equal(t, 0, plain.Status)
	assert.Contains(t, plain.Error(), "refused")
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, RateLimitMessage, UserMessage(fmt.Errorf("wrap: %w", NewStatusError(403, errors.New("x")))))
	assert.Equal(t, GenericMessage, UserMessage(errors.New("boom")))
}

func TestQueryErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	qe := NewStatusError(500, cause)
	assert.ErrorIs(t, qe, cause)
	assert.Contains(t, qe.Error(), "status 500")
}
