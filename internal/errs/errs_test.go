package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status    int
		wantKind  Kind
		retryable bool
	}{
		{500, ServerError, true},
		{502, ServerError, true},
		{503, ServerError, true},
		{404, NotFound, false},
		{429, RateLimited, true},
		{401, AuthError, false},
		{400, ValidationError, false},
		{409, Unknown, true},
		{402, Unknown, true},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			ce := ClassifyStatus(tc.status, "")
			assert.Equal(t, tc.wantKind, ce.Kind)
			assert.Equal(t, tc.retryable, ce.Retryable)
			assert.Equal(t, tc.status, ce.HTTPStatus)
		})
	}
}

func TestClassifyStatus_ServerMessage(t *testing.T) {
	t.Parallel()
	ce := ClassifyStatus(400, "email is malformed")
	assert.Equal(t, "email is malformed", ce.Message)
	assert.Contains(t, ce.Error(), "HTTP 400")
}

func TestClassifyTransport(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		err     error
		offline bool
		want    Kind
	}{
		{"offline wins", errors.New("connection refused"), true, Offline},
		{"deadline exceeded", context.DeadlineExceeded, false, Timeout},
		{"timeout message", errors.New("dial tcp: i/o timeout"), false, Timeout},
		{"connection refused", errors.New("dial tcp 127.0.0.1:9: connection refused"), false, NetworkError},
		{"dns failure", errors.New("lookup api.example: no such host"), false, NetworkError},
		{"generic network error", errors.New("network error"), false, NetworkError},
		{"anything else", errors.New("mystery"), false, Unknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyTransport(tc.err, tc.offline).Kind)
		})
	}
}

func TestKindRetryable(t *testing.T) {
	t.Parallel()
	for _, k := range []Kind{Offline, Timeout, NetworkError, ServerError, RateLimited, Unknown} {
		assert.True(t, k.Retryable(), k.String())
	}
	for _, k := range []Kind{NotFound, AuthError, ValidationError} {
		assert.False(t, k.Retryable(), k.String())
	}
}

func TestIsTransient(t *testing.T) {
	t.Parallel()
	require.True(t, IsTransient(ClassifyTransport(errors.New("connection refused"), false)))
	require.True(t, IsTransient(ClassifyTransport(context.DeadlineExceeded, false)))

	// Offline is handled by fallback, not by resending.
	require.False(t, IsTransient(ClassifyTransport(errors.New("connection refused"), true)))
	// HTTP-status failures are never transient at the transport level.
	require.False(t, IsTransient(ClassifyStatus(503, "")))
	// Unclassified errors are not resent.
	require.False(t, IsTransient(errors.New("plain")))
}

func TestFallbackEligible(t *testing.T) {
	t.Parallel()
	assert.True(t, FallbackEligible(ClassifyStatus(500, "")))
	assert.True(t, FallbackEligible(ClassifyTransport(context.DeadlineExceeded, false)))
	assert.True(t, FallbackEligible(ClassifyTransport(errors.New("x"), true)))
	assert.False(t, FallbackEligible(ClassifyStatus(404, "")))
	assert.False(t, FallbackEligible(ClassifyStatus(401, "")))
	assert.False(t, FallbackEligible(errors.New("plain")))
}

func TestUnwrapAndKindOf(t *testing.T) {
	t.Parallel()
	under := errors.New("root cause")
	ce := New(NetworkError, "network error", under)
	require.ErrorIs(t, ce, under)

	wrapped := fmt.Errorf("fetch venues: %w", ce)
	assert.Equal(t, NetworkError, KindOf(wrapped))
	assert.Equal(t, 0, StatusOf(wrapped))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, k := range []Kind{Offline, Timeout, NetworkError, ServerError, NotFound, RateLimited, AuthError, ValidationError, Unknown} {
		msg := UserMessage(New(k, "x", nil))
		require.NotEmpty(t, msg)
		seen[msg] = true
	}
	// Each kind gets a distinct message.
	assert.Len(t, seen, 9)
}
