package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{InvalidArg("bad"), 400},
		{Unauthorized("who"), 401},
		{Forbidden("no"), 403},
		{NotFound("gone"), 404},
		{New(CodeAlreadyExists, "dup"), 409},
		{Internal("boom"), 500},
		{Unavailable("later"), 501},
		{stderrors.New("plain"), 500},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusOf(tc.err), "for %v", tc.err)
	}
}

func TestSentinelMatchingSurvivesWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("resolving user: %w", ErrUserNotFound)
	assert.ErrorIs(t, wrapped, ErrUserNotFound)
	assert.Equal(t, 404, StatusOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection refused")
	err := Wrap(CodeInternal, "query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDistinctSentinelsDoNotMatch(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, ErrUserNotFound, ErrMatchNotFound)
	assert.NotErrorIs(t, ErrRoomAccessDenied, ErrNotParticipant)
}
