package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDContext(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := GetRequestIDFromContext(WithRequestID(context.Background(), "req-1"))
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)
	assert.Equal(t, "requestID", RequestIDCtxKey.String())
}

func TestNewRequestID_IsV7(t *testing.T) {
	first := NewRequestID()
	second := NewRequestID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}
