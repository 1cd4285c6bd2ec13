package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type foreignKey string

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{"set", WithUserID(context.Background(), 42), 42, true},
		{"overwritten", WithUserID(WithUserID(context.Background(), 1), 2), 2, true},
		{"missing", context.Background(), 0, false},
		{"string value", context.WithValue(context.Background(), UserIDCtxKey, "42"), 0, false},
		{"foreign key type", context.WithValue(context.Background(), foreignKey("userID"), int64(42)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestUserIDCtxKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
