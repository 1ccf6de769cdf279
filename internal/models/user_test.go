package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsZero(t *testing.T) {
	assert.True(t, User{}.IsZero())
	assert.False(t, User{Email: "a@b.com"}.IsZero())
	assert.False(t, User{ID: 7}.IsZero())
}

func TestUser_Merge(t *testing.T) {
	tests := []struct {
		name  string
		base  User
		other User
		want  User
	}{
		{
			name:  "other overrides both fields",
			base:  User{Email: "old@b.com", ID: 1},
			other: User{Email: "new@b.com", ID: 2},
			want:  User{Email: "new@b.com", ID: 2},
		},
		{
			name:  "empty email keeps current",
			base:  User{Email: "a@b.com", ID: 1},
			other: User{ID: 9},
			want:  User{Email: "a@b.com", ID: 9},
		},
		{
			name:  "zero other changes nothing",
			base:  User{Email: "a@b.com", ID: 7},
			other: User{},
			want:  User{Email: "a@b.com", ID: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Merge(tt.other))
		})
	}
}
