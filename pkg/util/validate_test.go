package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	for _, ok := range []string{"ana@example.com", "a.b+tag@mail.example.org"} {
		assert.NoError(t, IsEmail(ok), ok)
	}
	for _, bad := range []string{"", "ana", "ana@localhost", "Ana <ana@example.com>", "ana@example.", "ana@@example.com", " ana@example.com"} {
		assert.ErrorIs(t, IsEmail(bad), ErrInvalidEmail, bad)
	}
}
