package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPasswordStrong(t *testing.T) {
	strong := []string{
		"Str0ng!pass",
		"Another1@",
		"xY9?abcdef",
	}
	for _, p := range strong {
		assert.True(t, IsPasswordStrong(p), "expected %q to be strong", p)
	}

	weak := []string{
		"",
		"short1!",       // under 8 chars
		"alllower1!",    // no uppercase
		"ALLUPPER1!",    // no lowercase
		"NoNumbers!",    // no digit
		"NoSpecials12a", // no special char
	}
	for _, p := range weak {
		assert.False(t, IsPasswordStrong(p), "expected %q to be weak", p)
	}
}
