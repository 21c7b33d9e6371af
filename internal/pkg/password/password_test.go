package password_test

import (
	"strings"
	"testing"

	"daycare-waitlist/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong horse"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "correct horse"), password.ErrInvalidPassword)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: password.ErrInvalidPassword},
		{name: "too short", input: "short", want: password.ErrPasswordTooShort},
		{name: "minimum length", input: strings.Repeat("a", password.MinLength)},
		{name: "maximum length", input: strings.Repeat("a", password.MaxLength)},
		{name: "over bcrypt limit", input: strings.Repeat("a", password.MaxLength+1), want: password.ErrInvalidPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.Validate(tc.input)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
