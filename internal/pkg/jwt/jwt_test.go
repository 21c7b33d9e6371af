package jwt

import (
	"testing"
	"time"

	"daycare-waitlist/internal/domain/account"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, account.KindProvider)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.AccountID)
	assert.Equal(t, "provider", claims.Kind)
}

func TestValidateToken_Failures(t *testing.T) {
	svc := NewService("secret", time.Hour)
	token, err := svc.GenerateToken(uuid.New(), account.KindClient)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewService("secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		old, err := past.GenerateToken(uuid.New(), account.KindClient)
		require.NoError(t, err)

		_, err = past.ValidateToken(old)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
