package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		userID := uuid.New()

		tokenString, err := manager.Generate(userID, "alice@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)

		claims, err := manager.Parse(tokenString)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)

		tokenString, err := other.Generate(uuid.New(), "bob@example.com")
		require.NoError(t, err)

		_, err = manager.Parse(tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)

		tokenString, err := expired.Generate(uuid.New(), "carol@example.com")
		require.NoError(t, err)

		_, err = manager.Parse(tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.Parse("not-a-token")
		assert.Error(t, err)
	})
}
