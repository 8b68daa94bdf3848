package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost используется в тестах для ускорения выполнения
const testCost = bcrypt.MinCost

func TestBCryptHasher_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "hunter2hunter2",
			wantErr:  false,
		},
		{
			name:     "Password with special characters",
			password: "p@ssw0rd!#$%",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true,
		},
	}

	hasher := NewBCryptHasher(testCost)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, hash)
				// Проверяем, что хеш валидный bcrypt
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
			}
		})
	}
}

func TestBCryptHasher_Check(t *testing.T) {
	hasher := NewBCryptHasher(testCost)
	password := "mypassword123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	t.Run("Correct password", func(t *testing.T) {
		assert.NoError(t, hasher.Check(hash, password))
	})

	t.Run("Wrong password", func(t *testing.T) {
		err := hasher.Check(hash, "wrongpassword")
		assert.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("Empty password", func(t *testing.T) {
		err := hasher.Check(hash, "")
		assert.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("Empty hash", func(t *testing.T) {
		err := hasher.Check("", password)
		assert.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("Invalid hash format", func(t *testing.T) {
		err := hasher.Check("invalid-hash", password)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrMismatch)
	})
}

func TestBCryptHasher_InvalidCost(t *testing.T) {
	// Слишком низкая стоимость должна быть заменена на DefaultCost
	hasher := NewBCryptHasher(0)
	assert.Equal(t, DefaultCost, hasher.cost)

	// Слишком высокая стоимость должна быть заменена на DefaultCost
	hasher = NewBCryptHasher(100)
	assert.Equal(t, DefaultCost, hasher.cost)
}

func TestBCryptHasher_UniqueHashes(t *testing.T) {
	hasher := NewBCryptHasher(testCost)
	password := "testpassword"

	// Один и тот же пароль должен давать разные хеши (из-за соли)
	hash1, err := hasher.Hash(password)
	require.NoError(t, err)

	hash2, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)

	// Но оба должны проходить проверку
	assert.NoError(t, hasher.Check(hash1, password))
	assert.NoError(t, hasher.Check(hash2, password))
}

func BenchmarkBCryptHasher_Hash(b *testing.B) {
	hasher := NewBCryptHasher(testCost)
	password := "testpassword"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hasher.Hash(password)
	}
}
