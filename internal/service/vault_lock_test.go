package service

import (
	"testing"

	"vaultcraft/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_vaultLocks(t *testing.T) {
	t.Run("second acquire on same vault fails", func(t *testing.T) {
		locks := newVaultLocks()
		vaultID := uuid.New()

		err := locks.Acquire(vaultID)
		require.NoError(t, err)

		err = locks.Acquire(vaultID)
		require.ErrorIs(t, err, domain.ErrVaultBusy)
	})

	t.Run("release frees the vault", func(t *testing.T) {
		locks := newVaultLocks()
		vaultID := uuid.New()

		require.NoError(t, locks.Acquire(vaultID))
		locks.Release(vaultID)
		require.NoError(t, locks.Acquire(vaultID))
	})

	t.Run("locks are per vault", func(t *testing.T) {
		locks := newVaultLocks()

		require.NoError(t, locks.Acquire(uuid.New()))
		require.NoError(t, locks.Acquire(uuid.New()))
	})
}
