package service

import (
	"fmt"
	"sync"

	"vaultcraft/internal/domain"

	"github.com/google/uuid"
)

// vaultLocks enforces the single-in-flight-per-vault discipline: a second
// operation against a vault while one is executing fails with ErrVaultBusy
// instead of interleaving with half-applied accounting.
type vaultLocks struct {
	mu       sync.Mutex
	inFlight map[uuid.UUID]bool
}

func newVaultLocks() *vaultLocks {
	return &vaultLocks{
		inFlight: map[uuid.UUID]bool{},
	}
}

func (l *vaultLocks) Acquire(vaultID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inFlight[vaultID] {
		return fmt.Errorf("%w: %s", domain.ErrVaultBusy, vaultID)
	}
	l.inFlight[vaultID] = true
	return nil
}

func (l *vaultLocks) Release(vaultID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, vaultID)
}
