package repository

import (
	"context"
)

// AccessGateRepository is the entrance allowlist check, consumed as a pure
// external predicate. The proof is an opaque merkle path supplied by the
// caller; tree construction and verification both live behind the gate.
type AccessGateRepository interface {
	IsEligible(ctx context.Context, account string, proof []string) (bool, error)
}
