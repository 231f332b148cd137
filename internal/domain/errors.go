package domain

import "errors"

// Sentinel errors for the vault engine. Callers wrap these with %w so the api
// layer can map them onto response codes with errors.Is.
var (
	// input errors - rejected before any state mutation or external call
	ErrInvalidAmount  = errors.New("amount must be a positive whole number of base units")
	ErrUnknownVault   = errors.New("no vault deployed for asset")
	ErrUnknownAsset   = errors.New("unknown asset")
	ErrDuplicateVault = errors.New("vault already deployed for asset")

	// authorization errors - rejected before mutation
	ErrNotOwner              = errors.New("caller does not own position")
	ErrNotEligible           = errors.New("caller is not eligible to enter")
	ErrInsufficientBalance   = errors.New("insufficient asset balance")
	ErrInsufficientAllowance = errors.New("insufficient asset allowance")

	// accounting
	ErrInsufficientShares = errors.New("insufficient shares")

	// external protocol errors - the whole transaction fails, no partial credit
	ErrSlippageExceeded = errors.New("swap output below minimum out")
	ErrRouteUnavailable = errors.New("no direct pool path for pair")

	// ErrStrategyDivestShortfall means the strategy could not return the
	// requested amount to the vault. The surrounding withdrawal aborts
	// entirely instead of under-paying the withdrawer.
	ErrStrategyDivestShortfall = errors.New("strategy divest returned less than requested")

	// ErrVaultBusy rejects a second call against a vault while one is
	// already executing.
	ErrVaultBusy = errors.New("vault has an operation in flight")
)
