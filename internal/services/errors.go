package services

import (
	"errors"
	"fmt"
)

// Lock errors. ErrLockBusy and ErrLockTimeout both match ErrLockAcquisitionFailed.
var (
	ErrInvalidLockKey  = errors.New("lock key cannot be empty")
	ErrInvalidLockTTL  = errors.New("lock ttl must be positive")
	ErrInvalidLockWait = errors.New("lock wait must not be negative")

	ErrLockAcquisitionFailed = errors.New("lock acquisition failed")
	ErrLockBusy              = fmt.Errorf("%w: lock is busy", ErrLockAcquisitionFailed)
	ErrLockTimeout           = fmt.Errorf("%w: lock wait timed out", ErrLockAcquisitionFailed)
)

// Business errors. Everything wrapping ErrStateConflict is a client-visible rejection.
var (
	ErrStateConflict        = errors.New("state conflict")
	ErrDepositNotPending    = fmt.Errorf("%w: deposit request is not pending", ErrStateConflict)
	ErrWalletNotActive      = fmt.Errorf("%w: wallet is not active", ErrStateConflict)
	ErrPendingDepositExists = fmt.Errorf("%w: a pending deposit request already exists", ErrStateConflict)
	ErrWalletAlreadyExists  = fmt.Errorf("%w: wallet already exists", ErrStateConflict)

	ErrDepositRequestNotFound = errors.New("deposit request not found")
	ErrWalletNotFound         = errors.New("wallet not found")
	ErrInvalidDepositAmount   = errors.New("invalid deposit amount")
	ErrInvalidTransactionCode = errors.New("transaction code cannot be empty")
	ErrForbidden              = errors.New("operation not allowed for this user")
	ErrInvalidUserID          = errors.New("invalid user id")
)

// Ledger errors
var (
	// ErrLedgerInvariantViolation is a contract error detected before any write.
	ErrLedgerInvariantViolation = errors.New("ledger invariant violation")
)
