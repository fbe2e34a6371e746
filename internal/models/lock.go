package models

import "time"

// LockStatus is the outcome of a lock acquisition attempt.
type LockStatus int

// Lock acquisition outcomes
const (
	LockAcquired LockStatus = iota + 1 // Lease granted, see AcquireResult.Lease
	LockBusy                           // Key held by someone else (single attempt)
	LockTimeout                        // No attempt succeeded before the wait deadline
)

// String returns the outcome name.
func (s LockStatus) String() string {
	switch s {
	case LockAcquired:
		return "acquired"
	case LockBusy:
		return "busy"
	case LockTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Lease is a held lock: the store maps Key to Token until TTL elapses.
type Lease struct {
	Key   string        // Key as passed by the caller, without namespace
	Token string        // Owner token required to release the lease
	TTL   time.Duration // Expiry set on the store entry
}

// AcquireResult is Acquired(lease) | Busy | Timeout.
type AcquireResult struct {
	Status LockStatus
	Lease  *Lease // Set only when Status is LockAcquired
}

// Acquired reports whether the attempt produced a lease.
func (r AcquireResult) Acquired() bool {
	return r.Status == LockAcquired && r.Lease != nil
}

// ReleaseStatus is the outcome of a lock release.
type ReleaseStatus int

// Lock release outcomes
const (
	LockReleased ReleaseStatus = iota + 1 // Token matched and the key was deleted
	LockNotOwner                          // Key missing or held under another token
)

// String returns the outcome name.
func (s ReleaseStatus) String() string {
	switch s {
	case LockReleased:
		return "released"
	case LockNotOwner:
		return "not_owner"
	default:
		return "unknown"
	}
}

// LockView is the operator view of a wallet owner lock.
type LockView struct {
	UserID   int64  `json:"user_id"`            // Wallet owner the lock serializes
	Key      string `json:"key"`                // Lock key without namespace
	Held     bool   `json:"held"`               // Whether the key existed when checked
	Released bool   `json:"released,omitempty"` // Set by a forced release that deleted the key
}
