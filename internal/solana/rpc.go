// Package solana is a minimal Solana JSON-RPC client used to read token
// mint and metadata accounts.
package solana

import "context"

// AccountReader reads raw Solana accounts.
type AccountReader interface {
	// GetAccountInfo returns the account or nil if it does not exist.
	GetAccountInfo(ctx context.Context, pubkey string) (*AccountInfo, error)
}

// AccountInfo represents Solana account information.
type AccountInfo struct {
	Lamports   uint64 `json:"lamports"`
	Owner      string `json:"owner"`
	Data       string `json:"data"` // base64 encoded
	Executable bool   `json:"executable"`
	RentEpoch  uint64 `json:"rentEpoch"`
}
