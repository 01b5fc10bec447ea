// Package stub provides an in-memory solana.AccountReader for tests.
package stub

import (
	"context"
	"encoding/base64"
	"sync"

	"solana-signal-lab/internal/solana"
)

// AccountReader serves accounts from a map.
type AccountReader struct {
	mu       sync.Mutex
	accounts map[string]*solana.AccountInfo
	calls    map[string]int

	// Err, if set, is returned by every call.
	Err error
}

// NewAccountReader creates an empty stub reader.
func NewAccountReader() *AccountReader {
	return &AccountReader{
		accounts: make(map[string]*solana.AccountInfo),
		calls:    make(map[string]int),
	}
}

var _ solana.AccountReader = (*AccountReader)(nil)

// SetAccount stores raw account bytes under pubkey.
func (r *AccountReader) SetAccount(pubkey string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[pubkey] = &solana.AccountInfo{
		Data: base64.StdEncoding.EncodeToString(data),
	}
}

// GetAccountInfo returns the stored account or nil.
func (r *AccountReader) GetAccountInfo(_ context.Context, pubkey string) (*solana.AccountInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[pubkey]++
	if r.Err != nil {
		return nil, r.Err
	}
	info, ok := r.accounts[pubkey]
	if !ok {
		return nil, nil
	}
	cp := *info
	return &cp, nil
}

// Calls reports how many times pubkey was requested.
func (r *AccountReader) Calls(pubkey string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[pubkey]
}
