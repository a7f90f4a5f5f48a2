// Package wallet models the session bridge between the custodial wallet and
// the widget core: it pushes connection updates in and accepts ordered
// transaction batches out. Signing and broadcast stay on the wallet side;
// submission is fire and forget.
package wallet

import (
	"context"
	"log/slog"
	"sync"

	"safelend/lend"
)

// Bridge delivers wallet session updates (owner address, network, native
// balance) as they happen.
type Bridge interface {
	Updates() <-chan lend.WalletContext
}

// Submitter accepts an ordered transaction batch for signing and broadcast.
// The core never observes receipts.
type Submitter interface {
	Submit(ctx context.Context, batch []lend.TransactionRequest) error
}

// MemoryBridge is a channel-backed Bridge for in-process wiring and tests.
type MemoryBridge struct {
	mu      sync.Mutex
	updates chan lend.WalletContext
	closed  bool
}

// NewMemoryBridge creates a bridge with a small update buffer.
func NewMemoryBridge() *MemoryBridge {
	return &MemoryBridge{updates: make(chan lend.WalletContext, 4)}
}

func (b *MemoryBridge) Updates() <-chan lend.WalletContext {
	return b.updates
}

// Push delivers a session update. Pushes after Close are dropped.
func (b *MemoryBridge) Push(wc lend.WalletContext) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.updates <- wc
}

// Close ends the update stream.
func (b *MemoryBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.updates)
	}
}

// LogSubmitter logs batches instead of broadcasting them. Stands in for a
// real wallet connection in the daemon and in tests.
type LogSubmitter struct {
	Log *slog.Logger
}

func (s *LogSubmitter) Submit(_ context.Context, batch []lend.TransactionRequest) error {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	for i, tx := range batch {
		log.Info("submitting transaction",
			"index", i,
			"of", len(batch),
			"to", tx.To.Hex(),
			"data_len", len(tx.Data),
		)
	}
	return nil
}
