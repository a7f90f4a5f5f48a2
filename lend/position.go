package lend

import (
	"context"
	"log/slog"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"safelend/fixedpoint"
)

// nativeDecimals is the base-unit scale of the network's native coin.
const nativeDecimals = 18

// Service owns the selected asset and its PositionSnapshot. External events
// drive a fixed pipeline: SelectAsset resets the snapshot synchronously,
// Refresh dispatches the contract reads and publishes a complete new snapshot
// only when every read for the still-selected asset has arrived. Snapshots
// are replaced wholesale, never mutated field by field.
type Service struct {
	log     *slog.Logger
	factory HandleFactory
	metrics *positionMetrics

	blocksPerDay int64

	mu       sync.RWMutex
	wallet   WalletContext
	asset    Asset
	hasAsset bool
	market   MarketHandle
	token    TokenHandle
	snapshot PositionSnapshot
	subs     []chan PositionSnapshot
}

// NewService constructs a position service binding contract handles through
// factory.
func NewService(factory HandleFactory, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		log:          log,
		factory:      factory,
		metrics:      Metrics(),
		blocksPerDay: BlocksPerDay,
	}
}

// SetBlocksPerDay overrides the annualisation constant. Intended for networks
// with a different block cadence.
func (s *Service) SetBlocksPerDay(blocks int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if blocks > 0 {
		s.blocksPerDay = blocks
	}
}

// SetWalletContext installs the latest session details pushed by the wallet
// bridge. The caller follows up with Refresh.
func (s *Service) SetWalletContext(wallet WalletContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallet = wallet
}

// SelectAsset switches the widget to asset. The snapshot is reset to neutral
// values and fresh contract handles are bound before this returns, so values
// belonging to the previous asset can never be read under the new asset's
// label.
func (s *Service) SelectAsset(asset Asset) {
	s.mu.Lock()
	s.asset = asset
	s.hasAsset = true
	s.market = s.factory.Market(asset)
	s.token = s.factory.Token(asset)
	s.snapshot = NeutralSnapshot(asset)
	snap := s.snapshot
	subs := append([]chan PositionSnapshot(nil), s.subs...)
	s.mu.Unlock()

	notify(subs, snap)
}

// Snapshot returns the current published snapshot.
func (s *Service) Snapshot() PositionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// SelectedAsset returns the asset the service is currently bound to.
func (s *Service) SelectedAsset() (Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.asset, s.hasAsset
}

// Handles returns the currently bound contract handles for batch building.
func (s *Service) Handles() (MarketHandle, TokenHandle) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.market, s.token
}

// Subscribe registers a snapshot listener. Slow listeners miss intermediate
// snapshots rather than blocking the publisher.
func (s *Service) Subscribe() <-chan PositionSnapshot {
	ch := make(chan PositionSnapshot, 8)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

type refreshCycle struct {
	id     string
	asset  Asset
	wallet WalletContext
	market MarketHandle
	token  TokenHandle
}

// Refresh reads the supply rate, wallet balance and locked balance for the
// currently selected asset and publishes a new snapshot. The three reads are
// dispatched concurrently and joined; the result is dropped if the selected
// asset changed while they were in flight. A failed read aborts the cycle
// without touching the snapshot and is not retried.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.RLock()
	cycle := refreshCycle{
		id:     uuid.NewString(),
		asset:  s.asset,
		wallet: s.wallet,
		market: s.market,
		token:  s.token,
	}
	hasAsset := s.hasAsset
	blocksPerDay := s.blocksPerDay
	s.mu.RUnlock()

	if !hasAsset || cycle.market == nil {
		return nil
	}
	// Handles bound for a previously selected asset are skipped outright.
	if cycle.market.Address() != cycle.asset.CTokenAddr {
		s.metrics.ObserveStaleDrop()
		return nil
	}
	if !cycle.asset.Native && (cycle.token == nil || cycle.token.Address() != cycle.asset.TokenAddr) {
		s.metrics.ObserveStaleDrop()
		return nil
	}

	var (
		wg            sync.WaitGroup
		rate          *big.Int
		walletBalance string
		locked        *big.Int
		rateErr       error
		walletErr     error
		lockedErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rate, rateErr = cycle.market.SupplyRatePerBlock(ctx)
	}()
	go func() {
		defer wg.Done()
		walletBalance, walletErr = s.readWalletBalance(ctx, cycle)
	}()
	go func() {
		defer wg.Done()
		locked, lockedErr = cycle.market.BalanceOfUnderlying(ctx, cycle.wallet.Owner)
	}()
	wg.Wait()

	if rateErr != nil {
		return s.abortRefresh(cycle, "supply_rate", rateErr)
	}
	if walletErr != nil {
		return s.abortRefresh(cycle, "wallet_balance", walletErr)
	}
	if lockedErr != nil {
		return s.abortRefresh(cycle, "locked_balance", lockedErr)
	}

	apy, err := AnnualYield(rate.String(), blocksPerDay)
	if err != nil {
		return s.abortRefresh(cycle, "annual_yield", err)
	}

	snap := PositionSnapshot{
		Asset:              cycle.asset,
		RawWalletBalance:   walletBalance,
		RawLockedBalance:   locked.String(),
		SupplyRatePerBlock: rate.String(),
		SupplyAPY:          apy,
	}

	s.mu.Lock()
	if s.asset.CTokenAddr != cycle.asset.CTokenAddr || s.asset.TokenAddr != cycle.asset.TokenAddr {
		s.mu.Unlock()
		s.metrics.ObserveStaleDrop()
		s.metrics.ObserveRefresh("stale")
		s.log.Debug("dropping stale refresh", "cycle", cycle.id, "asset", cycle.asset.ID)
		return nil
	}
	s.snapshot = snap
	subs := append([]chan PositionSnapshot(nil), s.subs...)
	s.mu.Unlock()

	notify(subs, snap)
	s.metrics.ObserveRefresh("ok")
	s.log.Debug("published snapshot",
		"cycle", cycle.id,
		"asset", cycle.asset.ID,
		"apy", snap.SupplyAPY,
	)
	return nil
}

// readWalletBalance resolves the owner's underlying balance in base units.
// The native coin never hits the RPC: the bridge already delivered the
// balance, it only needs scaling to wei.
func (s *Service) readWalletBalance(ctx context.Context, cycle refreshCycle) (string, error) {
	if cycle.asset.Native {
		value, err := fixedpoint.New(cycle.wallet.NativeBalance)
		if err != nil {
			return "", err
		}
		return value.ShiftPow10(nativeDecimals).Truncate(0).String(), nil
	}
	balance, err := cycle.token.BalanceOf(ctx, cycle.wallet.Owner)
	if err != nil {
		return "", err
	}
	return balance.String(), nil
}

func (s *Service) abortRefresh(cycle refreshCycle, read string, err error) error {
	s.metrics.ObserveReadError(read)
	s.metrics.ObserveRefresh("error")
	s.log.Warn("aborting refresh cycle",
		"cycle", cycle.id,
		"asset", cycle.asset.ID,
		"read", read,
		"err", err,
	)
	return &ReadFailure{Op: read, Err: err}
}

func notify(subs []chan PositionSnapshot, snap PositionSnapshot) {
	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
