package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"safelend/config"
	"safelend/evm"
	"safelend/lend"
	"safelend/observability/logging"
	"safelend/wallet"
)

func main() {
	env := config.LoadEnv()
	logger := logging.Setup("safelendd", env.Environment)
	logger.Info("starting safelendd",
		"rpc", env.Sanitized().RPCURL,
		"network", env.Network,
		"metrics", env.MetricsListen,
	)

	catalog, err := config.LoadCatalog(env.CatalogPath)
	if err != nil {
		logger.Error("loading token catalog", "err", err)
		os.Exit(1)
	}

	client, err := evm.Dial(env.RPCURL)
	if err != nil {
		logger.Error("dialing rpc endpoint", "err", err)
		os.Exit(1)
	}
	defer client.Close()

	service := lend.NewService(evm.NewFactory(client), logger)

	metricsSrv := &http.Server{
		Addr:              env.MetricsListen,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics listener failed", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bridge := wallet.NewMemoryBridge()
	if env.Owner != "" {
		// Stands in for the host wallet's connection event until a real
		// bridge transport is attached.
		bridge.Push(lend.WalletContext{
			Owner:         common.HexToAddress(env.Owner),
			Network:       env.Network,
			NativeBalance: "0",
		})
	}

	run(ctx, logger, catalog, service, bridge, env.DefaultAsset)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsSrv.Shutdown(shutdownCtx)
	logger.Info("safelendd stopped")
}

func run(ctx context.Context, logger *slog.Logger, catalog *config.Catalog, service *lend.Service, bridge wallet.Bridge, defaultAsset string) {
	for {
		select {
		case <-ctx.Done():
			return
		case wc, ok := <-bridge.Updates():
			if !ok {
				return
			}
			service.SetWalletContext(wc)

			assets := catalog.TokenList(wc.Network)
			if len(assets) == 0 {
				logger.Warn("no assets for network", "network", wc.Network)
				continue
			}
			asset, found := catalog.Find(wc.Network, defaultAsset)
			if !found {
				asset = assets[0]
			}
			service.SelectAsset(asset)

			if err := service.Refresh(ctx); err != nil {
				logger.Warn("refresh failed", "asset", asset.ID, "err", err)
				continue
			}
			snap := service.Snapshot()
			logger.Info("position",
				"asset", snap.Asset.ID,
				"wallet_balance", snap.RawWalletBalance,
				"locked_balance", snap.RawLockedBalance,
				"apy", snap.SupplyAPY,
			)
		}
	}
}
