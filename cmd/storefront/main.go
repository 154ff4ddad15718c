package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pawpantry/storefront-backend/internal/bootstrap"
	"github.com/pawpantry/storefront-backend/internal/cart"
	"github.com/pawpantry/storefront-backend/internal/storefront"
	"github.com/pawpantry/storefront-backend/pkg/config"
	"github.com/pawpantry/storefront-backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg := logger.New(logger.Options{ServiceName: "storefront", Output: os.Stderr})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Output:      os.Stderr,
	})

	res, err := bootstrap.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap resources", err)
		os.Exit(1)
	}
	defer res.Close()

	// a process-local memory cart would vanish on exit
	var (
		store     cart.Store
		storeName string
	)
	if cfg.Cart.Store == config.CartStoreMemory {
		store, err = cart.NewFileStore(cfg.Cart.Dir)
		storeName = string(config.CartStoreFile)
	} else {
		store, storeName, err = bootstrap.CartStore(cfg, res)
	}
	if err != nil {
		logg.Error(ctx, "failed to open cart store", err)
		os.Exit(1)
	}

	session := storefront.NewSession(ctx, bootstrap.LoadCatalog(ctx, cfg, res, logg, nil), store, storefront.Options{
		PageSize:   cfg.Catalog.PageSize,
		StorageKey: cfg.Cart.StorageKey,
		Cart:       cart.Options{StoreName: storeName, Logger: logg},
	})

	if err := run(ctx, session, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "storefront:", err)
		os.Exit(2)
	}
}
