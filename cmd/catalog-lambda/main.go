package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/pawpantry/storefront-backend/api/validators"
	"github.com/pawpantry/storefront-backend/internal/bootstrap"
	"github.com/pawpantry/storefront-backend/pkg/config"
	"github.com/pawpantry/storefront-backend/pkg/logger"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "catalog-lambda"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "catalog-lambda",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	res, err := bootstrap.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap resources", err)
		os.Exit(1)
	}
	defer res.Close()

	h := &handler{
		catalog: bootstrap.LoadCatalog(ctx, cfg, res, logg, nil),
		defaults: validators.CatalogQueryDefaults{
			PageSize: cfg.Catalog.PageSize,
		},
		logg: logg,
	}
	lambda.Start(h.Handle)
}
