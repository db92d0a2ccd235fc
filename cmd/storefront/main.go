package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-core/internal/cart"
	"storefront-core/internal/catalog"
	"storefront-core/internal/config"
	"storefront-core/internal/db"
	"storefront-core/internal/kvstore"
	"storefront-core/internal/store"
	"storefront-core/internal/transport"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal("parse config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scope := cfg.ClientScope
	if scope == "" {
		scope = uuid.NewString()
		logger.Info("generated client scope", zap.String("scope", scope))
	}

	var kv kvstore.Store
	if cfg.DatabaseURI != "" {
		pool, err := db.Connect(ctx, cfg.DatabaseURI)
		if err != nil {
			logger.Fatal("connect db", zap.Error(err))
		}
		defer pool.Close()
		kv = kvstore.NewPostgres(pool, scope)
	} else {
		logger.Info("no database configured, state will not survive restarts")
		kv = kvstore.NewMemory()
	}

	st := store.New(ctx, kv, logger)
	st.Subscribe(func(state store.GlobalState) {
		logger.Debug("state changed",
			zap.Int("cartItems", cart.ItemCount(state.Cart.CartItems)),
			zap.Bool("loggedIn", state.Session != nil),
		)
	})

	state := st.State()
	logger.Info("state restored",
		zap.Bool("darkMode", state.DarkMode),
		zap.Int("cartLines", len(state.Cart.CartItems)),
		zap.Bool("loggedIn", state.Session != nil),
	)

	api := transport.New(cfg.APIBaseURL, cfg.RequestTimeout(), logger)
	products := catalog.New(api)
	if err := products.Refresh(ctx); err != nil {
		logger.Warn("fetch products", zap.Error(err))
	}

	if list := products.State().Data; len(list) > 0 {
		if err := catalog.AddToCart(ctx, api, st, list[0].ID, 1); err != nil {
			logger.Warn("add to cart", zap.Error(err))
		}
	}

	totals := cart.ComputeTotals(st.State().Cart.CartItems)
	logger.Info("cart totals",
		zap.Int64("itemsCents", totals.ItemsCents),
		zap.Int64("taxCents", totals.TaxCents),
		zap.Int64("shippingCents", totals.ShippingCents),
		zap.Int64("totalCents", totals.TotalCents),
	)
}
