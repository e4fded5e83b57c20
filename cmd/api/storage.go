package main

import (
	"context"
	"fmt"

	"gold-ledger/config"
	"gold-ledger/internal/adapter/storage/memory"
	pgStorage "gold-ledger/internal/adapter/storage/postgres"
	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ledgerStore is one storage driver's repositories plus its lifecycle.
type ledgerStore struct {
	customers  ports.CustomerRepository
	balances   ports.BalanceRepository
	entries    ports.WalletEntryRepository
	sells      ports.SellEntryRepository
	coins      ports.CoinPurchaseRepository
	allotments ports.AllotmentRepository
	rates      ports.RateRepository
	charges    ports.ChargesRepository
	audit      ports.AuditRepository
	transactor ports.DBTransactor
	health     []ports.HealthChecker
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*ledgerStore, error) {
	switch cfg.Storage.Driver {
	case "memory":
		charges, err := seedCharges(cfg.Ledger)
		if err != nil {
			return nil, err
		}
		store := memory.NewStore(charges)
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return &ledgerStore{
			customers:  memory.NewCustomerRepo(store),
			balances:   memory.NewBalanceRepo(store),
			entries:    memory.NewWalletEntryRepo(store),
			sells:      memory.NewSellEntryRepo(store),
			coins:      memory.NewCoinPurchaseRepo(store),
			allotments: memory.NewAllotmentRepo(store),
			rates:      memory.NewRateRepo(store),
			charges:    memory.NewChargesRepo(store),
			audit:      memory.NewAuditRepo(store),
			transactor: memory.NewTransactor(store),
			close:      func() {},
		}, nil
	default:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return &ledgerStore{
			customers:  pgStorage.NewCustomerRepo(pool),
			balances:   pgStorage.NewBalanceRepo(pool),
			entries:    pgStorage.NewWalletEntryRepo(pool),
			sells:      pgStorage.NewSellEntryRepo(pool),
			coins:      pgStorage.NewCoinPurchaseRepo(pool),
			allotments: pgStorage.NewAllotmentRepo(pool),
			rates:      pgStorage.NewRateRepo(pool),
			charges:    pgStorage.NewChargesRepo(pool),
			audit:      pgStorage.NewAuditRepository(pool),
			transactor: pgStorage.NewTransactor(pool),
			health:     []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
			close:      pool.Close,
		}, nil
	}
}

func seedCharges(cfg config.LedgerConfig) (domain.ChargeSettings, error) {
	parse := func(key, raw string) (decimal.Decimal, error) {
		if raw == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return decimal.Zero, fmt.Errorf("ledger.%s must be a non-negative decimal, got %q", key, raw)
		}
		return d, nil
	}

	var (
		charges domain.ChargeSettings
		err     error
	)
	if charges.TaxPercent, err = parse("tax_percent", cfg.TaxPercent); err != nil {
		return charges, err
	}
	if charges.DeliveryCharge, err = parse("delivery_charge", cfg.DeliveryCharge); err != nil {
		return charges, err
	}
	if charges.GatewayCharge, err = parse("gateway_charge", cfg.GatewayCharge); err != nil {
		return charges, err
	}
	if charges.OtherCharges, err = parse("other_charges", cfg.OtherCharges); err != nil {
		return charges, err
	}
	return charges, nil
}
