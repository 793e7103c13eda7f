package main

import (
	"context"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/ahinestrog/fruitcheckout/Backend/src/pricing"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := LoadConfig()
	must(err)
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	must(err)
	zerolog.SetGlobalLevel(level)

	// deferred closes live in run so they finish before must exits
	must(run(cfg))
}

func run(cfg *Config) error {
	weights := map[pricing.Kind]*string{}
	for _, k := range pricing.AllKinds {
		weights[k] = pflag.String(k.String(), "0", "weight of "+k.String())
	}
	promotions := pflag.String("promotions", cfg.Promotions, "promotion chain, innermost first (percent:<fruit>:<pct>,threshold:<min>:<off>)")
	pflag.Parse()

	catalog := pricing.DefaultCatalog()
	rule, err := ParseChain(*promotions, catalog)
	if err != nil {
		return err
	}

	cart := pricing.NewCart()
	for _, k := range pricing.AllKinds {
		amount, err := decimal.NewFromString(*weights[k])
		if err != nil {
			return errors.Wrapf(err, "--%s", k)
		}
		if err := cart.Add(k, amount); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var repo ReceiptRepository
	if cfg.DBPath != "" {
		db, err := openSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := migrate(ctx, db); err != nil {
			return errors.Wrap(err, "migrate")
		}
		if repo, err = NewSQLiteRepo(db, cfg.CacheSize); err != nil {
			return err
		}
	}

	var events Events
	rb, err := NewRabbit(cfg.RabbitURL, cfg.RabbitExchange)
	if err != nil {
		log.Warn().Err(err).Msg("rabbit not available, continuing without events")
	} else if rb != nil {
		defer rb.Close()
		events = rb
	}

	log.Debug().
		Str("promotion", pricing.Describe(rule)).
		Str("db", cfg.DBPath).
		Bool("events", events != nil).
		Msg("starting checkout")

	svc := NewCheckoutService(catalog, rule, repo, events)
	receipt, err := svc.Checkout(ctx, cart)
	if err != nil {
		return err
	}
	return PrintReceipt(os.Stdout, receipt)
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
