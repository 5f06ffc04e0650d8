// Command recalc-metrics recomputes the mention metrics of every active
// signal of one organisation. It is intended to be invoked by an external
// cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres"
	"github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/mention"
	signalrepo "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/signal"
	"github.com/noah-vh/airbour-web-sub001/internal/app"
	"github.com/noah-vh/airbour-web-sub001/internal/config"
	"github.com/noah-vh/airbour-web-sub001/internal/service/signal"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

func main() {
	orgFlag := flag.String("org", os.Getenv("ORG_ID"), "organisation id (default $ORG_ID)")
	flag.Parse()

	orgID, err := uuid.Parse(*orgFlag)
	if err != nil {
		log.Fatalf("invalid -org %q: %v", *orgFlag, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	signals := signalrepo.New(pool)
	svc := signal.NewService(logger, signals, signals, mention.New(pool), postgres.NewTxManager(pool))

	res, err := svc.RecalculateAllSignalMetrics(ctxutil.WithOrgID(ctx, orgID))
	if err != nil {
		logger.Error("recalculate failed",
			slog.String("error", err.Error()),
			slog.String("org_id", orgID.String()),
		)
		os.Exit(1)
	}

	logger.Info("recalculate completed",
		slog.Int("updated", res.Updated),
		slog.String("org_id", orgID.String()),
	)
}
