// Command refresh-sources queues every source of one organisation whose
// fetch interval has elapsed by marking it pending for the collectors.
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
	sourcerepo "github.com/noah-vh/airbour-web-sub001/internal/adapter/postgres/source"
	"github.com/noah-vh/airbour-web-sub001/internal/app"
	"github.com/noah-vh/airbour-web-sub001/internal/config"
	"github.com/noah-vh/airbour-web-sub001/internal/service/source"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

func main() {
	orgFlag := flag.String("org", os.Getenv("ORG_ID"), "organisation id (default $ORG_ID)")
	limit := flag.Int("limit", 0, "max sources to queue (0 = service default)")
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := source.NewService(logger, sourcerepo.New(pool))
	ctx = ctxutil.WithOrgID(ctx, orgID)

	due, err := svc.GetSourcesDueForCollection(ctx, *limit)
	if err != nil {
		logger.Error("list due sources", slog.String("error", err.Error()))
		os.Exit(1)
	}

	queued, failed := 0, 0
	for _, src := range due {
		if _, err := svc.RefreshSource(ctx, src.ID); err != nil {
			logger.Warn("refresh source",
				slog.String("source_id", src.ID.String()),
				slog.String("error", err.Error()),
			)
			failed++
			continue
		}
		queued++
	}

	logger.Info("refresh completed",
		slog.Int("due", len(due)),
		slog.Int("queued", queued),
		slog.Int("failed", failed),
		slog.String("org_id", orgID.String()),
	)
	if failed > 0 {
		os.Exit(1)
	}
}
