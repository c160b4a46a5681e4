package cli

import (
	"context"
	"fmt"
	"io"

	"gorm.io/gorm"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/adapters/persistence"
	"github.com/10igma/spacetrader-web/internal/application/common"
	ledgerCommands "github.com/10igma/spacetrader-web/internal/application/ledger/commands"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/application/setup"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/internal/infrastructure/config"
	"github.com/10igma/spacetrader-web/internal/infrastructure/database"
	"github.com/10igma/spacetrader-web/internal/infrastructure/logging"
)

// app is everything a command needs: the loaded configuration, the database
// and a mediator with every handler registered.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	mediator mediator.Mediator
	logger   *logging.SlogLogger
	closer   io.Closer
}

// newApp loads the configuration and wires the application. The returned
// context carries the logger.
func newApp(ctx context.Context) (*app, context.Context, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		if commandMetrics, err = metrics.Setup(); err != nil {
			database.Close(db)
			closer.Close()
			return nil, nil, fmt.Errorf("failed to set up metrics: %w", err)
		}
	}

	t, err := tables.Load()
	if err != nil {
		database.Close(db)
		closer.Close()
		return nil, nil, err
	}

	clock := shared.NewRealClock()
	transactions := persistence.NewGormTransactionRepository(db)
	session := common.NewSession(
		persistence.NewGormGameRepository(db, clock),
		ledgerCommands.NewRecordTransactionHandler(transactions),
		persistence.NewGormPriceHistoryRepository(db),
		t,
		clock,
	)

	m, err := setup.NewHandlerRegistry(session, transactions, commandMetrics).CreateConfiguredMediator()
	if err != nil {
		database.Close(db)
		closer.Close()
		return nil, nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	a := &app{cfg: cfg, db: db, mediator: m, logger: logger, closer: closer}
	return a, common.WithLogger(ctx, logger), nil
}

// send dispatches a request and asserts the response type
func send[T any](ctx context.Context, a *app, request mediator.Request) (T, error) {
	var zero T
	resp, err := a.mediator.Send(ctx, request)
	if err != nil {
		return zero, err
	}
	typed, ok := resp.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected response type %T", resp)
	}
	return typed, nil
}

func (a *app) Close() {
	database.Close(a.db)
	a.closer.Close()
}

// withApp runs fn against a freshly wired application
func withApp(fn func(ctx context.Context, a *app) error) error {
	a, ctx, err := newApp(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
