package setup

import (
	"reflect"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/application/common"
	gameCommands "github.com/10igma/spacetrader-web/internal/application/game/commands"
	gameQueries "github.com/10igma/spacetrader-web/internal/application/game/queries"
	ledgerCommands "github.com/10igma/spacetrader-web/internal/application/ledger/commands"
	ledgerQueries "github.com/10igma/spacetrader-web/internal/application/ledger/queries"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	tradingCommands "github.com/10igma/spacetrader-web/internal/application/trading/commands"
	tradingQueries "github.com/10igma/spacetrader-web/internal/application/trading/queries"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	session         *common.Session
	transactionRepo ledger.TransactionRepository
	// Optional: commands are timed when set
	commandMetrics *metrics.CommandMetricsCollector
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	session *common.Session,
	transactionRepo ledger.TransactionRepository,
	commandMetrics *metrics.CommandMetricsCollector,
) *HandlerRegistry {
	return &HandlerRegistry{
		session:         session,
		transactionRepo: transactionRepo,
		commandMetrics:  commandMetrics,
	}
}

type registration struct {
	request mediator.Request
	handler mediator.RequestHandler
}

func register(m mediator.Mediator, regs []registration) error {
	for _, r := range regs {
		if err := m.Register(reflect.TypeOf(r.request), r.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGameHandlers registers the commands and queries that act on a game:
//   - StartGame, DeleteGame and Retire manage the career
//   - Warp and EncounterAction move the commander between systems
//   - Trade, BuyFuel, Repair, Borrow, PayBack, Insurance, BuyEscapePod,
//     Hire and Fire are docked operations
//   - GetStatus, GetMarket, GetGalaxy, GetPriceHistory and ListGames read state
func (r *HandlerRegistry) RegisterGameHandlers(m mediator.Mediator) error {
	crew := gameCommands.NewCrewHandler(r.session)
	insurance := gameCommands.NewInsuranceHandler(r.session)

	return register(m, []registration{
		{&gameCommands.StartGameCommand{}, gameCommands.NewStartGameHandler(r.session)},
		{&gameCommands.DeleteGameCommand{}, gameCommands.NewDeleteGameHandler(r.session)},
		{&gameCommands.RetireCommand{}, gameCommands.NewRetireHandler(r.session)},
		{&gameCommands.WarpCommand{}, gameCommands.NewWarpHandler(r.session)},
		{&gameCommands.EncounterActionCommand{}, gameCommands.NewEncounterActionHandler(r.session)},
		{&gameCommands.TradeCommand{}, gameCommands.NewTradeHandler(r.session)},
		{&gameCommands.BuyFuelCommand{}, gameCommands.NewBuyFuelHandler(r.session)},
		{&gameCommands.RepairCommand{}, gameCommands.NewRepairHandler(r.session)},
		{&gameCommands.BorrowCommand{}, gameCommands.NewBorrowHandler(r.session)},
		{&gameCommands.PayBackCommand{}, gameCommands.NewPayBackHandler(r.session)},
		{&gameCommands.InsuranceCommand{}, insurance},
		{&gameCommands.BuyEscapePodCommand{}, insurance},
		{&gameCommands.HireCommand{}, crew},
		{&gameCommands.FireCommand{}, crew},
		{&gameQueries.GetStatusQuery{}, gameQueries.NewGetStatusHandler(r.session)},
		{&gameQueries.GetMarketQuery{}, gameQueries.NewGetMarketHandler(r.session)},
		{&gameQueries.GetGalaxyQuery{}, gameQueries.NewGetGalaxyHandler(r.session)},
		{&gameQueries.GetPriceHistoryQuery{}, gameQueries.NewGetPriceHistoryHandler(r.session)},
		{&gameQueries.ListGamesQuery{}, gameQueries.NewListGamesHandler(r.session)},
	})
}

// RegisterLedgerHandlers registers all ledger command and query handlers with the mediator
//
// This method registers:
//   - RecordTransactionCommand → RecordTransactionHandler (for importing journal entries)
//   - GetTransactionsQuery → GetTransactionsHandler (for transaction queries)
//   - GetProfitLossQuery → GetProfitLossHandler (for P&L reports)
func (r *HandlerRegistry) RegisterLedgerHandlers(m mediator.Mediator) error {
	return register(m, []registration{
		{&ledgerCommands.RecordTransactionCommand{}, ledgerCommands.NewRecordTransactionHandler(r.transactionRepo)},
		{&ledgerQueries.GetTransactionsQuery{}, ledgerQueries.NewGetTransactionsHandler(r.transactionRepo)},
		{&ledgerQueries.GetProfitLossQuery{}, ledgerQueries.NewGetProfitLossHandler(r.transactionRepo)},
	})
}

// RegisterTradingHandlers registers the opportunity scan and the autopilot.
// The autopilot sends its own commands through m, so m must also carry the
// game handlers.
func (r *HandlerRegistry) RegisterTradingHandlers(m mediator.Mediator) error {
	return register(m, []registration{
		{&tradingQueries.FindArbitrageOpportunitiesQuery{}, tradingQueries.NewFindArbitrageOpportunitiesHandler(r.session)},
		{&tradingCommands.RunAutopilotCommand{}, tradingCommands.NewRunAutopilotHandler(m, r.session)},
	})
}

// CreateConfiguredMediator creates a new mediator with every handler registered
//
// The Prometheus middleware is installed when a command collector was given.
func (r *HandlerRegistry) CreateConfiguredMediator() (mediator.Mediator, error) {
	m := mediator.NewMediator()
	if r.commandMetrics != nil {
		m.RegisterMiddleware(metrics.PrometheusMiddleware(r.commandMetrics))
	}

	if err := r.RegisterGameHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterLedgerHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterTradingHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}
