package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/market"
)

// Trade operations
const (
	OperationBuy      = "buy"
	OperationSell     = "sell"
	OperationDump     = "dump"
	OperationJettison = "jettison"
)

// TradeCommand moves cargo between the hold and the market
type TradeCommand struct {
	GameID       string
	Operation    string // buy, sell, dump or jettison
	Commodity    string // Commodity name or index
	Amount       int
	LeaveEmpty   int  // Bays a purchase leaves free
	ReserveMoney bool // Keep enough credits for the next departure
}

// TradeResponse reports the units moved and the credit change
type TradeResponse struct {
	Operation string
	Commodity string
	Receipt   dtos.ReceiptDTO
	Held      int
}

// TradeHandler handles the Trade command
type TradeHandler struct {
	session *common.Session
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(session *common.Session) *TradeHandler {
	return &TradeHandler{session: session}
}

// Handle executes the Trade command
func (h *TradeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*TradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *TradeCommand")
	}

	op := strings.ToLower(cmd.Operation)
	commodity, err := common.ResolveCommodity(h.session.Tables(), cmd.Commodity)
	if err != nil {
		return nil, err
	}
	opts := game.TradeOptions{LeaveEmpty: cmd.LeaveEmpty, ReserveMoney: cmd.ReserveMoney}

	var (
		receipt *game.Receipt
		basis   int
	)
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		if held := g.Ship.Cargo[commodity]; held > 0 {
			basis = g.BuyingPrice[commodity] / held
		}
		var err error
		switch op {
		case OperationBuy:
			receipt, err = g.BuyCargo(commodity, cmd.Amount, opts)
		case OperationSell:
			receipt, err = g.SellCargo(commodity, cmd.Amount, market.Sell, opts)
		case OperationDump:
			receipt, err = g.SellCargo(commodity, cmd.Amount, market.Dump, opts)
		case OperationJettison:
			receipt, err = g.SellCargo(commodity, cmd.Amount, market.Jettison, opts)
		default:
			err = fmt.Errorf("unknown trade operation: %s", cmd.Operation)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", op, err)
	}

	name := g.Tables().TradeItems[commodity].Name
	if op == OperationSell && receipt.Units > 0 {
		metrics.RecordTrade(g.ID, name, basis, receipt.Amount/receipt.Units, receipt.Units)
	}

	return &TradeResponse{
		Operation: op,
		Commodity: name,
		Receipt:   dtos.ReceiptToDTO(receipt),
		Held:      g.Ship.Cargo[commodity],
	}, nil
}
