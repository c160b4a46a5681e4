package game

import (
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// TradeOptions are the commander's standing trade preferences
type TradeOptions struct {
	// LeaveEmpty bays are never filled by a purchase
	LeaveEmpty int
	// ReserveMoney keeps enough credits for the next departure
	ReserveMoney bool
}

// Receipt reports what a docked command applied
type Receipt struct {
	Units   int
	Amount  int
	Credits int
}

func (g *Game) receipt(units, before int) *Receipt {
	return &Receipt{Units: units, Amount: g.Balance.Credits - before, Credits: g.Balance.Credits}
}

func (g *Game) reserve(opts TradeOptions) int {
	if !opts.ReserveMoney {
		return 0
	}
	return g.Payroll() + g.InsurancePremium()
}

func (g *Game) hold() market.Hold {
	return market.Hold{
		Ship:        &g.Ship,
		BuyingPrice: &g.BuyingPrice,
		Credits:     &g.Balance.Credits,
		PoliceScore: &g.PoliceScore,
	}
}

// journalChange journals a credit change a market rule already applied
func (g *Game) journalChange(t ledger.TransactionType, before int, description string) error {
	amount := g.Balance.Credits - before
	g.Balance.Credits = before
	return g.record(t, amount, description)
}

// BuyCargo buys up to amount units at the local buy price
func (g *Game) BuyCargo(commodity, amount int, opts TradeOptions) (*Receipt, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	before := g.Balance.Credits
	bought, err := market.BuyCargo(g.hold(), g.CurrentSystem(), &g.Prices, market.BuyOrder{
		Commodity:  commodity,
		Amount:     amount,
		Bays:       g.Bays(),
		LeaveEmpty: opts.LeaveEmpty,
		Reserve:    g.reserve(opts),
	})
	if err != nil {
		return nil, err
	}
	desc := fmt.Sprintf("bought %d %s", bought, g.tables.TradeItems[commodity].Name)
	if err := g.journalChange(ledger.TransactionTypePurchaseCargo, before, desc); err != nil {
		return nil, err
	}
	return g.receipt(bought, before), nil
}

// SellCargo sells, dumps or jettisons up to amount units
func (g *Game) SellCargo(commodity, amount int, op market.Operation, opts TradeOptions) (*Receipt, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	before := g.Balance.Credits
	sold, err := market.SellCargo(g.hold(), &g.Prices, market.SellOrder{
		Commodity: commodity,
		Amount:    amount,
		Operation: op,
		Reserve:   g.reserve(opts),
	}, g.Difficulty, &g.RNG)
	if err != nil {
		return nil, err
	}

	name := g.tables.TradeItems[commodity].Name
	switch op {
	case market.Sell:
		err = g.journalChange(ledger.TransactionTypeSellCargo, before, fmt.Sprintf("sold %d %s", sold, name))
	case market.Dump:
		err = g.journalChange(ledger.TransactionTypeDumpCargo, before, fmt.Sprintf("dumped %d %s", sold, name))
	}
	if err != nil {
		return nil, err
	}
	return g.receipt(sold, before), nil
}

// BuyFuel spends up to amount credits on fuel
func (g *Game) BuyFuel(amount int) (*Receipt, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	before := g.Balance.Credits
	p, err := g.Ship.BuyFuel(g.tables, amount, before)
	if err != nil {
		return nil, err
	}
	if err := g.record(ledger.TransactionTypeRefuel, -p.Cost, fmt.Sprintf("%d parsecs of fuel", p.Units)); err != nil {
		return nil, err
	}
	return g.receipt(p.Units, before), nil
}

// Repair spends up to amount credits on hull repairs
func (g *Game) Repair(amount int) (*Receipt, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	before := g.Balance.Credits
	p, err := g.Ship.BuyRepairs(g.tables, amount, before, g.Quests.HullUpgraded())
	if err != nil {
		return nil, err
	}
	if err := g.record(ledger.TransactionTypeRepair, -p.Cost, fmt.Sprintf("%d hull points", p.Units)); err != nil {
		return nil, err
	}
	return g.receipt(p.Units, before), nil
}

// Borrow takes a loan of up to amount within the bank's limit
func (g *Game) Borrow(amount int) (*Receipt, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	before := g.Balance.Credits
	lent, b, err := ledger.GetLoan(g.Balance, amount, g.MaxLoan())
	if err != nil {
		return nil, err
	}
	if err := g.record(ledger.TransactionTypeLoan, lent, "bank loan"); err != nil {
		return nil, err
	}
	g.Balance.Debt = b.Debt
	return g.receipt(lent, before), nil
}

// PayBack repays up to amount of the debt
func (g *Game) PayBack(amount int) (*Receipt, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	before := g.Balance.Credits
	paid, b, err := ledger.PayBack(g.Balance, amount)
	if err != nil {
		return nil, err
	}
	if err := g.record(ledger.TransactionTypeLoanRepayment, -paid, "loan repayment"); err != nil {
		return nil, err
	}
	g.Balance.Debt = b.Debt
	return g.receipt(paid, before), nil
}

// BuyInsurance insures the ship. Only a ship with an escape pod is insured.
func (g *Game) BuyInsurance() error {
	if err := g.ready(); err != nil {
		return err
	}
	if !g.EscapePod {
		return ErrNoEscapePod
	}
	g.Insurance = true
	return nil
}

// StopInsurance cancels the policy and forfeits the no-claim discount
func (g *Game) StopInsurance() error {
	if err := g.ready(); err != nil {
		return err
	}
	g.Insurance = false
	g.NoClaim = 0
	return nil
}

// BuyEscapePod fits an escape pod
func (g *Game) BuyEscapePod() error {
	if err := g.ready(); err != nil {
		return err
	}
	if g.EscapePod {
		return ErrAlreadyOwned
	}
	if g.Balance.Credits < ledger.EscapePodPrice {
		return ErrInsufficientCredits
	}
	if err := g.record(ledger.TransactionTypeEscapePod, -ledger.EscapePodPrice, "escape pod"); err != nil {
		return err
	}
	g.EscapePod = true
	return nil
}

// Mercenaries lists the roster entries waiting for hire in the current system
func (g *Game) Mercenaries() []int {
	here := g.CurrentSystemID()
	var out []int
	for i := 1; i < tables.MaxCrewMember; i++ {
		if g.Roster[i].CurSystem == here && !g.aboard(i) {
			out = append(out, i)
		}
	}
	return out
}

func (g *Game) aboard(index int) bool {
	return shared.Contains(g.Ship.Crew[:], index)
}

// Hire takes a mercenary from the current system into the first free seat
func (g *Game) Hire(index int) error {
	if err := g.ready(); err != nil {
		return err
	}
	if err := shared.CheckIndex("mercenary", index, tables.MaxCrewMember); err != nil {
		return err
	}
	if index == crew.Commander || g.aboard(index) || g.Roster[index].CurSystem != g.CurrentSystemID() {
		return ErrNotForHire
	}
	seat := shared.FirstEmpty(g.Ship.Crew[:], g.Ship.Spec(g.tables).CrewQuarters)
	if seat < 0 {
		return ErrNoCrewSpace
	}
	g.Ship.Crew[seat] = shared.Occupied(index)
	return nil
}

// Fire leaves a mercenary behind in the current system. The remaining
// crew moves up so the seats stay contiguous.
func (g *Game) Fire(index int) error {
	if err := g.ready(); err != nil {
		return err
	}
	seat := -1
	for i := 1; i < ship.MaxCrew; i++ {
		if idx, ok := g.Ship.Crew[i].Index(); ok && idx == index {
			seat = i
			break
		}
	}
	if seat < 0 {
		return ErrNotInCrew
	}
	copy(g.Ship.Crew[seat:], g.Ship.Crew[seat+1:])
	g.Ship.Crew[ship.MaxCrew-1] = shared.Empty
	g.Roster[index].CurSystem = g.CurrentSystemID()
	return nil
}
