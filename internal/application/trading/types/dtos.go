package types

// OpportunityDTO is a data transfer object for arbitrage opportunities
type OpportunityDTO struct {
	Commodity       string  `json:"commodity"`
	Destination     string  `json:"destination"`
	Distance        int     `json:"distance"`
	ViaWormhole     bool    `json:"via_wormhole"`
	BuyPrice        int     `json:"buy_price"`
	SellPrice       int     `json:"sell_price"`
	Units           int     `json:"units"`
	ProfitPerUnit   int     `json:"profit_per_unit"`
	ProfitMargin    float64 `json:"profit_margin"`
	EstimatedProfit int     `json:"estimated_profit"`
	Score           float64 `json:"score"`
}
