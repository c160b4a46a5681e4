package config

// GameConfig holds the settings a new game starts from. Seeds of zero
// are replaced by seeds drawn from the clock.
type GameConfig struct {
	Commander  string `mapstructure:"commander" validate:"required,max=32"`
	Difficulty string `mapstructure:"difficulty" validate:"required,oneof=beginner easy normal hard impossible"`
	SeedX      uint32 `mapstructure:"seed_x"`
	SeedY      uint32 `mapstructure:"seed_y"`

	// Starting skills, 1..10 each and at most 20 points together
	Skills SkillsConfig `mapstructure:"skills"`
}

// SkillsConfig distributes the commander's starting skill points
type SkillsConfig struct {
	Pilot    int `mapstructure:"pilot" validate:"min=1,max=10"`
	Fighter  int `mapstructure:"fighter" validate:"min=1,max=10"`
	Trader   int `mapstructure:"trader" validate:"min=1,max=10"`
	Engineer int `mapstructure:"engineer" validate:"min=1,max=10"`
}

// Total is the number of points spent
func (s SkillsConfig) Total() int {
	return s.Pilot + s.Fighter + s.Trader + s.Engineer
}

// SimulationConfig paces the autopilot
type SimulationConfig struct {
	// Days the autopilot plays before stopping
	Days int `mapstructure:"days" validate:"min=1,max=10000"`

	// DaysPerSecond limits how fast the autopilot warps; zero means unpaced
	DaysPerSecond float64 `mapstructure:"days_per_second" validate:"min=0"`
}
