package shared

import "github.com/10igma/spacetrader-web/pkg/utils"

// Position is a point in galaxy coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SqrDistance returns the squared euclidean distance between two positions
func SqrDistance(a, b Position) int {
	return utils.Sqr(a.X-b.X) + utils.Sqr(a.Y-b.Y)
}

// RealDistance returns the distance in parsecs, rounded to the nearest integer
func RealDistance(a, b Position) int {
	return utils.ISqrt(SqrDistance(a, b))
}
