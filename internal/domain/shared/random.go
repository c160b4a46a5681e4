package shared

// Random is the only source of randomness the simulation may consume.
// Below returns a value in [0, n), or 0 when n <= 0.
type Random interface {
	Below(n int) int
}
