package enums

// CartStatus is the lifecycle of a cart row. Exactly one active cart exists
// per user; checkout flips it to converted and the next mutation starts a
// fresh active cart.
type CartStatus string

const (
	CartStatusActive    CartStatus = "active"
	CartStatusConverted CartStatus = "converted"
)
