package checkout

// CheckoutRequest carries the shipping form and payment intent. The cart's
// eco options and line items are read server-side; the client cannot price
// its own order.
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	ZipCode       string `json:"zip_code" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}
