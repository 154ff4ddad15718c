package cart

type addItemRequest struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
}

// Quantity is a pointer so an explicit 0 (remove) is distinguishable from
// a missing field.
type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
