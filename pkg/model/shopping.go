package model

// CartLine is one ingredient line of one recipe in a user's cart.
type CartLine struct {
	RecipeID        uint
	IngredientID    uint
	Name            string
	MeasurementUnit string
	Amount          uint
}

// ShoppingListItem is an ingredient total across the whole cart.
type ShoppingListItem struct {
	IngredientID    uint
	Name            string
	MeasurementUnit string
	TotalAmount     uint64
}
