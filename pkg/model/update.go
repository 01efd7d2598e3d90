package model

// RecipeUpdate describes a partial recipe update. A nil TagIDs or Lines keeps
// the current set; a non-nil one replaces it wholesale.
type RecipeUpdate struct {
	Fields map[string]any
	TagIDs []uint
	Lines  []RecipeIngredient
}
