package model

import (
	"fmt"
	"time"
)

// MembershipKind selects one of the per-user recipe sets.
type MembershipKind int

const (
	KindFavorite MembershipKind = iota
	KindCart
)

func (k MembershipKind) String() string {
	switch k {
	case KindFavorite:
		return "favorite"
	case KindCart:
		return "shopping_cart"
	default:
		return fmt.Sprintf("membership(%d)", int(k))
	}
}

// Entry builds the row type backing the kind, keyed by user and recipe.
func (k MembershipKind) Entry(userID, recipeID uint) any {
	if k == KindCart {
		return &CartEntry{UserID: userID, RecipeID: recipeID}
	}

	return &Favorite{UserID: userID, RecipeID: recipeID}
}

func (k MembershipKind) Table() string {
	if k == KindCart {
		return "cart_entries"
	}

	return "favorites"
}

type Favorite struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	RecipeID  uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

type CartEntry struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	RecipeID  uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

// MembershipFlags tells whether a recipe is in the caller's favorites and cart,
// and whether the caller follows its author.
type MembershipFlags struct {
	IsFavorited      bool
	IsInShoppingCart bool
	IsSubscribed     bool
}
