package model

import "time"

type Subscription struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false;check:chk_subscription_not_self,follower_id <> author_id"`
	AuthorID   uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE;"`
	Author   User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

// Following is a followed author together with a preview of their recipes.
type Following struct {
	Author       User
	Recipes      []RecipePreview
	RecipesCount int64
}
