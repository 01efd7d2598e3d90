package model

import "gorm.io/gorm"

type Ingredient struct {
	gorm.Model
	Name            string `gorm:"uniqueIndex:idx_ingredient_name;size:128;not null"`
	MeasurementUnit string `gorm:"size:64;not null"`
}

type Tag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex:idx_tag_name;size:128;not null"`
	Slug string `gorm:"uniqueIndex:idx_tag_slug;size:128;not null"`
}
