package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"droscher.com/Foodgram/pkg/model"
)

var ErrInvalidRecord = errors.New("invalid seed record")

type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type tagRecord struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DecodeIngredients reads a JSON array of {name, measurement_unit} records.
// Repeated names keep their first occurrence.
func DecodeIngredients(r io.Reader) ([]model.Ingredient, error) {
	var records []ingredientRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}

	ingredients := make([]model.Ingredient, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		unit := strings.TrimSpace(record.MeasurementUnit)

		if name == "" || unit == "" {
			return nil, fmt.Errorf("%w: ingredient #%d needs a name and a measurement unit", ErrInvalidRecord, i+1)
		}

		if seen[name] {
			continue
		}

		seen[name] = true
		ingredients = append(ingredients, model.Ingredient{Name: name, MeasurementUnit: unit})
	}

	return ingredients, nil
}

// DecodeTags reads a JSON array of {name, slug} records.
func DecodeTags(r io.Reader) ([]model.Tag, error) {
	var records []tagRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	tags := make([]model.Tag, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		slug := strings.TrimSpace(record.Slug)

		if name == "" || slug == "" {
			return nil, fmt.Errorf("%w: tag #%d needs a name and a slug", ErrInvalidRecord, i+1)
		}

		if seen[slug] {
			continue
		}

		seen[slug] = true
		tags = append(tags, model.Tag{Name: name, Slug: slug})
	}

	return tags, nil
}
