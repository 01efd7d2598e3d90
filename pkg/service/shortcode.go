package service

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"droscher.com/Foodgram/pkg/model"
)

// ShortCodeGenerator draws one candidate short code.
type ShortCodeGenerator func() (string, error)

// NanoIDShortCodes draws URL-safe codes of the given length from crypto/rand.
func NanoIDShortCodes(length int) ShortCodeGenerator {
	return func() (string, error) {
		return gonanoid.New(length)
	}
}

// PublicLink builds the shareable link of a recipe.
func PublicLink(recipe *model.Recipe, baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/s/" + recipe.ShortCode + "/"
}
