package persistent

import (
	"errors"
	"strings"

	"hacktheshell/internal/entity"

	"gorm.io/gorm"
)

// translate maps gorm's not-found error to entity.ErrNotFound and leaves
// every other database error untouched.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lowercase LIKE pattern for substring matching.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}

// tagContains returns a condition matching rows where one element of the
// JSON string array in column contains the bound LIKE pattern.
func tagContains(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return "EXISTS (SELECT 1 FROM jsonb_array_elements_text(" + column + ") AS t(tag) WHERE LOWER(t.tag) LIKE ? ESCAPE '\\')"
	}
	return "EXISTS (SELECT 1 FROM json_each(" + column + ") AS t WHERE LOWER(t.value) LIKE ? ESCAPE '\\')"
}
