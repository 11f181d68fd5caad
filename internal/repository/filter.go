package repository

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// nameContains narrows a query to rows whose name contains q, ignoring case.
func nameContains(db *gorm.DB, q string) *gorm.DB {
	q = strings.TrimSpace(q)
	if q == "" {
		return db
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
	return db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
}
