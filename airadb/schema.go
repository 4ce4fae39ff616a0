package airadb

import (
	_ "embed"
	"strings"
)

//go:embed schema.sql
var schema string

// SchemaStatements returns the CREATE TABLE statements for the aira
// tables, one statement per entry.
func SchemaStatements() []string {
	var stmts []string
	for _, s := range strings.Split(schema, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
