package db

import (
	"fmt"
	"strings"

	"sheet2db/sheet"
)

// Values converts rows into positional value lists aligned to headers. Empty
// cells and missing keys become nil (SQL NULL).
func Values(rows []sheet.Row, headers []string) [][]any {
	values := make([][]any, 0, len(rows))

	for _, row := range rows {
		record := make([]any, len(headers))
		for i, h := range headers {
			if v, ok := row.Lookup(h); ok && v != "" {
				record[i] = v
			}
		}

		values = append(values, record)
	}

	return values
}

// BuildStatements assembles the complete replace-mode SQL:
//
//	DROP TABLE IF EXISTS ...;
//	CREATE TABLE ... (id SERIAL PRIMARY KEY, ...);
//	INSERT INTO ... VALUES ...;
//
// The three statements are returned as a single text blob - they execute in
// order and a failure in a later statement does not undo an earlier one.
// rows must not be empty (an empty VALUES clause is invalid SQL); the caller
// is expected to terminate before building when no rows survive filtering.
func BuildStatements(table string, columns []string, rows [][]any) string {
	drop := fmt.Sprintf("DROP TABLE IF EXISTS %s;", quoteIdentifier(table))

	ddl := make([]string, 0, len(columns))
	for _, column := range columns {
		ddl = append(ddl, fmt.Sprintf("%s TEXT", quoteIdentifier(column)))
	}

	create := fmt.Sprintf("CREATE TABLE %s (\n    %s SERIAL PRIMARY KEY,\n    %s\n);",
		quoteIdentifier(table),
		PrimaryKey,
		strings.Join(ddl, ",\n    "))

	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, quoteIdentifier(column))
	}

	tuples := make([]string, 0, len(rows))
	for _, row := range rows {
		literals := make([]string, 0, len(row))
		for _, v := range row {
			literals = append(literals, escape(v))
		}

		tuples = append(tuples, "("+strings.Join(literals, ", ")+")")
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES\n%s;",
		quoteIdentifier(table),
		strings.Join(names, ", "),
		strings.Join(tuples, ",\n"))

	return strings.Join([]string{drop, create, insert}, "\n")
}

// escape renders a value as a SQL literal: nil maps to NULL, everything else
// is quoted with embedded single quotes doubled. The management API accepts
// only a literal query string, so this is string escaping by necessity, not
// parameterized-query escaping.
func escape(v any) string {
	if v == nil {
		return "NULL"
	}

	return "'" + strings.ReplaceAll(fmt.Sprintf("%v", v), "'", "''") + "'"
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
