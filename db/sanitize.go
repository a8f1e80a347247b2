// Package db maps sanitized sheet data onto a hosted Postgres table, either
// by rebuilding the table from scratch (DROP/CREATE/INSERT sent to the
// management API or over a direct connection) or by upserting into an
// existing table via the REST endpoint.
package db

import (
	"fmt"
	"strings"
)

const (
	// MaxIdentifier is the Postgres identifier limit (NAMEDATALEN - 1).
	MaxIdentifier = 63

	// PrimaryKey is the name of the auto-added SERIAL PRIMARY KEY column.
	// It is reserved - sheet headers that sanitize to it are renamed.
	PrimaryKey = "id"

	unnamed     = "_unnamed"
	digitPrefix = "col_"
)

// Column pairs a raw sheet header with the sanitized identifier it maps to.
type Column struct {
	Header string
	Name   string
}

// Sanitize turns an arbitrary sheet-header string into a valid Postgres
// identifier:
//
//  1. trim whitespace
//  2. empty result becomes '_unnamed'
//  3. lowercase
//  4. any character outside [a-z0-9_] becomes '_'
//  5. runs of '_' collapse to one
//  6. leading '_' stripped (falling back to '_unnamed' if nothing remains)
//  7. 'col_' prepended if the name starts with a digit
//  8. truncated to 63 characters
//
// Sanitize is total - it never fails, whatever the input.
func Sanitize(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return unnamed
	}

	var b strings.Builder

	underscore := false
	for _, r := range strings.ToLower(name) {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
		if !valid {
			r = '_'
		}

		if r == '_' {
			if !underscore {
				b.WriteByte('_')
			}
			underscore = true
			continue
		}

		b.WriteRune(r)
		underscore = false
	}

	name = strings.TrimLeft(b.String(), "_")
	if name == "" {
		return unnamed
	}

	if name[0] >= '0' && name[0] <= '9' {
		name = digitPrefix + name
	}

	return truncate(name)
}

// ColumnMap sanitizes a header list into a (header, identifier) list,
// preserving header order. The PrimaryKey name is reserved up front and
// duplicate identifiers are resolved by appending _2, _3, ... - taking the
// smallest unused suffix, with the base shortened so the suffixed candidate
// stays within the identifier limit. The result is a pure function of the
// header sequence.
func ColumnMap(headers []string) []Column {
	seen := map[string]int{
		PrimaryKey: 1,
	}

	columns := make([]Column, 0, len(headers))

	for _, header := range headers {
		base := Sanitize(header)

		if _, ok := seen[base]; !ok {
			seen[base] = 1
			columns = append(columns, Column{Header: header, Name: base})
			continue
		}

		seen[base]++
		candidate := disambiguate(base, seen[base])
		for _, ok := seen[candidate]; ok; _, ok = seen[candidate] {
			seen[base]++
			candidate = disambiguate(base, seen[base])
		}

		seen[candidate] = 1
		columns = append(columns, Column{Header: header, Name: candidate})
	}

	return columns
}

// disambiguate appends a _<n> suffix, shortening the base when the combined
// name would exceed the identifier limit. The suffix is never truncated -
// a mangled suffix repeats for every n and the candidate can never become
// unique.
func disambiguate(base string, n int) string {
	suffix := fmt.Sprintf("_%d", n)

	if len(base)+len(suffix) > MaxIdentifier {
		return base[:MaxIdentifier-len(suffix)] + suffix
	}

	return base + suffix
}

func truncate(name string) string {
	if len(name) > MaxIdentifier {
		return name[:MaxIdentifier]
	}

	return name
}
