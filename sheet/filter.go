package sheet

import (
	"strings"
)

// Known placeholder identities, matched on the trimmed and lowercased
// (given_name, family_name) pair.
var testEntries = [][2]string{
	{"john", "doe"},
	{"test", "subject"},
}

// Filter removes the rows that should never be persisted:
//
//  1. known test entries (given_name + family_name pairs)
//  2. rows with neither an email address nor a phone number
//
// The relative order of the surviving rows is preserved and filtering an
// already-filtered set is a no-op.
func Filter(rows []Row) []Row {
	kept := []Row{}

	for _, row := range rows {
		given := strings.ToLower(strings.TrimSpace(row.Get("given_name")))
		family := strings.ToLower(strings.TrimSpace(row.Get("family_name")))
		email := strings.TrimSpace(row.Get("email_address"))
		phone := strings.TrimSpace(row.Get("phone_number"))

		if isTestEntry(given, family) {
			continue
		}

		if email == "" && phone == "" {
			continue
		}

		kept = append(kept, row)
	}

	return kept
}

func isTestEntry(given, family string) bool {
	for _, entry := range testEntries {
		if given == entry[0] && family == entry[1] {
			return true
		}
	}

	return false
}
