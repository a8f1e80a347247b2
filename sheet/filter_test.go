package sheet

import (
	"reflect"
	"testing"
)

var headers = []string{"given_name", "family_name", "email_address", "phone_number"}

func TestFilterDropsRowsWithoutContactDetails(t *testing.T) {
	rows := []Row{
		NewRow(headers, []string{"John", "Doe", "", ""}),
		NewRow(headers, []string{"A", "B", "a@b.com", ""}),
	}

	kept := Filter(rows)

	if len(kept) != 1 {
		t.Fatalf("Expected 1 row after filtering, got %v", len(kept))
	}

	if kept[0].Get("given_name") != "A" {
		t.Errorf("Incorrect surviving row: %v", kept[0])
	}
}

func TestFilterDropsTestEntries(t *testing.T) {
	rows := []Row{
		NewRow(headers, []string{" John ", "DOE", "john@example.com", ""}),
		NewRow(headers, []string{"Test", "Subject", "", "555-0100"}),
		NewRow(headers, []string{"Johnny", "Doering", "j@example.com", ""}),
	}

	kept := Filter(rows)

	if len(kept) != 1 {
		t.Fatalf("Expected 1 row after filtering, got %v", len(kept))
	}

	if kept[0].Get("given_name") != "Johnny" {
		t.Errorf("Incorrect surviving row: %v", kept[0])
	}
}

func TestFilterKeepsRowsWithPhoneOnly(t *testing.T) {
	rows := []Row{
		NewRow(headers, []string{"A", "B", "", "555-0100"}),
		NewRow(headers, []string{"C", "D", "", "   "}),
	}

	kept := Filter(rows)

	if len(kept) != 1 {
		t.Fatalf("Expected 1 row after filtering, got %v", len(kept))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	rows := []Row{
		NewRow(headers, []string{"A", "B", "a@b.com", ""}),
		NewRow(headers, []string{"John", "Doe", "x@y.com", ""}),
		NewRow(headers, []string{"C", "D", "c@d.com", ""}),
		NewRow(headers, []string{"E", "F", "", "555-0100"}),
	}

	kept := Filter(rows)

	names := make([]string, len(kept))
	for i, row := range kept {
		names[i] = row.Get("given_name")
	}

	expected := []string{"A", "C", "E"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Incorrect row order\n   expected: %v\n   got:      %v\n", expected, names)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	rows := []Row{
		NewRow(headers, []string{"A", "B", "a@b.com", ""}),
		NewRow(headers, []string{"John", "Doe", "", ""}),
		NewRow(headers, []string{"C", "D", "", "555-0100"}),
	}

	once := Filter(rows)
	twice := Filter(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Filter is not idempotent\n   first:  %v\n   second: %v\n", once, twice)
	}
}

func TestFilterWithEmptyRowSet(t *testing.T) {
	if kept := Filter([]Row{}); len(kept) != 0 {
		t.Errorf("Expected no rows, got %v", kept)
	}
}
