package sheet

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewRowPadsShortRows(t *testing.T) {
	headers := []string{"given_name", "family_name", "email_address", "phone_number"}

	row := NewRow(headers, []string{"Ann", "Smith"})

	if !reflect.DeepEqual(row.Headers(), headers) {
		t.Fatalf("Incorrect headers\n   expected: %v\n   got:      %v\n", headers, row.Headers())
	}

	if v := row.Get("email_address"); v != "" {
		t.Errorf("Expected padded empty cell for 'email_address', got %q", v)
	}

	if v := row.Get("given_name"); v != "Ann" {
		t.Errorf("Incorrect 'given_name' - expected %q, got %q", "Ann", v)
	}
}

func TestNewRowWithDuplicateHeaders(t *testing.T) {
	row := NewRow([]string{"name", "email", "name"}, []string{"first", "a@b.com", "last"})

	expected := []string{"name", "email"}
	if !reflect.DeepEqual(row.Headers(), expected) {
		t.Fatalf("Incorrect headers\n   expected: %v\n   got:      %v\n", expected, row.Headers())
	}

	if v := row.Get("name"); v != "last" {
		t.Errorf("Expected duplicate header to take the last value, got %q", v)
	}
}

func TestRowJSONPreservesKeyOrder(t *testing.T) {
	expected := `{"Zebra":"1","apple":"2","Mango":""}`

	row := NewRow([]string{"Zebra", "apple", "Mango"}, []string{"1", "2"})

	b, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Unexpected error marshalling row (%v)", err)
	}

	if string(b) != expected {
		t.Errorf("Incorrect JSON\n   expected: %s\n   got:      %s\n", expected, string(b))
	}
}

func TestRowJSONRoundTrip(t *testing.T) {
	rows := []Row{
		NewRow([]string{"given_name", "family_name", "email_address"}, []string{"Ann", "Smith", "a@b.com"}),
		NewRow([]string{"given_name", "family_name", "email_address"}, []string{"Bob", "O'Brien"}),
	}

	b, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("Unexpected error marshalling rows (%v)", err)
	}

	var recovered []Row
	if err := json.Unmarshal(b, &recovered); err != nil {
		t.Fatalf("Unexpected error unmarshalling rows (%v)", err)
	}

	if !reflect.DeepEqual(recovered, rows) {
		t.Errorf("Incorrect round-trip\n   expected: %v\n   got:      %v\n", rows, recovered)
	}
}

func TestRowUnmarshalRejectsNonObject(t *testing.T) {
	var row Row

	if err := json.Unmarshal([]byte(`["not","an","object"]`), &row); err == nil {
		t.Errorf("Expected error unmarshalling a JSON array into a row, got %v", err)
	}
}

func TestRenameColumns(t *testing.T) {
	rows := []Row{
		NewRow([]string{"Full Name", "Email"}, []string{"Ann Smith", "a@b.com"}),
	}

	mapping := map[string]string{
		"Full Name": "full_name",
	}

	renamed := RenameColumns(rows, mapping)

	expected := []string{"full_name", "Email"}
	if !reflect.DeepEqual(renamed[0].Headers(), expected) {
		t.Fatalf("Incorrect headers\n   expected: %v\n   got:      %v\n", expected, renamed[0].Headers())
	}

	if v := renamed[0].Get("full_name"); v != "Ann Smith" {
		t.Errorf("Incorrect 'full_name' - expected %q, got %q", "Ann Smith", v)
	}

	// original rows are not mutated
	if _, ok := rows[0].Lookup("full_name"); ok {
		t.Errorf("RenameColumns mutated the input rows")
	}
}
