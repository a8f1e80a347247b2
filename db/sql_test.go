package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheet2db/sheet"
)

func TestBuildStatements(t *testing.T) {
	expected := `DROP TABLE IF EXISTS "people";
CREATE TABLE "people" (
    id SERIAL PRIMARY KEY,
    "name" TEXT,
    "email" TEXT
);
INSERT INTO "people" ("name", "email") VALUES
('Ann', 'a@x.com'),
(NULL, 'b@x.com');`

	statements := BuildStatements("people", []string{"name", "email"}, [][]any{
		{"Ann", "a@x.com"},
		{nil, "b@x.com"},
	})

	assert.Equal(t, expected, statements)
}

func TestBuildStatementsEscapesQuotes(t *testing.T) {
	statements := BuildStatements("people", []string{"name"}, [][]any{
		{"O'Brien"},
	})

	assert.Contains(t, statements, "('O''Brien')")
	assert.NotContains(t, statements, "\\'")
}

func TestBuildStatementsStatementOrder(t *testing.T) {
	statements := BuildStatements("people", []string{"name"}, [][]any{{"Ann"}})

	drop := strings.Index(statements, "DROP TABLE")
	create := strings.Index(statements, "CREATE TABLE")
	insert := strings.Index(statements, "INSERT INTO")

	require.True(t, drop >= 0 && create >= 0 && insert >= 0)
	assert.Less(t, drop, create)
	assert.Less(t, create, insert)
}

func TestValues(t *testing.T) {
	headers := []string{"name", "email", "phone"}

	rows := []sheet.Row{
		sheet.NewRow(headers, []string{"Ann", "a@x.com", "555-0100"}),
		sheet.NewRow(headers, []string{"Bob", ""}),
	}

	values := Values(rows, headers)

	require.Len(t, values, 2)
	assert.Equal(t, []any{"Ann", "a@x.com", "555-0100"}, values[0])
	assert.Equal(t, []any{"Bob", nil, nil}, values[1])
}

func TestValuesWithMissingKeys(t *testing.T) {
	rows := []sheet.Row{
		sheet.NewRow([]string{"name"}, []string{"Ann"}),
	}

	values := Values(rows, []string{"name", "email"})

	require.Len(t, values, 1)
	assert.Equal(t, []any{"Ann", nil}, values[0])
}
