/*
Package sheet2db migrates rows from a Google Sheets worksheet into a hosted
Postgres table.

Each run is a one-shot, single-pass pipeline: rows are fetched from the
spreadsheet and staged to a local JSON file, then loaded into the database
either by dropping and recreating the target table or by upserting into an
existing one.

sheet2db supports the following commands:

  - fetch, to read all rows from a Google Sheets worksheet into the staging file
  - import, to read all rows from a local .xlsx workbook into the staging file
  - load, to drop and recreate the target table from the staged rows
  - upsert, to merge the staged rows into an existing table keyed on a conflict column
  - version, to display the version information
*/
package sheet2db
