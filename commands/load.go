package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"sheet2db/config"
	"sheet2db/db"
	"sheet2db/sheet"
)

var LoadCmd = Load{
	workdir: DEFAULT_WORKDIR,
	debug:   false,
}

// Load is the replace-mode load: the staged rows are filtered, the headers
// sanitized into column names and the target table dropped, recreated and
// repopulated in a single DROP/CREATE/INSERT request.
type Load struct {
	workdir string
	debug   bool
}

func (cmd *Load) Name() string {
	return "load"
}

func (cmd *Load) Description() string {
	return "Drops and recreates the target table from the staged rows"
}

func (cmd *Load) Usage() string {
	return "[--workdir <dir>]"
}

func (cmd *Load) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] load [options]\n", APP)
	fmt.Println()
	fmt.Printf("  Reads the staged rows from '%s', removes test entries and rows without\n", stagingFile(cmd.workdir))
	fmt.Println("  contact details, and replaces the contents of the SUPABASE_TABLE table - the table")
	fmt.Println("  is dropped and recreated with an 'id SERIAL PRIMARY KEY' column plus a TEXT column")
	fmt.Println("  per sheet column. Empty cells become NULL.")
	fmt.Println()
	fmt.Println("  The DROP, CREATE and INSERT statements are sent as a single request - if a later")
	fmt.Println("  statement fails the earlier ones are not undone.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheet2db --debug load --workdir ".tmp"`)
	fmt.Println()
}

func (cmd *Load) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("load", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (staged rows, tokens, etc)")

	return flagset
}

func (cmd *Load) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	rows, err := sheet.Read(stagingFile(cmd.workdir))
	if err != nil {
		return err
	}

	var executor db.Executor
	if cfg.DSN != "" {
		executor = &db.Direct{DSN: cfg.DSN}
	} else {
		executor = db.NewManagementAPI(cfg.ProjectRef, cfg.ManagementKey)
	}

	return cmd.run(cfg, rows, executor)
}

func (cmd *Load) run(cfg *config.Config, rows []sheet.Row, executor db.Executor) error {
	if len(rows) == 0 {
		fmt.Println("  Staged row file is empty - nothing to insert.")
		return nil
	}

	kept := sheet.Filter(rows)

	fmt.Printf("  Filtered: %v raw rows -> %v after removing test entries & no-contact rows.\n", len(rows), len(kept))

	if len(kept) == 0 {
		fmt.Println("  No rows left after filtering - nothing to insert.")
		return nil
	}

	// All rows have the same keys - fetch/import pad every row to the
	// header width.
	headers := kept[0].Headers()
	columns := db.ColumnMap(headers)

	report(cfg.Table, columns, len(kept))

	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Name
	}

	values := db.Values(kept, headers)
	statements := db.BuildStatements(cfg.Table, names, values)

	if cmd.debug {
		debugf("SQL:\n%s", statements)
	}

	fmt.Println()
	fmt.Println("  Sending to database ...")

	if err := executor.Exec(context.Background(), statements); err != nil {
		return err
	}

	infof("%v row(s) inserted into %q", len(values), cfg.Table)

	return nil
}

func report(table string, columns []db.Column, rows int) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  Table : %s\n", table)
	fmt.Printf("  Cols  : %v  |  Rows : %v\n", len(columns), rows)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("  %-30s %s\n", "Original Header", "Sanitized Name")

	for _, column := range columns {
		renamed := ""
		if strings.ToLower(strings.TrimSpace(column.Header)) != column.Name {
			renamed = " (renamed)"
		}

		fmt.Printf("  %-30s %s%s\n", column.Header, column.Name, renamed)
	}

	fmt.Println(strings.Repeat("=", 60))
}
