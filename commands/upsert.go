package commands

import (
	"context"
	"flag"
	"fmt"

	"sheet2db/config"
	"sheet2db/db"
	"sheet2db/sheet"
)

var UpsertCmd = Upsert{
	workdir: DEFAULT_WORKDIR,
	debug:   false,
}

// Upsert is the upsert-mode load: the staged rows are filtered, renamed per
// the COLUMN_MAP setting and merged into an existing table keyed on the
// SUPABASE_PK column. The table's schema is left untouched.
type Upsert struct {
	workdir string
	debug   bool
}

type upserter interface {
	Upsert(ctx context.Context, table, pk string, rows []sheet.Row) (int, error)
}

func (cmd *Upsert) Name() string {
	return "upsert"
}

func (cmd *Upsert) Description() string {
	return "Upserts the staged rows into an existing table"
}

func (cmd *Upsert) Usage() string {
	return "[--workdir <dir>]"
}

func (cmd *Upsert) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] upsert [options]\n", APP)
	fmt.Println()
	fmt.Printf("  Reads the staged rows from '%s', renames the headers per the COLUMN_MAP\n", stagingFile(cmd.workdir))
	fmt.Println("  setting and upserts the rows into the SUPABASE_TABLE table, resolving conflicts on")
	fmt.Println("  the SUPABASE_PK column. Re-running the command is idempotent.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheet2db --debug upsert --workdir ".tmp"`)
	fmt.Println()
}

func (cmd *Upsert) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("upsert", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (staged rows, tokens, etc)")

	return flagset
}

func (cmd *Upsert) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := cfg.ValidateUpsert(); err != nil {
		return err
	}

	rows, err := sheet.Read(stagingFile(cmd.workdir))
	if err != nil {
		return err
	}

	return cmd.run(cfg, rows, db.NewRESTClient(cfg.URL, cfg.Key))
}

func (cmd *Upsert) run(cfg *config.Config, rows []sheet.Row, client upserter) error {
	if len(rows) == 0 {
		fmt.Println("  Staged row file is empty - nothing to upsert.")
		return nil
	}

	kept := sheet.Filter(rows)

	fmt.Printf("  Filtered: %v raw rows -> %v after removing test entries & no-contact rows.\n", len(rows), len(kept))

	if len(kept) == 0 {
		fmt.Println("  No rows left after filtering - nothing to upsert.")
		return nil
	}

	mapped := sheet.RenameColumns(kept, cfg.ColumnMap)

	fmt.Printf("  Upserting into '%s' (PK: %s) ...\n", cfg.Table, cfg.PK)

	count, err := client.Upsert(context.Background(), cfg.Table, cfg.PK, mapped)
	if err != nil {
		return err
	}

	infof("%v row(s) upserted into %q", count, cfg.Table)

	return nil
}
