package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheet2db/config"
	"sheet2db/sheet"
)

var ImportCmd = Import{
	workdir: DEFAULT_WORKDIR,
	file:    "",
	name:    "",
	debug:   false,
}

// Import stages rows from a local Excel workbook instead of the Sheets API,
// for runs where the sheet has already been exported.
type Import struct {
	workdir string
	file    string
	name    string
	debug   bool
}

func (cmd *Import) Name() string {
	return "import"
}

func (cmd *Import) Description() string {
	return "Stages rows from a local .xlsx workbook for loading"
}

func (cmd *Import) Usage() string {
	return "--file <file> [--sheet <name>]"
}

func (cmd *Import) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] import [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Printf("  Reads a worksheet from a local .xlsx workbook and stages the rows to '%s',\n", stagingFile(cmd.workdir))
	fmt.Println("  in the same format as 'fetch'. The first row is the header row and short rows")
	fmt.Println("  are padded to the header width.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheet2db import --file "contacts.xlsx" --sheet "Contacts"`)
	fmt.Println()
}

func (cmd *Import) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("import", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (staged rows, tokens, etc)")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Path of the .xlsx workbook to import")
	flagset.StringVar(&cmd.name, "sheet", cmd.name, "Worksheet name. Defaults to the GOOGLE_SHEET_NAME setting")

	return flagset
}

func (cmd *Import) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	name := cfg.SheetName
	if strings.TrimSpace(cmd.name) != "" {
		name = cmd.name
	}

	if cmd.debug {
		debugf("Workbook - file:%s  worksheet:%s", cmd.file, name)
	}

	f, err := excelize.OpenFile(cmd.file)
	if err != nil {
		return fmt.Errorf("unable to open workbook (%v)", err)
	}

	defer f.Close()

	records, err := f.GetRows(name)
	if err != nil {
		return fmt.Errorf("unable to read worksheet '%s' (%v)", name, err)
	}

	grid := make([][]any, 0, len(records))
	for _, record := range records {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		grid = append(grid, row)
	}

	rows := stage(grid)

	if err := sheet.Write(stagingFile(cmd.workdir), rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		warnf("Worksheet has no data rows (only headers or is empty)")
	}

	infof("Staged %v row(s) to %s", len(rows), stagingFile(cmd.workdir))

	return nil
}
