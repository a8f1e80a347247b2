package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"sheet2db/config"
	"sheet2db/sheet"
)

var FetchCmd = Fetch{
	workdir:     DEFAULT_WORKDIR,
	credentials: DEFAULT_CREDENTIALS,
	tokens:      "",
	url:         "",
	name:        "",
	debug:       false,
}

type Fetch struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	name        string
	debug       bool
}

func (cmd *Fetch) Name() string {
	return "fetch"
}

func (cmd *Fetch) Description() string {
	return "Fetches all rows from a Google Sheets worksheet and stages them for loading"
}

func (cmd *Fetch) Usage() string {
	return "--credentials <file> [--url <url>] [--sheet <name>]"
}

func (cmd *Fetch) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] fetch [options]\n", APP)
	fmt.Println()
	fmt.Printf("  Fetches all rows from a Google Sheets worksheet and stages them to '%s'\n", stagingFile(cmd.workdir))
	fmt.Println()
	fmt.Println("  The spreadsheet is taken from --url when provided, and from GOOGLE_SHEET_ID otherwise;")
	fmt.Println("  the worksheet name defaults to GOOGLE_SHEET_NAME. The first row is the header row and")
	fmt.Println("  short rows are padded to the header width.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheet2db --debug fetch --credentials "credentials.json" \`)
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                           --sheet "Contacts"`)
	fmt.Println()
}

func (cmd *Fetch) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("fetch", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (staged rows, tokens, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Path for the cached OAuth2 tokens file")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL. Defaults to the GOOGLE_SHEET_ID setting")
	flagset.StringVar(&cmd.name, "sheet", cmd.name, "Worksheet name. Defaults to the GOOGLE_SHEET_NAME setting")

	return flagset
}

func (cmd *Fetch) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spreadsheet := cfg.SheetID
	if strings.TrimSpace(cmd.url) != "" {
		if spreadsheet, err = spreadsheetID(cmd.url); err != nil {
			return err
		}
	}

	if spreadsheet == "" {
		return fmt.Errorf("GOOGLE_SHEET_ID is not set and no --url was provided")
	}

	name := cfg.SheetName
	if strings.TrimSpace(cmd.name) != "" {
		name = cmd.name
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", spreadsheet, name)
	}

	tokens := cmd.tokens
	if tokens == "" {
		tokens = tokensFile(cmd.credentials, cmd.workdir)
	}

	client, err := authorize(cmd.credentials, SHEETS, tokens)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	area := fmt.Sprintf("'%s'", name)

	response, err := google.Spreadsheets.Values.Get(spreadsheet, area).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	rows := stage(response.Values)

	if err := sheet.Write(stagingFile(cmd.workdir), rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		warnf("Sheet has no data rows (only headers or is empty)")
	}

	infof("Staged %v row(s) to %s", len(rows), stagingFile(cmd.workdir))

	return nil
}

// stage converts a raw cell grid into staging rows - the first row is the
// header row and every data row is padded to the header width.
func stage(values [][]any) []sheet.Row {
	if len(values) < 2 {
		return []sheet.Row{}
	}

	headers := make([]string, len(values[0]))
	for i, v := range values[0] {
		headers[i] = fmt.Sprintf("%v", v)
	}

	rows := make([]sheet.Row, 0, len(values)-1)
	for _, record := range values[1:] {
		cells := make([]string, len(record))
		for i, v := range record {
			cells[i] = fmt.Sprintf("%v", v)
		}

		rows = append(rows, sheet.NewRow(headers, cells))
	}

	return rows
}
