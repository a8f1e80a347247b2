package commands

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"regexp"

	"sheet2db/sheet"
)

const APP = "sheet2db"
const VERSION = "v0.1.0"

const (
	DEFAULT_WORKDIR     = ".tmp"
	DEFAULT_CREDENTIALS = "credentials.json"

	SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// Options are the global command line options, shared by all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by the sheet2db subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

var urlExpr = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// spreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func spreadsheetID(url string) (string, error) {
	match := urlExpr.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func stagingFile(workdir string) string {
	return filepath.Join(workdir, sheet.StagingFile)
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug   Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
