package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StagingFile is the hand-off file between the fetch/import commands and the
// load/upsert commands: a JSON array of flat objects, one per sheet row.
const StagingFile = "sheet_data.json"

// Read loads the staged rows from path.
func Read(path string) ([]Row, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s not found - run 'fetch' (or 'import') first", path)
	} else if err != nil {
		return nil, err
	}

	var rows []Row
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("%s: expected a JSON array of rows (%v)", path, err)
	}

	return rows, nil
}

// Write stages rows to path, creating the directory if necessary. The file
// is written to a temporary file and renamed into place.
func Write(path string, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "rows")
	if err != nil {
		return err
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
