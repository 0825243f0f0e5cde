package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	gamesrepo "github.com/gameshelf/gameshelf/internal/repo/gorm/games"
)

// NotFoundError reports a dataset path that does not exist.
type NotFoundError struct{ Path string }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Dataset at %s was not found.", e.Path)
}

// EmptyError reports a dataset with no usable rows.
type EmptyError struct{ Path string }

func (e *EmptyError) Error() string {
	return fmt.Sprintf("Dataset at %s is empty.", e.Path)
}

// Load reads the catalog CSV at path and returns its rows in file order.
// The file must carry a header with BGGId and Name columns; rows with a
// non-numeric id or an empty name are skipped.
func Load(path string) ([]gamesrepo.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.FieldsPerRecord = -1
	header, err := rd.Read()
	if err == io.EOF {
		return nil, &EmptyError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	idCol, nameCol := -1, -1
	for i, h := range header {
		switch h {
		case "BGGId":
			idCol = i
		case "Name":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("dataset %s: missing BGGId/Name columns", path)
	}

	var rows []gamesrepo.Game
	skipped := 0
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		if idCol >= len(rec) || nameCol >= len(rec) {
			skipped++
			continue
		}
		id, err := strconv.Atoi(rec[idCol])
		if err != nil || rec[nameCol] == "" {
			skipped++
			continue
		}
		rows = append(rows, gamesrepo.Game{BGGID: id, Name: rec[nameCol]})
	}
	if len(rows) == 0 {
		return nil, &EmptyError{Path: path}
	}
	if skipped > 0 {
		slog.Warn("dataset rows skipped", "path", path, "skipped", skipped)
	}
	slog.Info("dataset loaded", "path", path, "rows", len(rows))
	return rows, nil
}
