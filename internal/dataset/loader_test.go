package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadHappyPath(t *testing.T) {
	path := writeFile(t, "games.csv", "BGGId,Name,YearPublished\n1,Die Macher,1986\n2,Dragonmaster,1981\n171,Chess,1475\n")
	rows, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].BGGID != 1 || rows[0].Name != "Die Macher" {
		t.Fatalf("first row = %+v", rows[0])
	}
	if rows[2].BGGID != 171 || rows[2].Name != "Chess" {
		t.Fatalf("last row = %+v", rows[2])
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := Load(path)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Path != path {
		t.Fatalf("error carries %q", nf.Path)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := Load(path)
	var ee *EmptyError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EmptyError, got %v", err)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "BGGId,Name\n")
	_, err := Load(path)
	var ee *EmptyError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EmptyError for header-only file, got %v", err)
	}
}

func TestLoadSkipsBadRows(t *testing.T) {
	path := writeFile(t, "bad.csv", "BGGId,Name\nnotanint,Broken\n5,Acquire\n6,\n")
	rows, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 || rows[0].BGGID != 5 {
		t.Fatalf("rows = %+v, want just Acquire", rows)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeFile(t, "cols.csv", "Id,Title\n1,Chess\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing BGGId/Name columns")
	}
}
