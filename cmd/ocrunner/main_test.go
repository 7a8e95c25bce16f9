package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// gofmt collapses consecutive blank lines, so a source holding one is unformatted.
func TestNoConsecutiveBlankLines(t *testing.T) {
	for _, root := range []string{".", filepath.Join("..", "..", "pkg")} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if i := bytes.Index(src, []byte("\n\n\n")); i >= 0 {
				t.Errorf("%s:%d: consecutive blank lines", path, bytes.Count(src[:i], []byte("\n"))+2)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("walk %s: %v", root, err)
		}
	}
}
