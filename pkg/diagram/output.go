package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DOTPath replaces the extension of output with ".dot", or appends it when
// output has none.
func DOTPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".dot"
}

// WriteDOT replaces the file at path with dot.
func WriteDOT(path, dot string) error {
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
