package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputPath returns "<model_name>_architecture.md" next to the config
// file, with spaces in the model name replaced by underscores and lowercased.
func DefaultOutputPath(configPath, modelName string) string {
	stem := strings.ToLower(strings.ReplaceAll(modelName, " ", "_"))
	return filepath.Join(filepath.Dir(configPath), stem+"_architecture.md")
}

// Write replaces the file at path with content.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
