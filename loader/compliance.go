package loader

import (
	"fmt"
	"os"
	"path/filepath"
)

// ComplianceRAMSize is the RAM region size given to every compliance
// fixture: generous enough for a test program's stack and scratch
// data without the fixture needing to specify it.
const ComplianceRAMSize = 1 << 16

// ComplianceFixtures lists the *.bin files under dir, sorted by name.
// An empty or missing directory yields an empty, non-error result.
func ComplianceFixtures(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read compliance fixture directory: %w", err)
	}

	var fixtures []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".bin" {
			continue
		}
		fixtures = append(fixtures, filepath.Join(dir, entry.Name()))
	}
	return fixtures, nil
}
