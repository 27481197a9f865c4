package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnvUp loads the first ".env" found in the working directory or one
// of its parents, up to maxDepth levels. It reports the file it loaded, or ""
// when none was found; a missing file is not an error.
func LoadDotEnvUp(maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = 6
	}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for i := 0; i <= maxDepth; i++ {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return ""
			}
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
