// internal/mirror/mirror.go
package mirror

import (
	"os"
	"path/filepath"
)

// Resolve returns where the rewritten copy of path goes. With an empty
// outRoot the file is rewritten in place. Otherwise the directory
// layout under root is re-created below outRoot and intermediate
// directories are created (idempotent, safe to repeat).
func Resolve(root, path, outRoot string) (string, error) {
	if outRoot == "" {
		return path, nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	out := filepath.Join(outRoot, rel)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	return out, nil
}
