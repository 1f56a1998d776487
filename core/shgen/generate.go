package shgen

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DriverName is the default name of the script that runs every generated script.
const DriverName = "exec_all.sh"

const scriptMode = 0o755

// Generate writes one script per filename combination under dir and returns
// the script names (relative to dir) in generation order. A failure leaves
// the scripts already written on disk.
func Generate(ctx context.Context, dir string, p *Plan) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var names []string
	for _, f := range p.Files() {
		select {
		case <-ctx.Done():
			return names, ctx.Err()
		default:
		}
		if err := writeLines(filepath.Join(dir, f.Name), p.Commands(f)); err != nil {
			return names, fmt.Errorf("shgen: write %s: %w", f.Name, err)
		}
		names = append(names, f.Name)
	}
	return names, nil
}

// WriteDriver (re)creates the driver script at path with one "./<name>" line
// per generated script. Running it twice with the same names yields the
// same file.
func WriteDriver(path string, names []string) error {
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = "./" + n
	}
	if err := writeLines(path, lines); err != nil {
		return fmt.Errorf("shgen: write driver %s: %w", path, err)
	}
	return nil
}

func writeLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, scriptMode)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
