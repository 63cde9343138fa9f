package base

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/attachid/internal/config"
)

// Line is a non-blank input line and its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// ReadLines reads path from fs, skipping blank lines and "#" comments.
// Surrounding whitespace is trimmed.
func ReadLines(fs afero.Fs, path string) ([]Line, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []Line
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return lines, nil
}

// ArgLines turns positional arguments into Lines numbered by position.
func ArgLines(args []string) []Line {
	lines := make([]Line, len(args))
	for i, a := range args {
		lines[i] = Line{Number: i + 1, Text: a}
	}
	return lines
}

// LoadConfig loads the config at path (see config.Load). A log_level set in
// the file is applied to the command's logger; otherwise the level is kept.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.Log != nil && cfg.LogLevel != "" {
		c.Log.SetLevel(cfg.Level())
	}
	return cfg, nil
}
