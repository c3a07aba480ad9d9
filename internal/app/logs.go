package app

import (
	"fmt"
	"io"

	"github.com/five82/handydiet/internal/config"
	"github.com/five82/handydiet/internal/logtail"
)

// DefaultLogLines is how many log lines Logs prints when asked for none.
const DefaultLogLines = 200

// Logs prints the last lines of the viewer's log file in readable form.
// A negative count prints the whole file.
func Logs(opts Options, lines int, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	switch {
	case lines == 0:
		lines = DefaultLogLines
	case lines < 0:
		lines = 0
	}
	path := cfg.LogPath()
	raw, err := logtail.Read(path, lines)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) == 0 {
		_, err := fmt.Fprintf(w, "Nessun log in %s\n", path)
		return err
	}
	for _, line := range logtail.FormatLines(raw) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
