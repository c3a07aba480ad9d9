// Package logtail reads the tail of the handydiet log file and turns its
// JSON entries into readable lines.
//
// The interactive viewer owns the terminal, so it logs to a file instead of
// stderr. The logs subcommand uses this package to show that file:
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.FormatLines(lines) {
//		fmt.Println(line)
//	}
//
// Read keeps a ring buffer of maxLines entries, so the file is scanned once
// and memory stays bounded by the requested line count. A missing file
// yields no lines and no error.
//
// Format understands the zap production encoding (ts, level, logger, msg,
// caller, then arbitrary fields). Lines that are not JSON objects are
// returned unchanged.
package logtail
