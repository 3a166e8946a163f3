package search

import (
	"bufio"
	"fmt"
	"io"
)

// Logger receives diagnostic messages from a Runner.
// logger.ConsoleLogger, logger.FileLogger and logger.MultiLogger satisfy it.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string)  {}

// Runner executes a search and prints the matching lines.
type Runner struct {
	out  io.Writer
	log  Logger
	load func(filename string) (string, error)
}

// NewRunner creates a Runner that prints matches to out.
// If log is nil, diagnostics are discarded.
func NewRunner(out io.Writer, log Logger) *Runner {
	if log == nil {
		log = nopLogger{}
	}
	return &Runner{
		out:  out,
		log:  log,
		load: LoadFile,
	}
}

// Run loads cfg.Filename, filters it and writes each match followed by a
// newline. Loader errors are returned unchanged; a failed write is a KindIO error.
func (r *Runner) Run(cfg *Config) error {
	r.log.LogDebug(fmt.Sprintf("loading %s", cfg.Filename))

	contents, err := r.load(cfg.Filename)
	if err != nil {
		return err
	}
	r.log.LogDebug(fmt.Sprintf("loaded %d bytes, searching %s for %q", len(contents), cfg.Mode(), cfg.Query))

	results := Filter(cfg, contents)
	r.log.LogInfo(fmt.Sprintf("%d matching line(s) in %s", len(results), cfg.Filename))

	w := bufio.NewWriter(r.out)
	for _, line := range results {
		if _, err := w.WriteString(line); err != nil {
			return ioError("", fmt.Errorf("write results: %w", err))
		}
		if err := w.WriteByte('\n'); err != nil {
			return ioError("", fmt.Errorf("write results: %w", err))
		}
	}
	if err := w.Flush(); err != nil {
		return ioError("", fmt.Errorf("write results: %w", err))
	}
	return nil
}
