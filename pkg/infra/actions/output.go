// Package actions writes step outputs, job summaries and workflow commands
// the way the GitHub Actions runner expects them.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/nextver/pkg/domain/interfaces"
)

var _ interfaces.OutputWriter = (*Writer)(nil)

// Writer appends outputs to the $GITHUB_OUTPUT file and markdown to the
// $GITHUB_STEP_SUMMARY file. Outputs fall back to stdout when no output file
// is configured, which is the case for local runs.
type Writer struct {
	outputPath  string
	summaryPath string
	stdout      io.Writer
}

// NewWriter creates a Writer. Empty paths are allowed.
func NewWriter(outputPath, summaryPath string, stdout io.Writer) *Writer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Writer{
		outputPath:  outputPath,
		summaryPath: summaryPath,
		stdout:      stdout,
	}
}

// SetOutput writes name=value, or the heredoc form for multi-line values
func (w *Writer) SetOutput(name, value string) error {
	line := formatOutput(name, value)

	if w.outputPath == "" {
		if _, err := io.WriteString(w.stdout, line); err != nil {
			return goerr.Wrap(err, "failed to write output", goerr.V("name", name))
		}
		return nil
	}

	if err := appendFile(w.outputPath, line); err != nil {
		return goerr.Wrap(err, "failed to write output", goerr.V("name", name))
	}
	return nil
}

// AppendSummary appends markdown to the job summary. It is a no-op when no
// summary file is configured.
func (w *Writer) AppendSummary(markdown string) error {
	if w.summaryPath == "" {
		return nil
	}

	if err := appendFile(w.summaryPath, markdown); err != nil {
		return goerr.Wrap(err, "failed to write job summary")
	}
	return nil
}

// Fail prints an ::error:: workflow command so that the runner shows msg as
// an annotation of the failed step
func Fail(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "::error::%s\n", escapeData(msg))
}

func formatOutput(name, value string) string {
	if !strings.Contains(value, "\n") {
		return fmt.Sprintf("%s=%s\n", name, value)
	}

	delimiter := "EOF"
	for strings.Contains(value, delimiter) {
		delimiter += "_"
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return goerr.Wrap(err, "failed to append to file", goerr.V("path", path))
	}
	return nil
}

// escapeData escapes workflow command data
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}
