package interfaces

// OutputWriter publishes results to the CI runner
type OutputWriter interface {
	// SetOutput sets a named step output
	SetOutput(name, value string) error

	// AppendSummary appends markdown to the job summary
	AppendSummary(markdown string) error
}
