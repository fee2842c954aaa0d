package config

import "github.com/urfave/cli/v3"

// Actions holds the paths and names the GitHub Actions runner provides
type Actions struct {
	EventName   string
	EventPath   string
	OutputFile  string
	SummaryFile string
}

// Flags returns CLI flags for runner configuration
func (c *Actions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event-name",
			Usage:       "Name of the triggering event",
			Destination: &c.EventName,
			Sources:     cli.EnvVars("GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path of the triggering event payload",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "output-file",
			Usage:       "File receiving step outputs; outputs are printed to stdout when empty",
			Destination: &c.OutputFile,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "summary-file",
			Usage:       "File receiving the job summary",
			Destination: &c.SummaryFile,
			Sources:     cli.EnvVars("GITHUB_STEP_SUMMARY"),
		},
	}
}
