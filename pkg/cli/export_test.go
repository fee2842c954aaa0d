package cli

// RunWithWriter exposes run so that tests can capture stdout
var RunWithWriter = run
