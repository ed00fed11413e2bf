// Package display formats user-facing diagnostics for the catr CLI.
//
// Everything that catr prints to the error stream about an individual input
// source goes through a Reporter, so the wording stays consistent:
//
//	r := display.NewReporter(os.Stderr)
//	r.OpenFailure("nope.txt", err) // Failed to open nope.txt: <cause>
//
// Configuration problems that do not stop the run are shown as a Warning
// block:
//
//	display.Warning{
//	    Title:      "Unknown keys in config file",
//	    Files:      []string{".catr/config.yaml"},
//	    Suggestion: "Remove them or check for typos",
//	}.Display(os.Stderr)
//
// All functions accept io.Writer so output can be captured in tests.
package display
