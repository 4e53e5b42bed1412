// Package meigen holds build information of the meigen CLI.
package meigen

var (
	// Version of meigen, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
