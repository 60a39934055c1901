// Package logging builds the zerolog logger behind the CLI's --verbose
// diagnostics.
//
// The library under pkg/pathkit never logs; its operations are pure or a
// single filesystem probe. Diagnostic output is a CLI concern, rendered
// in zerolog's console format on stderr so it never mixes with machine
// output on stdout.
package logging
