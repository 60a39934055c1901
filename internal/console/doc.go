// Package console decides how pathkit output should render and defines
// the styles used for human-facing messages.
//
// DetectMode classifies the environment as interactive (a human at a
// color terminal) or plain (pipes, CI, NO_COLOR). The Render helpers
// apply lipgloss styling only in interactive mode, so machine consumers
// always see bare text.
package console
