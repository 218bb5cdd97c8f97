package setup

import (
	"fmt"
	"strings"
)

// Status glyphs used in the rendered step list.
const (
	glyphComplete = "✓"
	glyphFailed   = "✗"
	glyphRunning  = "…"
)

// FormatResult renders a finished run as a single text block: the step list
// in order, each line prefixed with a status glyph, followed by a closing
// section with the connection summary on success or a generic retry message
// on failure. Pure string assembly; no semantic content.
func FormatResult(res *Result) string {
	var b strings.Builder

	b.WriteString("Salesforce Setup\n")
	b.WriteString("================\n\n")

	for _, step := range res.Steps {
		fmt.Fprintf(&b, "%s %d. %s", glyph(step.Status), step.Ordinal, step.Name)
		if step.Message != "" {
			fmt.Fprintf(&b, " — %s", step.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if res.Success {
		b.WriteString("Setup complete! Your Salesforce org is connected.\n\n")
		if c := res.Connection; c != nil {
			fmt.Fprintf(&b, "  Username:     %s\n", c.Username)
			fmt.Fprintf(&b, "  Instance URL: %s\n", c.InstanceURL)
			fmt.Fprintf(&b, "  Org ID:       %s\n", c.OrgID)
			fmt.Fprintf(&b, "  Alias:        %s\n", c.Alias)
		}
		b.WriteString("\nRestart your MCP client so tools pick up the new connection.\n")
	} else {
		b.WriteString("Setup Failed.\n\n")
		b.WriteString("Please run the setup again. If the problem persists, check that\n")
		b.WriteString("npm and a browser are available, or contact support.\n")
	}

	return b.String()
}

func glyph(status StepStatus) string {
	switch status {
	case StepComplete:
		return glyphComplete
	case StepFailed:
		return glyphFailed
	default:
		return glyphRunning
	}
}
