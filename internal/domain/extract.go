package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	questionPrefix = "QUESTION: "
	drawPrefix     = "PULL TAROT CARDS:"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// ExtractCommands parses one persona reply into its structured commands.
// A line of the form "QUESTION: <text>" contributes a follow-up question;
// a line "PULL TAROT CARDS:<n>" adds n to the draw count (multiple such
// lines accumulate). Directive lines are removed from DisplayText, runs
// of three or more newlines collapse to two, and the result is trimmed.
//
// A PULL TAROT CARDS line whose suffix is not an integer returns
// ErrMalformedDirective rather than a zero count: callers use that
// failure as the trigger to retry generation.
func ExtractCommands(text string) (ExtractedCommands, error) {
	var out ExtractedCommands

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, questionPrefix); ok {
			out.Questions = append(out.Questions, strings.TrimSpace(rest))
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, drawPrefix); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil || n < 0 {
				return ExtractedCommands{}, fmt.Errorf("%w: %q", ErrMalformedDirective, trimmed)
			}
			out.DrawCount += n
			continue
		}
		kept = append(kept, line)
	}

	cleaned := blankRuns.ReplaceAllString(strings.Join(kept, "\n"), "\n\n")
	out.DisplayText = strings.TrimSpace(cleaned)
	return out, nil
}

// DisplayText returns the directive-stripped rendering of a stored
// persona turn, falling back to the raw text if it no longer parses.
func DisplayText(turn Turn) string {
	if turn.Speaker != SpeakerPersona {
		return turn.Text
	}
	cmds, err := ExtractCommands(turn.Text)
	if err != nil {
		return turn.Text
	}
	return cmds.DisplayText
}
