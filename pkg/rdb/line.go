package rdb

import (
	"strings"

	"github.com/marioIncandeza/relay-settings/pkg/types"
)

// Outcome is what happened to one template line
type Outcome int

const (
	Unmatched Outcome = iota
	Matched
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Cleared:
		return "cleared"
	default:
		return "unmatched"
	}
}

// Line is one template line split from its terminator
type Line struct {
	Text string
	EOL  string
}

// Key returns the element name: the text before the first comma. Lines
// without a comma have no key.
func (l Line) Key() (string, bool) {
	i := strings.IndexByte(l.Text, ',')
	if i < 0 {
		return "", false
	}
	return l.Text[:i], true
}

// SplitLines splits text into lines, keeping each line's own terminator
// (\r\n or \n). A final line without a terminator is kept as is.
func SplitLines(text string) []Line {
	var lines []Line
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, Line{Text: text})
			break
		}
		body, eol := text[:i], "\n"
		if strings.HasSuffix(body, "\r") {
			body, eol = body[:len(body)-1], "\r\n"
		}
		lines = append(lines, Line{Text: body, EOL: eol})
		text = text[i+1:]
	}
	return lines
}

// JoinLines is the inverse of SplitLines
func JoinLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteString(l.EOL)
	}
	return b.String()
}

// Result is the outcome of one line after both passes
type Result struct {
	Line    Line
	Outcome Outcome
	Bit     *types.WordBit
}

// Transform runs substitution and clearing over the lines of one file.
// The input is not modified.
func Transform(lines []Line, group types.FileGroup, lookup map[string]types.WordBit, family types.Family) []Result {
	eol := defaultEOL(lines)
	results := make([]Result, len(lines))

	// pass 1: substitution
	for i, line := range lines {
		results[i] = Result{Line: line, Outcome: Unmatched}
		key, ok := line.Key()
		if !ok {
			continue
		}
		bit, ok := lookup[key]
		if !ok || !bit.AppliesTo(group) || !bit.Value.Truthy() {
			continue
		}
		b := bit
		results[i] = Result{
			Line:    Line{Text: matchedText(b, family), EOL: terminator(line, eol)},
			Outcome: Matched,
			Bit:     &b,
		}
	}

	// pass 2: clearing
	clearAll := family.ClearsGroup(group)
	clearExtra := family.ClearsExtraSection(group)
	if !clearAll && !clearExtra {
		return results
	}
	for i, r := range results {
		if r.Outcome != Unmatched {
			continue
		}
		key, ok := r.Line.Key()
		if !ok {
			continue
		}
		switch {
		case clearAll:
			results[i] = Result{
				Line:    Line{Text: key + "," + family.ClearValue + family.FieldSeparator, EOL: terminator(r.Line, eol)},
				Outcome: Cleared,
			}
		case clearExtra && types.IsExtraClearElement(key):
			results[i] = Result{
				Line:    Line{Text: key + `,""` + family.FieldSeparator, EOL: terminator(r.Line, eol)},
				Outcome: Cleared,
			}
		}
	}
	return results
}

func matchedText(bit types.WordBit, family types.Family) string {
	text := bit.Element + `,"` + bit.Value.String() + `"`
	if family.FieldSeparator == "" {
		return text
	}
	return text + family.FieldSeparator + bit.Comment
}

// terminator keeps the replaced line's terminator; a final line without
// one gets the file's terminator.
func terminator(line Line, fallback string) string {
	if line.EOL != "" {
		return line.EOL
	}
	return fallback
}

func defaultEOL(lines []Line) string {
	for _, l := range lines {
		if l.EOL != "" {
			return l.EOL
		}
	}
	return "\n"
}
