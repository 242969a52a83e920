// Package terminal provides human-readable output, styled for terminals or
// plain for pipes and logs
package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/marioIncandeza/relay-settings/pkg/generate"
	"github.com/marioIncandeza/relay-settings/pkg/rdb"
	"github.com/marioIncandeza/relay-settings/pkg/style"
	"github.com/marioIncandeza/relay-settings/pkg/types"
	"github.com/marioIncandeza/relay-settings/pkg/ui/display"
)

// Renderer writes tables and headings for people
type Renderer struct {
	output io.Writer
	styled bool
}

// New creates a styled terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w, styled: true}
}

// NewPlain creates a renderer that emits no escape sequences
func NewPlain(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *generate.Report:
		return r.renderReport(v)
	case display.WordBits:
		return r.renderWordBits(v)
	case display.RelayTypes:
		return r.renderRelayTypes(v)
	case display.Families:
		return r.renderFamilies(v)
	case display.Regions:
		return r.renderRegions(v)
	case display.TemplateInfo:
		return r.renderTemplateInfo(v)
	case display.ConfigDump:
		return r.renderConfig(v)
	case display.ConfigWritten:
		return r.RenderMessage("Wrote " + r.paint(style.PathStyle, v.Path))
	case display.Version:
		return r.printf("relaygen version %s\n  commit: %s\n  built:  %s\n", v.Version, v.Commit, v.Date)
	default:
		return r.printf("%+v\n", result)
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	if r.styled {
		return r.printf("%s\n", style.FormatError(err))
	}
	return r.printf("Error: %v\n", err)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.printf("%s\n", msg)
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, format, args...)
	return err
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) title(text string) error {
	return r.printf("%s\n", r.paint(style.TitleStyle, text))
}

func (r *Renderer) table(header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)
	t := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !r.styled {
		plain := pterm.NewStyle()
		t = t.WithStyle(plain).WithHeaderStyle(plain).WithSeparatorStyle(plain)
	}
	out, err := t.Srender()
	if err != nil {
		return err
	}
	return r.printf("%s\n", strings.TrimRight(out, "\n"))
}

func (r *Renderer) count(o rdb.Outcome, n int) string {
	s := humanize.Comma(int64(n))
	if !r.styled || n == 0 {
		return s
	}
	return style.OutcomeStyle(o).Sprint(s)
}

func (r *Renderer) renderReport(rep *generate.Report) error {
	matched, cleared, unmatched := rep.Totals()
	heading := fmt.Sprintf("Generated %d relay(s) of %s in %s",
		len(rep.Relays), rep.RelayType, rep.Duration.Round(time.Millisecond))
	if err := r.printf("%s\n", r.paint(style.SuccessStyle, heading)); err != nil {
		return err
	}
	if err := r.printf("%s %s -> %s\n",
		r.paint(style.MutedStyle, "template"),
		r.paint(style.PathStyle, rep.Template),
		r.paint(style.PathStyle, rep.Output)); err != nil {
		return err
	}
	if len(rep.Excluded) > 0 {
		if err := r.printf("%s %s\n", r.paint(style.MutedStyle, "excluded groups"), strings.Join(rep.Excluded, ", ")); err != nil {
			return err
		}
	}
	if len(rep.Relays) == 0 {
		return r.printf("%s\n", r.paint(style.WarningStyle, "No relays found in the class table"))
	}

	rows := make([][]string, 0, len(rep.Relays))
	for _, relay := range rep.Relays {
		m, c, u := relay.Totals()
		rows = append(rows, []string{
			relay.ID,
			humanize.Comma(int64(len(relay.Files))),
			humanize.Comma(int64(relay.WordBits)),
			r.count(rdb.Matched, m),
			r.count(rdb.Cleared, c),
			r.count(rdb.Unmatched, u),
			humanize.Bytes(uint64(relay.Bytes())),
		})
	}
	if err := r.table([]string{"Relay", "Files", "Word bits", "Matched", "Cleared", "Unmatched", "Size"}, rows); err != nil {
		return err
	}
	return r.printf("%s matched, %s cleared, %s unmatched, %s written  %s\n",
		humanize.Comma(int64(matched)),
		humanize.Comma(int64(cleared)),
		humanize.Comma(int64(unmatched)),
		humanize.Bytes(uint64(rep.Bytes())),
		r.paint(style.MutedStyle, "run "+rep.RunID))
}

func (r *Renderer) renderWordBits(v display.WordBits) error {
	if len(v.Relays) == 0 {
		return r.printf("%s\n", r.paint(style.WarningStyle, "No relays found in the class table"))
	}
	for i, relay := range v.Relays {
		if i > 0 {
			if err := r.printf("\n"); err != nil {
				return err
			}
		}
		if err := r.title(fmt.Sprintf("%s (%d word bits)", relay.Relay.Name(), len(relay.WordBits))); err != nil {
			return err
		}
		rows := make([][]string, 0, len(relay.WordBits))
		for _, wb := range relay.WordBits {
			group := "*"
			if !wb.Group.IsNull() {
				group = wb.Group.String()
			}
			rows = append(rows, []string{wb.Element, wb.Value.String(), group, wb.Comment})
		}
		if err := r.table([]string{"Element", "Value", "Group", "Comment"}, rows); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderRelayTypes(v display.RelayTypes) error {
	rows := make([][]string, 0, len(v.Items))
	for _, rt := range v.Items {
		rows = append(rows, []string{
			r.paint(style.CodeStyle, rt.Key), rt.Label, rt.Sheet, rt.ClassTable, rt.SettingsTable, rt.Family, rt.Identity, orDash(rt.Regions),
		})
	}
	return r.table([]string{"Type", "Label", "Sheet", "Class table", "Settings table", "Family", "Identity", "Regions"}, rows)
}

func (r *Renderer) renderFamilies(v display.Families) error {
	rows := make([][]string, 0, len(v.Items))
	for _, f := range v.Items {
		extra := "no"
		if f.ExtraClearSection {
			extra = "yes"
		}
		rows = append(rows, []string{
			r.paint(style.CodeStyle, f.Name),
			orDash(f.ClearValue),
			orDash(strings.Join(f.SortedClearGroups(), ", ")),
			extra,
			separatorName(f.FieldSeparator),
			f.Encoding,
		})
	}
	return r.table([]string{"Family", "Clear value", "Clear groups", types.ExtraClearGroup + " pass", "Separator", "Encoding"}, rows)
}

func (r *Renderer) renderRegions(v display.Regions) error {
	if len(v.Items) == 0 {
		return r.printf("%s has no regions\n", v.RelayType)
	}
	if err := r.title("Regions of " + v.RelayType); err != nil {
		return err
	}
	rows := make([][]string, 0, len(v.Items))
	for _, region := range v.Items {
		rows = append(rows, []string{region.Label, region.Group})
	}
	return r.table([]string{"Region", "Group"}, rows)
}

func (r *Renderer) renderTemplateInfo(v display.TemplateInfo) error {
	if len(v.Info) == 0 {
		return r.printf("No [INFO] section in %s\n", r.paint(style.PathStyle, v.Dir))
	}
	if err := r.title(v.Dir); err != nil {
		return err
	}
	rows := make([][]string, 0, len(v.Info))
	for _, k := range v.Keys() {
		rows = append(rows, []string{k, v.Info[k]})
	}
	return r.table([]string{"Key", "Value"}, rows)
}

func (r *Renderer) renderConfig(v display.ConfigDump) error {
	sources := "embedded defaults"
	if len(v.Sources) > 0 {
		sources += ", " + strings.Join(v.Sources, ", ")
	}
	if err := r.printf("%s\n", r.paint(style.MutedStyle, "# sources: "+sources)); err != nil {
		return err
	}
	out, err := v.Config.RenderTOML()
	if err != nil {
		return err
	}
	_, err = r.output.Write(out)
	return err
}

func separatorName(sep string) string {
	switch sep {
	case "":
		return "none"
	case types.QuickSetSeparator:
		return "FS (0x1C)"
	default:
		return fmt.Sprintf("%q", sep)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
