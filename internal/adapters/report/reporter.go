// Package report renders target listings for the CLI.
package report

import (
	"io"
	"strconv"
	"text/tabwriter"

	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/msb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText renders one table per project.
	FormatText = "text"
	// FormatYAML renders the summaries as a YAML sequence.
	FormatYAML = "yaml"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = zerr.New("unsupported output format")

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter.
type Reporter struct{}

// NewReporter creates a new Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Render writes the summaries to w in the given format.
func (r *Reporter) Render(w io.Writer, format string, projects []domain.ProjectSummary) error {
	switch format {
	case FormatText, "":
		return r.renderText(w, projects)
	case FormatYAML:
		return r.renderYAML(w, projects)
	default:
		return zerr.With(zerr.Wrap(ErrUnsupportedFormat, "cannot render report"), "format", format)
	}
}

func (r *Reporter) renderText(w io.Writer, projects []domain.ProjectSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, p := range projects {
		if i > 0 {
			_, _ = io.WriteString(tw, "\n")
		}
		_, _ = io.WriteString(tw, "Project: "+p.Path+"\n")
		if p.DefaultTargets != "" {
			_, _ = io.WriteString(tw, "Default targets: "+p.DefaultTargets+"\n")
		}
		for _, imp := range p.Imports {
			_, _ = io.WriteString(tw, "Import: "+imp+"\n")
		}

		_, _ = io.WriteString(tw, "TARGET\tDEPENDS ON\tTASKS\tIMPORTED\tFINGERPRINT\n")
		for _, t := range p.Targets {
			row := t.Name + "\t" + orDash(t.DependsOnTargets) + "\t" + strconv.Itoa(len(t.Tasks)) +
				"\t" + strconv.FormatBool(t.Imported) + "\t" + orDash(t.Fingerprint) + "\n"
			_, _ = io.WriteString(tw, row)
		}
	}

	if err := tw.Flush(); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

func (r *Reporter) renderYAML(w io.Writer, projects []domain.ProjectSummary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(projects); err != nil {
		return zerr.Wrap(err, "failed to encode report")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush report")
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
