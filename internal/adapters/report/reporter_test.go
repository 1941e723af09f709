package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/msb/internal/adapters/report"
	"go.trai.ch/msb/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func sampleProjects() []domain.ProjectSummary {
	return []domain.ProjectSummary{{
		Path:           "app.proj",
		DefaultTargets: "Build",
		Targets: []domain.TargetSummary{
			{
				Name:             "Build",
				DependsOnTargets: "Restore",
				Fingerprint:      "00000000000000aa",
				Tasks: []domain.TaskSummary{
					{Name: "Exec", Parameters: []domain.Parameter{{Name: "Command", Value: "make"}}},
					{Name: "Message"},
				},
			},
			{Name: "Clean", Imported: true},
		},
	}}
}

func TestRender_Text(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		projects   []domain.ProjectSummary
		goldenName string
	}{
		{
			name:       "single project",
			format:     report.FormatText,
			projects:   sampleProjects(),
			goldenName: "text_single",
		},
		{
			name:   "multiple projects with default format",
			format: "",
			projects: []domain.ProjectSummary{
				{Path: "a.proj"},
				{Path: "b.proj", Imports: []string{"common.targets"}},
			},
			goldenName: "text_multiple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.NewReporter().Render(&buf, tt.format, tt.projects))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewReporter().Render(&buf, report.FormatYAML, sampleProjects()))

	assert.Contains(t, buf.String(), "path: app.proj")
	assert.Contains(t, buf.String(), "fingerprint: 00000000000000aa")
	assert.NotContains(t, buf.String(), "condition:", "empty fields are omitted")

	var decoded []domain.ProjectSummary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleProjects(), decoded)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.NewReporter().Render(&buf, "json", sampleProjects())
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
	assert.Empty(t, buf.String())
}
