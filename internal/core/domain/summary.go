package domain

// ProjectSummary is a detached snapshot of a loaded project, used for reporting.
type ProjectSummary struct {
	Path           string          `yaml:"path"`
	DefaultTargets string          `yaml:"defaultTargets,omitempty"`
	Imports        []string        `yaml:"imports,omitempty"`
	Targets        []TargetSummary `yaml:"targets"`
}

// TargetSummary is a detached snapshot of one target.
type TargetSummary struct {
	Name             string        `yaml:"name"`
	Condition        string        `yaml:"condition,omitempty"`
	DependsOnTargets string        `yaml:"dependsOnTargets,omitempty"`
	Imported         bool          `yaml:"imported,omitempty"`
	Fingerprint      string        `yaml:"fingerprint,omitempty"`
	Tasks            []TaskSummary `yaml:"tasks,omitempty"`
}

// TaskSummary is a detached snapshot of one task.
type TaskSummary struct {
	Name       string      `yaml:"name"`
	Condition  string      `yaml:"condition,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty"`
}

// Parameter is one task parameter.
type Parameter struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Summarize snapshots the target and its tasks. The fingerprint is left empty.
func (t *Target) Summarize() TargetSummary {
	s := TargetSummary{
		Name:             t.Name(),
		Condition:        t.Condition(),
		DependsOnTargets: t.DependsOnTargets(),
		Imported:         t.IsImported(),
		Tasks:            make([]TaskSummary, 0, len(t.tasks)),
	}
	for task := range t.Tasks() {
		ts := TaskSummary{
			Name:      task.Name(),
			Condition: task.Condition(),
		}
		for _, name := range task.ParameterNames() {
			ts.Parameters = append(ts.Parameters, Parameter{Name: name, Value: task.ParameterValue(name)})
		}
		s.Tasks = append(s.Tasks, ts)
	}
	return s
}
