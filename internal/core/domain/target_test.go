package domain_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/msb/internal/adapters/xmldoc"
	"go.trai.ch/msb/internal/core/domain"
	"go.trai.ch/zerr"
)

const projectNS = `xmlns="http://schemas.microsoft.com/developer/msbuild/2003"`

// loadTarget parses a project and wraps its first <Target> element.
func loadTarget(t *testing.T, body string) (*domain.Target, *xmldoc.Document) {
	t.Helper()

	doc, err := xmldoc.ParseString(`<Project ` + projectNS + `>` + body + `</Project>`)
	require.NoError(t, err)

	for _, child := range doc.Root().Children() {
		if child.Tag() == domain.TargetElement {
			target, err := domain.NewTarget(child, false)
			require.NoError(t, err)
			return target, doc
		}
	}
	t.Fatal("document has no target")
	return nil, nil
}

func iterPull(target *domain.Target) (func() (*domain.BuildTask, bool), func()) {
	return iter.Pull(target.Tasks())
}

func taskNames(target *domain.Target) []string {
	var names []string
	for task := range target.Tasks() {
		names = append(names, task.Name())
	}
	return names
}

func TestNewTarget_Defaults(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'></Target>`)

	assert.Equal(t, "Target", target.Name())
	assert.Equal(t, "", target.Condition())
	assert.Equal(t, "", target.DependsOnTargets())
	assert.Equal(t, "", target.Inputs())
	assert.Equal(t, "", target.Outputs())
	assert.False(t, target.IsImported())
	assert.Zero(t, target.TaskCount())
}

func TestNewTarget_MissingName(t *testing.T) {
	doc, err := xmldoc.ParseString(`<Project><Target Condition='true'/></Project>`)
	require.NoError(t, err)

	_, err = domain.NewTarget(doc.Root().Children()[0], false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedDocument))

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Name", zErr.Metadata()["missing_attribute"])
}

func TestNewTarget_NilNode(t *testing.T) {
	_, err := domain.NewTarget(nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTarget_AttributesRoundTrip(t *testing.T) {
	target, doc := loadTarget(t, `<Target Name='Target' Condition='false' DependsOnTargets='X'></Target>`)

	assert.Equal(t, "false", target.Condition())
	assert.Equal(t, "X", target.DependsOnTargets())

	require.NoError(t, target.SetCondition("true"))
	require.NoError(t, target.SetDependsOnTargets("A;B"))

	assert.Equal(t, "true", target.Condition())
	assert.Equal(t, "A;B", target.DependsOnTargets())

	// The backing node sees the new values.
	assert.Equal(t, "true", target.Node().Attr("Condition"))
	assert.Equal(t, "A;B", target.Node().Attr("DependsOnTargets"))

	out, err := doc.String()
	require.NoError(t, err)
	assert.Contains(t, out, `Condition="true"`)
	assert.Contains(t, out, `DependsOnTargets="A;B"`)
}

func TestTarget_InputsOutputs(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Compile' Inputs='@(Compile)'></Target>`)

	assert.Equal(t, "@(Compile)", target.Inputs())

	require.NoError(t, target.SetOutputs("$(OutDir)app.exe"))
	assert.Equal(t, "$(OutDir)app.exe", target.Outputs())
	assert.Equal(t, "$(OutDir)app.exe", target.Node().Attr("Outputs"))
}

func TestTarget_AddNewTask(t *testing.T) {
	target, doc := loadTarget(t, `<Target Name='Target'></Target>`)

	task, err := target.AddNewTask("Message")
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.Equal(t, "Message", task.Name())
	assert.Equal(t, []string{"Message"}, taskNames(target))

	children := target.Node().Children()
	require.Len(t, children, 1)
	assert.Equal(t, task.Node(), children[0])

	out, err := doc.String()
	require.NoError(t, err)
	assert.Contains(t, out, "<Message/>")
}

func TestTarget_AddNewTask_EmptyName(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'></Target>`)

	task, err := target.AddNewTask("")
	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	assert.Zero(t, target.TaskCount())
	assert.Empty(t, target.Node().Children())
}

func TestTarget_AddNewTask_InvalidName(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'></Target>`)

	_, err := target.AddNewTask("Not A Task")
	require.Error(t, err)
	assert.ErrorIs(t, err, xmldoc.ErrInvalidName)
	assert.Zero(t, target.TaskCount())
	assert.Empty(t, target.Node().Children())
}

func TestTarget_Tasks_DocumentOrder(t *testing.T) {
	target, _ := loadTarget(t, `
		<Target Name='Target'>
			<Message Text='text' />
			<Warning Text='text' />
		</Target>`)

	next, stop := iterPull(target)
	defer stop()

	first, ok := next()
	require.True(t, ok)
	assert.Equal(t, "Message", first.Name())

	second, ok := next()
	require.True(t, ok)
	assert.Equal(t, "Warning", second.Name())

	_, ok = next()
	assert.False(t, ok)
}

func TestTarget_Tasks_Restartable(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'><Message/><Warning/></Target>`)

	assert.Equal(t, []string{"Message", "Warning"}, taskNames(target))
	assert.Equal(t, []string{"Message", "Warning"}, taskNames(target))
}

func TestTarget_RemoveTask(t *testing.T) {
	target, _ := loadTarget(t, `
		<Target Name='Target'>
			<Message Text='text' />
			<Warning Text='text' />
		</Target>`)

	next, stop := iterPull(target)
	first, ok := next()
	stop()
	require.True(t, ok)

	require.NoError(t, target.RemoveTask(first))

	next, stop = iterPull(target)
	defer stop()

	remaining, ok := next()
	require.True(t, ok)
	assert.Equal(t, "Warning", remaining.Name())

	_, ok = next()
	assert.False(t, ok)

	children := target.Node().Children()
	require.Len(t, children, 1)
	assert.Equal(t, "Warning", children[0].Tag())
}

func TestTarget_RemoveTask_Nil(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'><Message/></Target>`)

	err := target.RemoveTask(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	assert.Equal(t, 1, target.TaskCount())
}

func TestTarget_RemoveTask_ByIdentity(t *testing.T) {
	target, _ := loadTarget(t, `
		<Target Name='Target'>
			<Message Text='one' />
			<Message Text='two' />
			<Message Text='three' />
		</Target>`)

	tasks := make([]*domain.BuildTask, 3)
	require.NoError(t, target.CopyTasksTo(tasks, 0))

	require.NoError(t, target.RemoveTask(tasks[1]))

	var texts []string
	for task := range target.Tasks() {
		texts = append(texts, task.ParameterValue("Text"))
	}
	assert.Equal(t, []string{"one", "three"}, texts)

	var nodeTexts []string
	for _, child := range target.Node().Children() {
		nodeTexts = append(nodeTexts, child.Attr("Text"))
	}
	assert.Equal(t, []string{"one", "three"}, nodeTexts)
}

func TestTarget_RemoveTask_Foreign(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'><Message/></Target>`)
	other, _ := loadTarget(t, `<Target Name='Other'><Message/></Target>`)

	var foreign *domain.BuildTask
	for task := range other.Tasks() {
		foreign = task
	}

	err := target.RemoveTask(foreign)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
	assert.Equal(t, 1, target.TaskCount())
	assert.Equal(t, 1, other.TaskCount())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Target", zErr.Metadata()["target_name"])
}

func TestTarget_RemoveTask_Twice(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'><Message/></Target>`)

	task, err := target.AddNewTask("Warning")
	require.NoError(t, err)
	require.NoError(t, target.RemoveTask(task))

	err = target.RemoveTask(task)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Equal(t, []string{"Message"}, taskNames(target))
}

func TestTarget_CopyTasksTo(t *testing.T) {
	target, _ := loadTarget(t, `<Target Name='Target'><A/><B/></Target>`)

	dst := make([]*domain.BuildTask, 3)
	require.NoError(t, target.CopyTasksTo(dst, 1))
	assert.Nil(t, dst[0])
	assert.Equal(t, "A", dst[1].Name())
	assert.Equal(t, "B", dst[2].Name())

	err := target.CopyTasksTo(make([]*domain.BuildTask, 1), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = target.CopyTasksTo(dst, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTarget_Imported_ReadOnly(t *testing.T) {
	doc, err := xmldoc.ParseString(`<Project><Target Name='Imported' Condition='a'><Message/></Target></Project>`)
	require.NoError(t, err)

	target, err := domain.NewTarget(doc.Root().Children()[0], true)
	require.NoError(t, err)
	assert.True(t, target.IsImported())

	assert.ErrorIs(t, target.SetCondition("b"), domain.ErrImportedTarget)
	assert.ErrorIs(t, target.SetDependsOnTargets("X"), domain.ErrImportedTarget)
	assert.Equal(t, "a", target.Condition())
	assert.Equal(t, "a", target.Node().Attr("Condition"))

	_, err = target.AddNewTask("Warning")
	assert.ErrorIs(t, err, domain.ErrImportedTarget)

	for task := range target.Tasks() {
		assert.ErrorIs(t, target.RemoveTask(task), domain.ErrImportedTarget)
		assert.ErrorIs(t, task.SetParameterValue("Text", "x"), domain.ErrImportedTarget)
	}
	assert.Equal(t, 1, target.TaskCount())
}

func TestTarget_WriteFailureKeepsCache(t *testing.T) {
	node := &failingNode{Node: mustRoot(t, `<Target Name='T' Condition='old'/>`)}

	target, err := domain.NewTarget(node, false)
	require.NoError(t, err)

	err = target.SetCondition("new")
	require.Error(t, err)
	assert.ErrorIs(t, err, errWriteRejected)
	assert.Equal(t, "old", target.Condition())
}

// failingNode rejects every attribute write.
type failingNode struct {
	domain.Node
}

var errWriteRejected = errors.New("write rejected")

func (n *failingNode) SetAttr(string, string) error {
	return errWriteRejected
}

func mustRoot(t *testing.T, s string) domain.Node {
	t.Helper()
	doc, err := xmldoc.ParseString(s)
	require.NoError(t, err)
	return doc.Root()
}
