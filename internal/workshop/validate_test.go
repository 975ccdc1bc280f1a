package workshop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// provision completes a scaffold with the check scripts so the tree
// validates clean.
func provision(t *testing.T, root, name string) {
	t.Helper()
	scaffold(t, root, name)
	base := filepath.Join(root, name)
	for _, pair := range [][2]string{{"en", "rs"}, {"en", "py"}, {"fr", "rs"}} {
		writeFile(t, filepath.Join(base, pair[0], pair[1], "deps.py"), "print('ok')\n")
		writeFile(t, filepath.Join(base, pair[0], pair[1], "intro", "check.py"), "print('ok')\n")
	}
}

func issueFor(issues []Issue, pathSuffix string) (Issue, bool) {
	for _, i := range issues {
		if strings.HasSuffix(i.Path, pathSuffix) {
			return i, true
		}
	}
	return Issue{}, false
}

func TestValidateCleanTree(t *testing.T) {
	root := t.TempDir()
	provision(t, root, "netminer")

	issues, err := ValidateTree(root, "netminer")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestValidateUnknownWorkshop(t *testing.T) {
	_, err := ValidateTree(t.TempDir(), "ghost")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestValidateReportsMissingFiles(t *testing.T) {
	root := t.TempDir()
	provision(t, root, "netminer")
	base := filepath.Join(root, "netminer")
	require.NoError(t, os.Remove(filepath.Join(base, "LICENSE")))
	require.NoError(t, os.Remove(filepath.Join(base, "en", "rs", "setup.md")))
	require.NoError(t, os.Remove(filepath.Join(base, "en", "py", "deps.py")))
	require.NoError(t, os.Remove(filepath.Join(base, "fr", "rs", "intro", "check.py")))
	require.NoError(t, os.Remove(filepath.Join(base, "fr", "rs", "intro", "lesson.md")))

	issues, err := ValidateTree(root, "netminer")
	require.NoError(t, err)

	for _, want := range []string{
		"LICENSE",
		filepath.Join("en", "rs", "setup.md"),
		filepath.Join("en", "py", "deps.py"),
		filepath.Join("fr", "rs", "intro", "check.py"),
		filepath.Join("fr", "rs", "intro", "lesson.md"),
	} {
		_, found := issueFor(issues, want)
		assert.True(t, found, "expected an issue for %s", want)
	}
	assert.Len(t, issues, 5)
}

func TestValidateSchemaViolations(t *testing.T) {
	root := t.TempDir()
	provision(t, root, "netminer")
	base := filepath.Join(root, "netminer")

	// Title is required; difficulty is capped; status is an enum.
	writeFile(t, filepath.Join(base, "en", "workshop.yaml"), "authors:\n  - Ada\ndifficulty: 9\n")
	writeFile(t, filepath.Join(base, "fr", "rs", "intro", "lesson.yaml"), "title: Intro\nstatus: Paused\n")

	issues, err := ValidateTree(root, "netminer")
	require.NoError(t, err)

	wsIssue, found := issueFor(issues, filepath.Join("en", "workshop.yaml"))
	require.True(t, found)
	assert.Contains(t, wsIssue.Msg, "title")

	lessonIssue, found := issueFor(issues, filepath.Join("fr", "rs", "intro", "lesson.yaml"))
	require.True(t, found)
	assert.Contains(t, lessonIssue.Msg, "status")
}

func TestValidateRejectsMalformedYAML(t *testing.T) {
	root := t.TempDir()
	provision(t, root, "netminer")
	writeFile(t, filepath.Join(root, "netminer", "defaults.yaml"), ":\n:::not yaml\n")

	issues, err := ValidateTree(root, "netminer")
	require.NoError(t, err)

	defIssue, found := issueFor(issues, "defaults.yaml")
	require.True(t, found)
	assert.Contains(t, defIssue.Msg, "invalid YAML")
}

func TestValidateFlagsUnknownLanguageDirs(t *testing.T) {
	root := t.TempDir()
	provision(t, root, "netminer")
	base := filepath.Join(root, "netminer")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "zz"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "en", "qq"), 0o755))

	issues, err := ValidateTree(root, "netminer")
	require.NoError(t, err)

	zz, found := issueFor(issues, "zz")
	require.True(t, found)
	assert.Contains(t, zz.Msg, "spoken")

	qq, found := issueFor(issues, filepath.Join("en", "qq"))
	require.True(t, found)
	assert.Contains(t, qq.Msg, "programming")
}

func TestValidateDefaultsMustNameExistingDirs(t *testing.T) {
	root := t.TempDir()
	provision(t, root, "netminer")
	writeFile(t, filepath.Join(root, "netminer", "defaults.yaml"),
		"spoken_language: de\nprogramming_language: go\n")

	issues, err := ValidateTree(root, "netminer")
	require.NoError(t, err)

	def, found := issueFor(issues, "defaults.yaml")
	require.True(t, found)
	assert.Contains(t, def.Msg, "no directory")
}
