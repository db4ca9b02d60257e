// cmd/hop/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), cobra command tree
// PURPOSE: Drive every hop command end to end through the root command

package hop

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	root string
	home string
}

// newCLIEnv isolates the user's config, state and environment from the test
func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()

	t.Setenv("HOME", filepath.Join(root, "user"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"HOP_CONFIG_FILE", "HOP_HOME_PATH", "HOP_HOME_NAME", "HOP_LOGGING_FILE", "HOP_OUTPUT_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return &cliEnv{root: root, home: filepath.Join(root, "marks")}
}

func (e *cliEnv) dir(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(e.root, name)
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes hop with the bookmark home pointed at the test directory
func (e *cliEnv) run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return e.runRaw(t, stdin, append([]string{"-c", e.home}, args...)...)
}

func (e *cliEnv) runRaw(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestList_Empty(t *testing.T) {
	e := newCLIEnv(t)

	res := e.run(t, "", "list")
	require.NoError(t, res.err)
	assert.Equal(t, "No entries to list.\n"+
		"Please create some entries with hop mark <link> <path>\n"+
		"Please use hop help for more information\n", res.stdout)

	info, err := os.Stat(e.home)
	require.NoError(t, err, "the bookmark home is created on first use")
	assert.True(t, info.IsDir())
}

func TestMarkListJump(t *testing.T) {
	e := newCLIEnv(t)
	somedir := e.dir(t, "somedir")

	res := e.run(t, "", "mark", "blee", somedir)
	require.NoError(t, res.err)
	assert.Equal(t, "Created link from blee -> "+somedir+"\n", res.stdout)

	target, err := os.Readlink(filepath.Join(e.home, "blee"))
	require.NoError(t, err)
	assert.Equal(t, somedir, target)

	res = e.run(t, "", "list")
	require.NoError(t, res.err)
	assert.Equal(t, "blee\n", res.stdout)

	res = e.run(t, "", "j", "blee")
	require.NoError(t, res.err)
	assert.Equal(t, somedir+"\n", res.stdout)

	res = e.run(t, "", "table")
	require.NoError(t, res.err)
	assert.Equal(t, "blee -> "+somedir+"\n", res.stdout)
}

func TestMark_RelativeTarget(t *testing.T) {
	e := newCLIEnv(t)
	work := e.dir(t, "work")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	res := e.run(t, "", "m", "here", ".")
	require.NoError(t, res.err)

	// The working directory may be reported through a symlinked path
	resolved, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "Created link from here -> "+resolved+"\n", res.stdout)
}

func TestMark_Failures(t *testing.T) {
	e := newCLIEnv(t)
	existing := e.dir(t, "existing")

	res := e.run(t, "", "mark", "blee", "/does/not/exist")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidTarget))
	assert.Equal(t, "Could not mark directory: blee -> /does/not/exist\n"+
		"Error: A directory named `/does/not/exist` does not exist or you do not have permission to it.\n", res.stderr)
	assert.Empty(t, res.stdout)

	require.NoError(t, e.run(t, "", "mark", "blee", existing).err)

	other := e.dir(t, "other")
	res = e.run(t, "", "mark", "blee", other)
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrLinkExists))
	assert.Contains(t, res.stderr, "A link named `blee` already exists. Aborting mark creation.")

	target, err := os.Readlink(filepath.Join(e.home, "blee"))
	require.NoError(t, err)
	assert.Equal(t, existing, target, "a conflicting mark leaves the link alone")
}

func TestJump_Missing(t *testing.T) {
	e := newCLIEnv(t)

	res := e.run(t, "", "jump", "bogus")
	require.Error(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Equal(t, "Could not retrieve jump target: bogus\nError: Could not find link: bogus\n", res.stderr)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		removed bool
		message string
	}{
		{name: "confirmed", stdin: "Y\n", args: []string{"delete", "tag2"}, removed: true, message: "Removed link tag2 -> %s\n"},
		{name: "lowercase", stdin: "y\n", args: []string{"d", "tag2"}, removed: true, message: "Removed link tag2 -> %s\n"},
		{name: "declined", stdin: "N\n", args: []string{"delete", "tag2"}, message: "Aborting delete of tag2\n"},
		{name: "empty answer", stdin: "\n", args: []string{"delete", "tag2"}, message: "Aborting delete of tag2\n"},
		{name: "yes flag", stdin: "", args: []string{"delete", "--yes", "tag2"}, removed: true, message: "Removed link tag2 -> %s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCLIEnv(t)
			d2 := e.dir(t, "d2")
			require.NoError(t, e.run(t, "", "mark", "tag2", d2).err)

			res := e.run(t, tt.stdin, tt.args...)
			require.NoError(t, res.err)

			prompt := "Are you sure you want to delete tag2 which links to " + d2 + " ?\n"
			message := tt.message
			if strings.Contains(message, "%s") {
				message = strings.ReplaceAll(message, "%s", d2)
			}
			assert.Equal(t, prompt+message, res.stdout)

			_, err := os.Lstat(filepath.Join(e.home, "tag2"))
			if tt.removed {
				assert.True(t, os.IsNotExist(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDelete_Missing(t *testing.T) {
	e := newCLIEnv(t)

	res := e.run(t, "y\n", "delete", "tag2")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrLinkNotFound))
	assert.Empty(t, res.stdout, "no prompt for a missing link")
	assert.Equal(t, "Could not delete link: tag2\nError: Could not find link named:`tag2` for deletion\n", res.stderr)
}

func TestDelete_NoInput(t *testing.T) {
	e := newCLIEnv(t)
	d2 := e.dir(t, "d2")
	require.NoError(t, e.run(t, "", "mark", "tag2", d2).err)

	res := e.run(t, "", "delete", "tag2")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInput))
	assert.Contains(t, res.stderr, "Could not read stdin line")
}

func TestNoCommand_PrintsHelp(t *testing.T) {
	e := newCLIEnv(t)

	res := e.runRaw(t, "")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "USAGE:")
	assert.Contains(t, res.stdout, "mark")
	assert.Contains(t, res.stdout, "snippet")
}

func TestArgumentErrors(t *testing.T) {
	e := newCLIEnv(t)

	assert.Error(t, e.run(t, "", "jump").err)
	assert.Error(t, e.run(t, "", "mark", "only-name").err)
	assert.Error(t, e.runRaw(t, "", "bogus").err)
}

func TestHomeFromConfigFile(t *testing.T) {
	e := newCLIEnv(t)
	d1 := e.dir(t, "d1")

	configPath := filepath.Join(e.root, "hop.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[home]\npath = \""+e.home+"\"\n"), 0644))

	res := e.runRaw(t, "", "--config-file", configPath, "mark", "tag1", d1)
	require.NoError(t, res.err)

	_, err := os.Lstat(filepath.Join(e.home, "tag1"))
	assert.NoError(t, err)
}

func TestDefaultHome(t *testing.T) {
	e := newCLIEnv(t)
	d1 := e.dir(t, "d1")

	require.NoError(t, e.runRaw(t, "", "mark", "tag1", d1).err)

	_, err := os.Lstat(filepath.Join(e.root, "user", ".hop", "tag1"))
	assert.NoError(t, err)
}

func TestInvalidConfig(t *testing.T) {
	e := newCLIEnv(t)
	t.Setenv("HOP_OUTPUT_COLOR", "sometimes")

	res := e.run(t, "", "list")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigLoad))
	assert.True(t, strings.HasPrefix(res.stderr, "Could not load configuration\n"))
}

func TestSnippet(t *testing.T) {
	e := newCLIEnv(t)

	res := e.runRaw(t, "", "snippet", "--shell", "fish")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "function hop")

	res = e.runRaw(t, "", "snippet", "--shell", "tcsh")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestGenConfig(t *testing.T) {
	e := newCLIEnv(t)

	res := e.runRaw(t, "", "gen-config")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[home]")
	assert.Contains(t, res.stdout, `name = ".hop"`)

	res = e.run(t, "", "gen-config", "--effective")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, e.home)

	res = e.runRaw(t, "", "gen-config", "--write")
	require.NoError(t, res.err)
	written := filepath.Join(e.root, "config", "hop", "config.toml")
	assert.Equal(t, "Wrote default configuration to "+written+"\n", res.stdout)
	assert.FileExists(t, written)

	res = e.runRaw(t, "", "gen-config", "--write")
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrFileWrite))
}

func TestHelpTopic(t *testing.T) {
	e := newCLIEnv(t)

	res := e.runRaw(t, "", "help", "shell")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "# Shell integration")

	res = e.runRaw(t, "", "help", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "config")
	assert.Contains(t, res.stdout, "links")
}

func TestVersion(t *testing.T) {
	e := newCLIEnv(t)

	res := e.runRaw(t, "", "--version")
	require.NoError(t, res.err)
	assert.Equal(t, "hop dev\n", res.stdout)

	res = e.runRaw(t, "", "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "hop version dev\n"))
}

func TestCompletionAndMan(t *testing.T) {
	e := newCLIEnv(t)

	res := e.runRaw(t, "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "hop")

	res = e.runRaw(t, "", "man")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, ".TH \"HOP\"")
}
