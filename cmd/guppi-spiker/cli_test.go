package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spiker/cmd/guppi-spiker/ui"
	"spiker/internal/spike"
)

func TestNew_WithName(t *testing.T) {
	isolate(t)

	stdout, _, code := runCLI(t, "new", "my-spike", "--no-git")
	require.Equal(t, 0, code)

	path := strings.TrimSpace(stdout)
	assert.Regexp(t, regexp.MustCompile(`\d{4}-\d{2}-\d{2}-my-spike$`), path)
	assert.True(t, strings.HasPrefix(filepath.Base(path), time.Now().Format(spike.DateLayout)+"-"))
	assert.DirExists(t, path)
	assert.NoDirExists(t, filepath.Join(path, ".git"))
}

func TestNew_WithoutName(t *testing.T) {
	isolate(t)

	stdout, _, code := runCLI(t, "new", "--no-git")
	require.Equal(t, 0, code)
	assert.Regexp(t, regexp.MustCompile(`\d{4}-\d{2}-\d{2}-[a-z]+-[a-z]+-[a-z]+$`), strings.TrimSpace(stdout))
}

func TestNew_CreatesRoot(t *testing.T) {
	isolate(t)
	root := filepath.Join(t.TempDir(), "not", "yet")
	t.Setenv("SPIKER_PATH", root)

	stdout, _, code := runCLI(t, "new", "first", "--no-git")
	require.Equal(t, 0, code)
	assert.Equal(t, root, filepath.Dir(strings.TrimSpace(stdout)))
}

func TestNew_Idempotent(t *testing.T) {
	isolate(t)

	first, _, code := runCLI(t, "new", "again", "--no-git")
	require.Equal(t, 0, code)
	second, stderr, code := runCLI(t, "new", "again", "--no-git")
	require.Equal(t, 0, code)
	assert.Equal(t, first, second)
	assert.Empty(t, stderr)
}

func TestNew_WithGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	isolate(t)

	stdout, _, code := runCLI(t, "new", "git-spike")
	require.Equal(t, 0, code)
	assert.DirExists(t, filepath.Join(strings.TrimSpace(stdout), ".git"))
}

func TestNew_MissingGitIsIgnored(t *testing.T) {
	isolate(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("git_binary: spiker-no-such-git\n"), 0644))

	stdout, stderr, code := runCLI(t, "--config", configFile, "new", "still-works")
	require.Equal(t, 0, code)
	assert.DirExists(t, strings.TrimSpace(stdout))
	assert.Empty(t, stderr)
}

func TestNew_ConfigDisablesGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	isolate(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("git: false\n"), 0644))

	stdout, _, code := runCLI(t, "--config", configFile, "new", "plain")
	require.Equal(t, 0, code)
	assert.NoDirExists(t, filepath.Join(strings.TrimSpace(stdout), ".git"))

	stdout, _, code = runCLI(t, "--config", configFile, "new", "forced", "--git")
	require.Equal(t, 0, code)
	assert.DirExists(t, filepath.Join(strings.TrimSpace(stdout), ".git"))
}

func TestNew_EmptySlugGenerates(t *testing.T) {
	for _, slug := range []string{"", "   "} {
		t.Run(fmt.Sprintf("%q", slug), func(t *testing.T) {
			isolate(t)

			stdout, stderr, code := runCLI(t, "new", slug, "--no-git")
			require.Equal(t, 0, code, stderr)

			path := strings.TrimSpace(stdout)
			assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[a-z]+-[a-z]+-[a-z]+$`), filepath.Base(path))
			assert.DirExists(t, path)
		})
	}
}

func TestNew_DotSlugStaysUnderRoot(t *testing.T) {
	root := isolate(t)

	stdout, _, code := runCLI(t, "new", "..", "--no-git")
	require.Equal(t, 0, code)

	path := strings.TrimSpace(stdout)
	assert.Equal(t, root, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "-.."))
	assert.DirExists(t, path)
}

func TestNew_RejectsPathSlug(t *testing.T) {
	root := isolate(t)

	stdout, stderr, code := runCLI(t, "new", "../escape", "--no-git")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid slug")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_Empty(t *testing.T) {
	isolate(t)

	stdout, _, code := runCLI(t, "list")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "No spikes found")
}

func TestList_MissingRoot(t *testing.T) {
	isolate(t)
	t.Setenv("SPIKER_PATH", filepath.Join(t.TempDir(), "missing"))

	stdout, _, code := runCLI(t, "list")
	assert.Equal(t, 0, code)
	assert.Equal(t, "No spikes found.\n", stdout)
}

func TestList_ShowsSpikes(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-10-alpha", "2026-02-12-beta")

	stdout, _, code := runCLI(t, "list")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-02-12  beta", lines[0])
	assert.Equal(t, "2026-02-10  alpha", lines[1])
}

func TestList_Long(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-10-alpha/.git", "2026-02-12-beta")

	stdout, _, code := runCLI(t, "list", "--long")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "beta")
	assert.NotContains(t, lines[0], "git")
	assert.Contains(t, lines[1], "alpha")
	assert.Contains(t, lines[1], "git")
	assert.Contains(t, lines[1], filepath.Join(root, "2026-02-10-alpha"))
}

func TestList_JSON(t *testing.T) {
	root := isolate(t)

	stdout, _, code := runCLI(t, "list", "--json")
	require.Equal(t, 0, code)
	assert.Equal(t, "[]\n", stdout)

	mkSpikes(t, root, "2026-02-12-beta")
	stdout, _, code = runCLI(t, "list", "--json")
	require.Equal(t, 0, code)

	var entries []spike.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	assert.Equal(t, []spike.Entry{{Date: "2026-02-12", Slug: "beta", Path: filepath.Join(root, "2026-02-12-beta")}}, entries)
}

func TestFind_Matches(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-12-redis-caching", "2026-02-12-graphql-test")

	stdout, _, code := runCLI(t, "find", "redis")
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(root, "2026-02-12-redis-caching")+"\n", stdout)
}

func TestFind_NoMatch(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-12-redis-caching")

	stdout, _, code := runCLI(t, "find", "nonexistent")
	assert.Equal(t, 1, code)
	assert.Equal(t, "No spikes matching 'nonexistent'.\n", stdout)
	assert.NotContains(t, stdout, root)
}

func TestFind_CaseInsensitive(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-12-Redis-Caching")

	stdout, _, code := runCLI(t, "find", "redis")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Redis-Caching")
}

func TestFind_Glob(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-12-redis-caching", "2026-02-11-graphql-redis")

	stdout, _, code := runCLI(t, "find", "--glob", "redis-*")
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(root, "2026-02-12-redis-caching")+"\n", stdout)

	_, _, code = runCLI(t, "find", "-g", "kafka-*")
	assert.Equal(t, 1, code)
}

func TestPath_ReturnsFirstMatch(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-10-redis-old", "2026-02-12-redis-new")

	stdout, _, code := runCLI(t, "path", "redis")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "redis-new")
	assert.Equal(t, 0, strings.Count(strings.TrimSpace(stdout), "\n"))
	assert.Equal(t, filepath.Join(root, "2026-02-12-redis-new")+"\n", stdout)
}

func TestPath_NoMatch(t *testing.T) {
	isolate(t)

	stdout, stderr, code := runCLI(t, "path", "nonexistent")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "No spikes matching 'nonexistent'.\n", stderr)
}

func stubPicker(t *testing.T, isTTY bool, keys ...tea.KeyMsg) {
	t.Helper()
	oldInteractive, oldRun := interactive, runPicker
	t.Cleanup(func() { interactive, runPicker = oldInteractive, oldRun })

	interactive = func() bool { return isTTY }
	runPicker = func(p ui.Picker) (ui.Picker, error) {
		var model tea.Model = p
		for _, k := range keys {
			model, _ = model.Update(k)
		}
		return model.(ui.Picker), nil
	}
}

func TestPick_Choose(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-10-redis-old", "2026-02-12-redis-new", "2026-02-11-graphql")
	stubPicker(t, true, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	stdout, _, code := runCLI(t, "pick", "redis")
	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(root, "2026-02-10-redis-old")+"\n", stdout)
}

func TestPick_Cancel(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-12-redis-new")
	stubPicker(t, true, tea.KeyMsg{Type: tea.KeyEsc})

	stdout, _, code := runCLI(t, "pick")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestPick_NoTerminal(t *testing.T) {
	root := isolate(t)
	mkSpikes(t, root, "2026-02-12-redis-new")
	stubPicker(t, false)

	stdout, stderr, code := runCLI(t, "pick")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "interactive terminal")
}

func TestPick_NothingToPick(t *testing.T) {
	isolate(t)
	stubPicker(t, true)

	_, stderr, code := runCLI(t, "pick")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "No spikes found")
}

func TestSkillShow(t *testing.T) {
	isolate(t)

	stdout, _, code := runCLI(t, "skill", "show")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "spiker")
	assert.Contains(t, stdout, "guppi-spiker")
	assert.True(t, strings.HasPrefix(stdout, "---\n"), "raw document includes frontmatter")
}

func TestSkillShow_Render(t *testing.T) {
	isolate(t)

	stdout, _, code := runCLI(t, "skill", "show", "--render")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "spiker")
	assert.NotContains(t, stdout, "name: spiker")
}

func TestSkillShow_Missing(t *testing.T) {
	isolate(t)
	t.Setenv("SPIKER_SKILL_MD", filepath.Join(t.TempDir(), "SKILL.md"))

	stdout, stderr, code := runCLI(t, "skill", "show")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: SKILL.md not found\n", stderr)
}

// fakeRegistrar writes a shell script standing in for guppi.
func fakeRegistrar(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "guppi")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func isolateCache(t *testing.T) string {
	t.Helper()
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)
	t.Setenv("HOME", cache)
	return cache
}

func TestSkillInstall_Success(t *testing.T) {
	isolate(t)
	isolateCache(t)
	t.Setenv("SPIKER_REGISTRAR", fakeRegistrar(t, `echo "registered $1 $2 $3"`))

	stdout, stderr, code := runCLI(t, "skill", "install")
	require.Equal(t, 0, code, stderr)

	fields := strings.Fields(strings.TrimSpace(stdout))
	require.Len(t, fields, 4)
	assert.Equal(t, []string{"registered", "skill", "install"}, fields[:3])
	assert.Equal(t, "SKILL.md", filepath.Base(fields[3]))

	data, err := os.ReadFile(fields[3])
	require.NoError(t, err)
	assert.Contains(t, string(data), "guppi-spiker")
}

func TestSkillInstall_PassesExitStatus(t *testing.T) {
	isolate(t)
	isolateCache(t)
	t.Setenv("SPIKER_REGISTRAR", fakeRegistrar(t, `echo "skill already installed" 1>&2; exit 3`))

	stdout, stderr, code := runCLI(t, "skill", "install")
	assert.Equal(t, 3, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: skill already installed\n", stderr)
}

func TestSkillInstall_RegistrarMissing(t *testing.T) {
	isolate(t)
	isolateCache(t)
	t.Setenv("SPIKER_REGISTRAR", "spiker-no-such-registrar")

	_, stderr, code := runCLI(t, "skill", "install")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
}

func TestSkillInstall_UsesOverrideInPlace(t *testing.T) {
	isolate(t)
	isolateCache(t)
	override := filepath.Join(t.TempDir(), "SKILL.md")
	require.NoError(t, os.WriteFile(override, []byte("---\nname: custom\n---\nbody\n"), 0644))
	t.Setenv("SPIKER_SKILL_MD", override)
	t.Setenv("SPIKER_REGISTRAR", fakeRegistrar(t, `echo "$3"`))

	stdout, _, code := runCLI(t, "skill", "install")
	require.Equal(t, 0, code)
	assert.Equal(t, override+"\n", stdout)
}
