package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only", "two"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdInvalidAnnotations(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "b", "c", "--annotations", "teamcity"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdRun(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"previous", "next", "release"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}

	pkg := zipBytes(t, fooFiles("v1"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "previous", "Foo.1.2.3.nupkg"), pkg, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "next", "Foo.1.2.3.nupkg"), zipBytes(t, fooFiles("v2")), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "release", "Foo.1.2.3.nupkg"), pkg, 0644))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		filepath.Join(root, "previous"),
		filepath.Join(root, "next"),
		filepath.Join(root, "release"),
		"--annotations", "github",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\nThe following packages have changes:\n  Foo.1.2.3.nupkg\n", out.String())

	// Dropping the package from the release fails the run
	require.NoError(t, os.Remove(filepath.Join(root, "release", "Foo.1.2.3.nupkg")))

	out.Reset()
	cmd = NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		filepath.Join(root, "previous"),
		filepath.Join(root, "next"),
		filepath.Join(root, "release"),
		"--annotations", "github",
	})

	require.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "::error::  Foo\n")
}

func TestRootCmdCheckSymbols(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"previous", "next", "release"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "Foo.1.2.3.nupkg"), zipBytes(t, fooFiles("v1")), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "previous", "Foo.1.2.3.snupkg"),
		zipBytes(t, map[string]string{"lib/net472/Foo.pdb": "pdb-previous"}), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "next", "Foo.1.2.3.snupkg"),
		zipBytes(t, map[string]string{"lib/net472/Foo.pdb": "pdb-next"}), 0644))

	run := func(extra ...string) string {
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{
			filepath.Join(root, "previous"),
			filepath.Join(root, "next"),
			filepath.Join(root, "release"),
			"--annotations", "github",
		}, extra...))
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	// Symbol packages are skipped unless asked for
	assert.Equal(t, "\nThe following packages have changes:\n", run())
	assert.Equal(t, "\nThe following packages have changes:\n  Foo.1.2.3.nupkg\n", run("--check-symbols"))
}

func TestRootCmdRelativePaths(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"previous", "next", "release"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, dir, "Foo.1.2.3.nupkg"), zipBytes(t, fooFiles("v1")), 0644))
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { os.Chdir(wd) })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"previous", filepath.Join(".", "next"), filepath.Join("..", filepath.Base(root), "release"), "--annotations", "github"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\nThe following packages have changes:\n", out.String())
}
