package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = "o1: a1 a2 ;\no2: a1 ;\n"

func TestRun_AnalyzePrintsConceptCount(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/ctx.txt"
	require.NoError(t, writeFile(path, fixture))

	var out, errOut bytes.Buffer
	code := run([]string{"analyze", "--input", path}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Empty(t, errOut.String())
	require.Contains(t, out.String(), "concepts")
}

func TestRun_RulesRespectsMinSupport(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/ctx.txt"
	require.NoError(t, writeFile(path, fixture))

	var out, errOut bytes.Buffer
	code := run([]string{"rules", "--input", path, "--min-support", "2"}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Empty(t, errOut.String())
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		require.Contains(t, line, "rule (support 2)")
	}
}

func TestRun_DotEmitsDigraph(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/ctx.txt"
	require.NoError(t, writeFile(path, fixture))

	var out, errOut bytes.Buffer
	code := run([]string{"dot", "--input", path}, &out, &errOut)
	require.Equal(t, 0, code)
	require.Empty(t, errOut.String())
	require.True(t, strings.HasPrefix(out.String(), "digraph lattice {"))
}

func TestRun_UnknownSubcommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"bogus"}, &out, &errOut)
	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "unknown subcommand")
}

func TestRun_NoSubcommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, &out, &errOut)
	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "no subcommand")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
