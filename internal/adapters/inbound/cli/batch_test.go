package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.pdf")
	second := filepath.Join(dir, "second.pdf")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"batch", first, second, "--json", "--quiet", "--config-dir", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "first.pdf")
	assert.Contains(t, buf.String(), "second.pdf")
	assert.Contains(t, buf.String(), `"success"`)
}

func TestBatchCommand_DefaultTUI(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"batch", filepath.Join(dir, "ghost.pdf"), "--quiet", "--config-dir", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "ghost.pdf")
	assert.Contains(t, buf.String(), "FAILED")
}

func TestBatchCommand_RequiresArgs(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"batch"})
	assert.Error(t, cmd.Execute())
}
