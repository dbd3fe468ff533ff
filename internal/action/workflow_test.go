package action

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommander_EmitsAddMask_When_SecretRegistered(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	t.Setenv("GITHUB_STEP_SUMMARY", "")

	var buf bytes.Buffer
	c := NewCommander(&buf)
	c.Mask("ghp_secret")

	assert.Equal(t, "::add-mask::ghp_secret\n", buf.String())
}

func TestCommander_SkipsMask_When_ValueEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := &Commander{out: &buf}
	c.Mask("")

	assert.Empty(t, buf.String())
}

func TestCommander_EscapesCommandData_When_MessageHasReservedChars(t *testing.T) {
	var buf bytes.Buffer
	c := &Commander{out: &buf}
	c.Error("50% done\nthen failed\r")

	assert.Equal(t, "::error::50%25 done%0Athen failed%0D\n", buf.String())
}

func TestCommander_WrapsGroup_When_GroupAndEndGroupCalled(t *testing.T) {
	var buf bytes.Buffer
	c := &Commander{out: &buf}
	c.Group("webchanges output")
	c.EndGroup()

	assert.Equal(t, "::group::webchanges output\n::endgroup::\n", buf.String())
}

func TestCommander_AppendsOutputs_When_OutputFileConfigured(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "output")
	t.Setenv("GITHUB_OUTPUT", outputPath)
	t.Setenv("GITHUB_STEP_SUMMARY", "")

	c := NewCommander(&bytes.Buffer{})
	require.NoError(t, c.SetOutput("exit-code", "0"))
	require.NoError(t, c.SetOutput("timed-out", "false"))

	got, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "exit-code=0\ntimed-out=false\n", string(got))
}

func TestCommander_IgnoresOutputs_When_NotOnARunner(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	t.Setenv("GITHUB_STEP_SUMMARY", "")

	c := NewCommander(&bytes.Buffer{})
	assert.NoError(t, c.SetOutput("exit-code", "0"))
	assert.NoError(t, c.AppendSummary("### nothing\n"))
}

func TestCommander_AppendsSummaryMarkdown_When_SummaryFileConfigured(t *testing.T) {
	summaryPath := filepath.Join(t.TempDir(), "summary.md")
	t.Setenv("GITHUB_OUTPUT", "")
	t.Setenv("GITHUB_STEP_SUMMARY", summaryPath)

	c := NewCommander(&bytes.Buffer{})
	require.NoError(t, c.AppendSummary("### first\n"))
	require.NoError(t, c.AppendSummary("### second\n"))

	got, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Equal(t, "### first\n### second\n", string(got))
}
