package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleJobs   = "name: Test\nurl: https://example.com\n"
	sampleConfig = "report:\n  tz: UTC\n"
)

func TestValidate_ReturnsNil_When_BothDocumentsWellFormed(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(sampleJobs, sampleConfig))
}

func TestValidate_NamesJobsInput_When_JobsEmpty(t *testing.T) {
	t.Parallel()

	err := Validate("", sampleConfig)
	require.Error(t, err)
	assert.Equal(t, "jobs: empty input", err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, JobsInput, verr.Input)
}

func TestValidate_TreatsWhitespaceAsEmpty_When_JobsBlank(t *testing.T) {
	t.Parallel()

	err := Validate("  \n\t\n", sampleConfig)
	require.Error(t, err)
	assert.Equal(t, "jobs: empty input", err.Error())
}

func TestValidate_NamesConfigInput_When_ConfigEmpty(t *testing.T) {
	t.Parallel()

	err := Validate(sampleJobs, "")
	require.Error(t, err)
	assert.Equal(t, "config: empty input", err.Error())
}

func TestValidate_ReportsParseError_When_JobsMalformed(t *testing.T) {
	t.Parallel()

	err := Validate("url: [unclosed\n", sampleConfig)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, JobsInput, verr.Input)
	assert.Contains(t, verr.Reason, "parse error")
}

func TestValidate_RejectsJobs_When_DocumentNotMapping(t *testing.T) {
	t.Parallel()

	err := Validate("- one\n- two\n", sampleConfig)
	require.Error(t, err)
	assert.Equal(t, "jobs: job 1 is not a mapping", err.Error())
}

func TestValidate_RejectsJobs_When_OnlyBlankDocuments(t *testing.T) {
	t.Parallel()

	err := Validate("---\n---\n", sampleConfig)
	require.Error(t, err)
	assert.Equal(t, "jobs: no job definitions", err.Error())
}

func TestValidate_AcceptsJobs_When_MultipleDocuments(t *testing.T) {
	t.Parallel()

	jobs := "name: A\nurl: https://a.example\n---\nname: B\nurl: https://b.example\n"
	assert.NoError(t, Validate(jobs, sampleConfig))
}

func TestValidate_RejectsConfig_When_NotAMapping(t *testing.T) {
	t.Parallel()

	err := Validate(sampleJobs, "- just\n- a list\n")
	require.Error(t, err)
	assert.Equal(t, "config: not a mapping", err.Error())
}

func TestCountJobs_CountsDocuments_When_SeparatorsAndBlanksPresent(t *testing.T) {
	t.Parallel()

	jobs := "name: A\n---\n---\nname: B\n"
	assert.Equal(t, 2, CountJobs(jobs))
	assert.Equal(t, 1, CountJobs(sampleJobs))
}
