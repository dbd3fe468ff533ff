// Package input validates and materializes the two documents an invocation
// supplies: the jobs definition and the report configuration. Both are
// opaque pass-through text for the external webchanges tool; only structural
// well-formedness is checked here.
package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input names used in validation messages.
const (
	JobsInput   = "jobs"
	ConfigInput = "config"
)

// ValidationError reports which input failed and why. The caller fixes the
// input; nothing is retried.
type ValidationError struct {
	Input  string // "jobs" or "config"
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Input + ": " + e.Reason
}

// Validate checks both documents for structural well-formedness. It has no
// side effects: no file is written until both inputs pass.
//
// The jobs document is multi-document YAML, one document per job descriptor.
// The config document is a single YAML mapping. Field semantics belong to
// the external tool and are not interpreted.
func Validate(jobsText, configText string) error {
	if err := validateJobs(jobsText); err != nil {
		return err
	}
	return validateConfig(configText)
}

func validateJobs(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Input: JobsInput, Reason: "empty input"}
	}

	dec := yaml.NewDecoder(strings.NewReader(text))
	jobs := 0
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &ValidationError{Input: JobsInput, Reason: fmt.Sprintf("parse error: %v", err)}
		}
		root := documentRoot(&doc)
		if root == nil {
			continue // blank document between separators
		}
		if root.Kind != yaml.MappingNode {
			return &ValidationError{
				Input:  JobsInput,
				Reason: fmt.Sprintf("job %d is not a mapping", jobs+1),
			}
		}
		jobs++
	}
	if jobs == 0 {
		return &ValidationError{Input: JobsInput, Reason: "no job definitions"}
	}
	return nil
}

func validateConfig(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Input: ConfigInput, Reason: "empty input"}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return &ValidationError{Input: ConfigInput, Reason: fmt.Sprintf("parse error: %v", err)}
	}
	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return &ValidationError{Input: ConfigInput, Reason: "not a mapping"}
	}
	return nil
}

// documentRoot unwraps a DocumentNode to its content, skipping null documents.
func documentRoot(doc *yaml.Node) *yaml.Node {
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}
	return node
}

// CountJobs returns the number of job descriptors in a jobs document that
// already passed Validate. Used for reporting only.
func CountJobs(jobsText string) int {
	dec := yaml.NewDecoder(strings.NewReader(jobsText))
	jobs := 0
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			break
		}
		if documentRoot(&doc) != nil {
			jobs++
		}
	}
	return jobs
}
