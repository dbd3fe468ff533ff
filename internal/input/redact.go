package input

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// secretKeys are config keys whose scalar values are treated as credentials.
// Matching is case-insensitive on the key name.
var secretKeys = map[string]bool{
	"token":    true,
	"password": true,
	"secret":   true,
	"api_key":  true,
	"apikey":   true,
}

// Secrets returns the credential values found anywhere in the config
// document. The caller masks them (GitHub's add-mask command, plus local
// redaction) before any run output is emitted. Returns nil when the config
// does not parse; validation reports that separately.
func Secrets(configText string) []string {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(configText), &doc); err != nil {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	collectSecrets(&doc, seen, &out)
	return out
}

func collectSecrets(node *yaml.Node, seen map[string]bool, out *[]string) {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			collectSecrets(child, seen, out)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if secretKeys[strings.ToLower(key.Value)] && value.Kind == yaml.ScalarNode {
				v := strings.TrimSpace(value.Value)
				if v != "" && !seen[v] {
					seen[v] = true
					*out = append(*out, v)
				}
				continue
			}
			collectSecrets(value, seen, out)
		}
	}
}

// Redactor replaces known credential values in text before it reaches any
// log, output, or summary.
type Redactor struct {
	secrets []string
}

// NewRedactor builds a redactor over the given credential values.
func NewRedactor(secrets []string) *Redactor {
	return &Redactor{secrets: secrets}
}

// Redact returns s with every known credential replaced by "***".
func (r *Redactor) Redact(s string) string {
	if r == nil {
		return s
	}
	for _, secret := range r.secrets {
		s = strings.ReplaceAll(s, secret, "***")
	}
	return s
}
