package annotations

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Overlay applies a merge patch (RFC 7386, in YAML or JSON) over the
// set: new keys add annotations, null values remove theirs, and list
// values replace wholesale. The receiver is left unchanged.
func (s Set) Overlay(patch []byte) (Set, error) {
	doc, err := json.Marshal(s.m)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	jPatch, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	merged, err := jsonpatch.MergePatch(doc, jPatch)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var m map[string][]string
	if err := json.Unmarshal(merged, &m); err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := validate(m); err != nil {
		return Set{}, err
	}
	return Set{m: m}, nil
}
