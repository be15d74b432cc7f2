package tokens

import "github.com/mitchellh/mapstructure"

// Leaf is the typed view of a leaf node. Only Value is required by the
// resolver; the remaining fields are descriptive metadata carried by
// richer token documents.
type Leaf struct {
	Value       string `mapstructure:"value" json:"value"`
	Type        string `mapstructure:"type" json:"type,omitempty"`
	Description string `mapstructure:"description" json:"description,omitempty"`
	Deprecated  bool   `mapstructure:"deprecated" json:"deprecated,omitempty"`
}

// IsLeaf reports whether v is a leaf node, i.e. an object carrying a
// "value" key.
func IsLeaf(v any) bool {
	node, ok := asObject(v)
	if !ok {
		return false
	}
	_, has := node["value"]
	return has
}

// AsLeaf decodes a loose tree node into a Leaf. It reports false when
// v is not a leaf node or its fields do not decode cleanly (no weak
// type coercion is applied).
func AsLeaf(v any) (*Leaf, bool) {
	node, ok := asObject(v)
	if !ok {
		return nil, false
	}
	if _, has := node["value"]; !has {
		return nil, false
	}

	var leaf Leaf
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &leaf})
	if err != nil {
		return nil, false
	}
	if err := dec.Decode(node); err != nil {
		return nil, false
	}
	return &leaf, true
}
