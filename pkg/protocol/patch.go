package protocol

import "github.com/fern-ui/fern/pkg/host/memdom"

// Patch is one host mutation on the wire. Op carries the memdom.Op name
// verbatim ("create-element", "insert", "set-attr", ...), in the form a
// remote mirror applies directly.
type Patch struct {
	Op       string `json:"op"`
	NodeID   string `json:"nodeId"`
	ParentID string `json:"parentId,omitempty"`
	RefID    string `json:"refId,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Name     string `json:"name,omitempty"`
	Value    string `json:"value,omitempty"`
	Text     string `json:"text,omitempty"`
}

// FromMutation converts a document mutation to its wire form.
func FromMutation(m memdom.Mutation) Patch {
	return Patch{
		Op:       string(m.Kind),
		NodeID:   m.NodeID,
		ParentID: m.ParentID,
		RefID:    m.RefID,
		Tag:      m.Tag,
		Name:     m.Name,
		Value:    m.Value,
		Text:     m.Text,
	}
}
