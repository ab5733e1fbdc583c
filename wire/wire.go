// Package wire serializes compiled item sequences so they can be cached or
// shipped between processes without recompiling the description. The
// encoding is canonical CBOR: the same sequence always produces the same
// bytes.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/tempo/desc"
)

// formatVersion is bumped when the node layout changes incompatibly.
const formatVersion = 1

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type envelope struct {
	Version int    `cbor:"version"`
	Items   []node `cbor:"items"`
}

// node is the wire shape of one item. Type discriminates which of the other
// fields are meaningful.
type node struct {
	Type string            `cbor:"type"`
	Text []byte            `cbor:"text,omitempty"`
	Kind string            `cbor:"kind,omitempty"`
	Mods map[string]string `cbor:"mods,omitempty"`
	Sub  []node            `cbor:"sub,omitempty"`
	Alts [][]node          `cbor:"alts,omitempty"`
}

// Marshal serializes a compiled sequence to canonical CBOR bytes.
func Marshal(items []desc.Item) ([]byte, error) {
	nodes, err := encodeItems(items)
	if err != nil {
		return nil, err
	}
	return cborEncMode.Marshal(envelope{Version: formatVersion, Items: nodes})
}

// Unmarshal deserializes a compiled sequence from CBOR bytes.
func Unmarshal(data []byte) ([]desc.Item, error) {
	var env envelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("wire: unmarshal sequence: %w", err)
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("wire: unsupported format version %d", env.Version)
	}
	return decodeItems(env.Items)
}

func encodeItems(items []desc.Item) ([]node, error) {
	nodes := make([]node, 0, len(items))
	for _, it := range items {
		n, err := encodeItem(it)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func encodeItem(it desc.Item) (node, error) {
	switch it := it.(type) {
	case desc.Literal:
		return node{Type: "literal", Text: it.Text}, nil
	case desc.Component:
		return node{Type: "component", Kind: it.Kind.String(), Mods: map[string]string(it.Mods)}, nil
	case desc.Optional:
		sub, err := encodeItems(it.Items)
		if err != nil {
			return node{}, err
		}
		return node{Type: "optional", Sub: sub}, nil
	case desc.First:
		alts := make([][]node, 0, len(it.Alternatives))
		for _, alt := range it.Alternatives {
			sub, err := encodeItems(alt)
			if err != nil {
				return node{}, err
			}
			alts = append(alts, sub)
		}
		return node{Type: "first", Alts: alts}, nil
	default:
		return node{}, fmt.Errorf("wire: unknown format item %T", it)
	}
}

func decodeItems(nodes []node) ([]desc.Item, error) {
	if len(nodes) == 0 {
		// The compiler produces nil for an empty sequence; mirror that so
		// round trips stay structurally equal.
		return nil, nil
	}
	items := make([]desc.Item, 0, len(nodes))
	for _, n := range nodes {
		it, err := decodeItem(n)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func decodeItem(n node) (desc.Item, error) {
	switch n.Type {
	case "literal":
		return desc.Literal{Text: n.Text}, nil
	case "component":
		kind, ok := desc.ParseKind(n.Kind)
		if !ok {
			return nil, fmt.Errorf("wire: unknown component kind %q", n.Kind)
		}
		return desc.Component{Kind: kind, Mods: desc.Modifiers(n.Mods)}, nil
	case "optional":
		sub, err := decodeItems(n.Sub)
		if err != nil {
			return nil, err
		}
		return desc.Optional{Items: sub}, nil
	case "first":
		alts := make([][]desc.Item, 0, len(n.Alts))
		for _, altNodes := range n.Alts {
			alt, err := decodeItems(altNodes)
			if err != nil {
				return nil, err
			}
			alts = append(alts, alt)
		}
		return desc.First{Alternatives: alts}, nil
	default:
		return nil, fmt.Errorf("wire: unknown node type %q", n.Type)
	}
}
