// Package msgtree models nested message dictionaries as exchanged with the
// translation service.
//
// A tree maps string identifiers to either a plain string or a nested tree.
// Service responses may additionally carry structured entries of the form
//
//	{ "string": "...", "context": "...", "developer_comment": "..." }
//
// which Normalize collapses to their primary string. After normalization a
// tree contains only string leaves and nested Tree nodes, and all
// serialization walks keys in lexicographic order.
package msgtree

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Tree is one level of a message dictionary. Values are either string
// leaves or nested Tree nodes; Normalize establishes that invariant.
type Tree map[string]any

// Parse decodes raw JSON from the translation service into a normalized tree.
func Parse(data []byte) (Tree, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing message JSON: %w", err)
	}
	return Normalize(raw)
}

// Normalize canonicalizes a decoded message dictionary: structured entries
// are collapsed to their "string" field and nested objects are recursed
// into. Values that are neither strings nor objects are rejected loudly
// rather than silently carried through.
func Normalize(raw map[string]any) (Tree, error) {
	out := make(Tree, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = v
		case Tree:
			sub, err := Normalize(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = sub
		case map[string]any:
			if s, ok := v["string"].(string); ok {
				out[key] = s
				continue
			}
			sub, err := Normalize(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = sub
		default:
			return nil, fmt.Errorf("%s: unsupported message value of type %T", key, value)
		}
	}
	return out, nil
}

// Keys returns the keys of one tree level in lexicographic order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CountLeaves returns the number of string leaves in the tree, recursively.
func (t Tree) CountLeaves() int {
	n := 0
	for _, value := range t {
		switch v := value.(type) {
		case string:
			n++
		case Tree:
			n += v.CountLeaves()
		}
	}
	return n
}

// RemoveRedundant returns the subset of t whose leaves differ from the
// source tree at the same position. A leaf equal to its source counterpart
// is dropped; a nested node is kept only if its filtered result is
// non-empty. The result is the minimal diff worth shipping.
func RemoveRedundant(t, source Tree) Tree {
	out := make(Tree)
	for key, value := range t {
		switch v := value.(type) {
		case string:
			if src, ok := source[key].(string); ok && src == v {
				continue
			}
			out[key] = v
		case Tree:
			srcSub, _ := source[key].(Tree)
			if srcSub == nil {
				srcSub = Tree{}
			}
			filtered := RemoveRedundant(v, srcSub)
			if len(filtered) > 0 {
				out[key] = filtered
			}
		}
	}
	return out
}

// MarshalIndent serializes the tree as human-editable JSON: 4-space
// indentation, keys sorted at every level, trailing newline.
func (t Tree) MarshalIndent() ([]byte, error) {
	var b strings.Builder
	if err := writeTree(&b, t, 1); err != nil {
		return nil, err
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// MarshalCompact serializes the tree without any whitespace, keys sorted at
// every level. Used where the output is embedded into generated code.
func (t Tree) MarshalCompact() ([]byte, error) {
	var b strings.Builder
	if err := writeCompact(&b, t); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func writeTree(b *strings.Builder, t Tree, depth int) error {
	indent := strings.Repeat("    ", depth)
	b.WriteString("{")
	keys := t.Keys()
	for i, key := range keys {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(jsonString(key))
		b.WriteString(": ")
		switch v := t[key].(type) {
		case string:
			b.WriteString(jsonString(v))
		case Tree:
			if err := writeTree(b, v, depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unsupported value of type %T (tree not normalized)", key, t[key])
		}
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
	}
	if len(keys) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("    ", depth-1))
	}
	b.WriteString("}")
	return nil
}

func writeCompact(b *strings.Builder, t Tree) error {
	b.WriteString("{")
	for i, key := range t.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(jsonString(key))
		b.WriteString(":")
		switch v := t[key].(type) {
		case string:
			b.WriteString(jsonString(v))
		case Tree:
			if err := writeCompact(b, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unsupported value of type %T (tree not normalized)", key, t[key])
		}
	}
	b.WriteString("}")
	return nil
}

// jsonString returns a JSON-encoded string value (with proper escaping).
func jsonString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the signature simple.
		return `""`
	}
	return string(data)
}
