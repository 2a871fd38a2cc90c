// Package render turns an invoice, a template and a business profile into
// display-ready HTML. The substitution engine is deliberately logic-less:
// variable lookups, truthiness-gated sections and array iteration, nothing
// else. Insertion is always raw (unescaped): invoice content carries
// intentional markup (rich-text work details, currency symbols) that must
// render as-is.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	tagOpen  = "{{"
	tagClose = "}}"
)

type nodeKind int

const (
	textNode nodeKind = iota
	varNode
	sectionNode
	invertedNode
)

type node struct {
	kind     nodeKind
	text     string // textNode only
	key      string // varNode, sectionNode, invertedNode
	children []node
}

// Render substitutes the view-model into a template. A malformed template
// never propagates an error: the result is a visible inline error fragment
// so a live preview degrades instead of going blank.
func Render(html string, data map[string]interface{}) string {
	nodes, err := parse(html)
	if err != nil {
		return fmt.Sprintf(`<div class="error">Error rendering template: %s</div>`, err)
	}

	var b strings.Builder
	b.Grow(len(html))
	renderNodes(&b, nodes, []interface{}{data})
	return b.String()
}

// Validate parses the template markup and reports the first syntax error.
func Validate(html string) error {
	_, err := parse(html)
	return err
}

type frame struct {
	node *node
}

// parse tokenizes the template into a node tree, checking that every section
// is closed and properly nested.
func parse(html string) ([]node, error) {
	root := node{kind: sectionNode}
	stack := []frame{{node: &root}}

	pos := 0
	for pos < len(html) {
		open := strings.Index(html[pos:], tagOpen)
		if open < 0 {
			appendText(top(stack), html[pos:])
			break
		}
		open += pos
		appendText(top(stack), html[pos:open])

		// {{{name}}} is accepted and treated like {{name}}: insertion is
		// always raw here.
		closeTag := tagClose
		inner := open + len(tagOpen)
		if strings.HasPrefix(html[inner:], "{") {
			inner++
			closeTag = "}" + tagClose
		}

		end := strings.Index(html[inner:], closeTag)
		if end < 0 {
			return nil, fmt.Errorf("unclosed tag at offset %d", open)
		}
		tag := strings.TrimSpace(html[inner : inner+end])
		pos = inner + end + len(closeTag)

		if tag == "" {
			return nil, fmt.Errorf("empty tag at offset %d", open)
		}

		switch tag[0] {
		case '#', '^':
			kind := sectionNode
			if tag[0] == '^' {
				kind = invertedNode
			}
			key := strings.TrimSpace(tag[1:])
			if key == "" {
				return nil, fmt.Errorf("section tag with no name at offset %d", open)
			}
			parent := top(stack)
			parent.children = append(parent.children, node{kind: kind, key: key})
			stack = append(stack, frame{node: &parent.children[len(parent.children)-1]})
		case '/':
			key := strings.TrimSpace(tag[1:])
			if len(stack) == 1 {
				return nil, fmt.Errorf("unexpected closing tag %q", key)
			}
			openNode := top(stack)
			if openNode.key != key {
				return nil, fmt.Errorf("closing tag %q does not match open section %q", key, openNode.key)
			}
			stack = stack[:len(stack)-1]
		case '!':
			// comment, dropped
		default:
			parent := top(stack)
			parent.children = append(parent.children, node{kind: varNode, key: tag})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("unclosed section %q", top(stack).key)
	}
	return root.children, nil
}

func top(stack []frame) *node {
	return stack[len(stack)-1].node
}

func appendText(parent *node, text string) {
	if text == "" {
		return
	}
	parent.children = append(parent.children, node{kind: textNode, text: text})
}

func renderNodes(b *strings.Builder, nodes []node, stack []interface{}) {
	for i := range nodes {
		n := &nodes[i]
		switch n.kind {
		case textNode:
			b.WriteString(n.text)
		case varNode:
			v, ok := lookup(n.key, stack)
			if ok {
				b.WriteString(stringify(v))
			}
		case sectionNode:
			v, _ := lookup(n.key, stack)
			renderSection(b, n, v, stack)
		case invertedNode:
			v, _ := lookup(n.key, stack)
			if !truthy(v) {
				renderNodes(b, n.children, stack)
			}
		}
	}
}

func renderSection(b *strings.Builder, n *node, v interface{}, stack []interface{}) {
	if !truthy(v) {
		return
	}
	switch val := v.(type) {
	case []interface{}:
		for _, el := range val {
			renderNodes(b, n.children, push(stack, el))
		}
	case []map[string]interface{}:
		for _, el := range val {
			renderNodes(b, n.children, push(stack, el))
		}
	case map[string]interface{}:
		renderNodes(b, n.children, push(stack, val))
	default:
		renderNodes(b, n.children, stack)
	}
}

func push(stack []interface{}, ctx interface{}) []interface{} {
	next := make([]interface{}, len(stack)+1)
	copy(next, stack)
	next[len(stack)] = ctx
	return next
}

// lookup resolves a dotted name against the context stack: the first segment
// is searched from the innermost context outward, the remaining segments
// descend through nested maps.
func lookup(key string, stack []interface{}) (interface{}, bool) {
	parts := strings.Split(key, ".")

	var cur interface{}
	found := false
	for i := len(stack) - 1; i >= 0; i-- {
		if m, ok := stack[i].(map[string]interface{}); ok {
			if v, ok := m[parts[0]]; ok {
				cur = v
				found = true
				break
			}
		}
	}
	if !found {
		return nil, false
	}

	for _, part := range parts[1:] {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// truthy mirrors the truthiness the templates were written against: false,
// nil, empty strings, zero numbers and empty lists gate their sections off.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case []interface{}:
		return len(val) > 0
	case []map[string]interface{}:
		return len(val) > 0
	case map[string]interface{}:
		return true
	default:
		return true
	}
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(val)
	}
}
