package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"kremap/internal/ast"
	"kremap/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func buildTree(n ast.Node, fs *source.FileSet, opts TreeOpts) *treeNode {
	label := n.Kind().String()
	if d := Describe(n); d != "" {
		label += " " + d
	}
	if opts.Spans && fs != nil && !n.Span().Empty() {
		start, end := fs.Resolve(n.Span())
		label += fmt.Sprintf(" [%d:%d-%d:%d]", start.Line, start.Col, end.Line, end.Col)
	}
	node := &treeNode{label: label}
	for _, ch := range ast.Children(n) {
		node.children = append(node.children, buildTree(ch, fs, opts))
	}
	return node
}

// FormatTree prints n as an indented tree:
//
//	File
//	├─ Package a.b
//	└─ Func f
//	   └─ Block
func FormatTree(w io.Writer, n ast.Node, fs *source.FileSet, opts TreeOpts) error {
	if ast.IsNil(n) {
		_, err := io.WriteString(w, "<nil>\n")
		return err
	}
	var sb strings.Builder
	root := buildTree(n, fs, opts)
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeChildren(&sb, root.children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, children []*treeNode, prefix string) {
	for i, ch := range children {
		last := i == len(children)-1
		branch, indent := "├─ ", "│  "
		if last {
			branch, indent = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(ch.label)
		sb.WriteByte('\n')
		writeChildren(sb, ch.children, prefix+indent)
	}
}

// NodeJSON is the JSON form of a syntax tree node.
type NodeJSON struct {
	Kind     string      `json:"kind"`
	Label    string      `json:"label,omitempty"`
	Span     source.Span `json:"span"`
	Children []NodeJSON  `json:"children,omitempty"`
}

// BuildNodeJSON converts n and its subtree.
func BuildNodeJSON(n ast.Node) NodeJSON {
	out := NodeJSON{Kind: n.Kind().String(), Label: Describe(n), Span: n.Span()}
	for _, ch := range ast.Children(n) {
		out.Children = append(out.Children, BuildNodeJSON(ch))
	}
	return out
}

// FormatTreeJSON writes n as indented JSON.
func FormatTreeJSON(w io.Writer, n ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if ast.IsNil(n) {
		return enc.Encode(nil)
	}
	return enc.Encode(BuildNodeJSON(n))
}

// Describe returns the short text shown after a node's kind: its name,
// operator or literal.
func Describe(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Package:
		return strings.Join(n.Names, ".")
	case *ast.Import:
		s := strings.Join(n.Names, ".")
		if n.Wildcard {
			s += ".*"
		}
		if n.Alias != "" {
			s += " as " + n.Alias
		}
		return s
	case *ast.Annotation:
		return "@" + strings.Join(n.Names, ".")
	case *ast.Keyword:
		return n.Name
	case *ast.Class:
		if n.Name == "" {
			return n.Form.Keyword()
		}
		return n.Form.Keyword() + " " + n.Name
	case *ast.Property:
		if n.ReadOnly {
			return "val"
		}
		return "var"
	case *ast.EnumEntry:
		return n.Name
	case *ast.Func:
		return n.Name
	case *ast.TypeAlias:
		return n.Name
	case *ast.TypeParam:
		return n.Name
	case *ast.Param:
		return n.Name
	case *ast.PropertyVar:
		return n.Name
	case *ast.FuncTypeParam:
		return n.Name
	case *ast.LambdaParam:
		return n.Name
	case *ast.Catch:
		return n.Name
	case *ast.TypePiece:
		return n.Name
	case *ast.TypeArg:
		if n.Star {
			return "*"
		}
		return n.Variance
	case *ast.ValueArg:
		if n.Spread {
			return "*" + n.Name
		}
		return n.Name
	case *ast.Name:
		return n.Name
	case *ast.Const:
		return n.Value
	case *ast.Binary:
		return n.Op
	case *ast.Unary:
		return n.Op
	case *ast.TypeOp:
		return n.Op
	case *ast.DoubleColon:
		return "::" + n.Name
	case *ast.WhenCond:
		return n.Op
	case *ast.This:
		return labelText(n.Label)
	case *ast.Super:
		return labelText(n.Label)
	case *ast.Return:
		return labelText(n.Label)
	case *ast.Break:
		return labelText(n.Label)
	case *ast.Continue:
		return labelText(n.Label)
	}
	return ""
}

func labelText(label string) string {
	if label == "" {
		return ""
	}
	return "@" + label
}
