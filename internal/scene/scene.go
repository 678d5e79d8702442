package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	tui "github.com/grindlemire/minitui"
	"github.com/grindlemire/minitui/widgets"
)

// Node is one table of a layout description.
type Node struct {
	Kind   string `toml:"kind"`
	Width  string `toml:"width"`
	Height string `toml:"height"`

	Widget string `toml:"widget"`
	Title  string `toml:"title"`
	Text   string `toml:"text"`
	Border string `toml:"border"`
	Rune   string `toml:"rune"`
	Style  string `toml:"style"`

	Children []Node `toml:"children"`
}

// File is the top level of a layout description.
type File struct {
	Node *Node `toml:"node"`
}

// Entry names one node of a built scene by its path in the description,
// e.g. "node.children[1].children[0]".
type Entry struct {
	Path string
	ID   tui.NodeID
}

// Scene is a tree built from a description.
type Scene struct {
	Tree  *tui.Tree
	Root  tui.NodeID
	Nodes []Entry // pre-order
}

// ErrNoRoot is returned for a description without a [node] table.
var ErrNoRoot = errors.New("layout description has no [node] table")

// Load reads and builds the description at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and builds a description. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse layout at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if f.Node == nil {
		return nil, ErrNoRoot
	}
	return Build(*f.Node)
}

// Build creates a tree for root and its descendants.
func Build(root Node) (*Scene, error) {
	s := &Scene{Tree: tui.NewTree()}
	id, err := s.build(root, "node")
	if err != nil {
		return nil, err
	}
	s.Root = id
	return s, nil
}

func (s *Scene) build(n Node, path string) (tui.NodeID, error) {
	kind, err := ParseKind(n.Kind)
	if err != nil {
		return tui.NoNode, fmt.Errorf("%s: %w", path, err)
	}
	w, err := ParseConstraint(n.Width)
	if err != nil {
		return tui.NoNode, fmt.Errorf("%s.width: %w", path, err)
	}
	h, err := ParseConstraint(n.Height)
	if err != nil {
		return tui.NoNode, fmt.Errorf("%s.height: %w", path, err)
	}

	var content tui.Widget
	if kind == tui.Leaf {
		content, err = NewWidget(n)
		if err != nil {
			return tui.NoNode, fmt.Errorf("%s: %w", path, err)
		}
	} else if n.Widget != "" {
		return tui.NoNode, fmt.Errorf("%s: widget %q on %s: %w", path, n.Widget, kind, tui.ErrContainerContent)
	}

	id, err := s.Tree.Create(kind, w, h, content)
	if err != nil {
		return tui.NoNode, fmt.Errorf("%s: %w", path, err)
	}
	s.Nodes = append(s.Nodes, Entry{Path: path, ID: id})

	for i, child := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		cid, err := s.build(child, childPath)
		if err != nil {
			return tui.NoNode, err
		}
		if err := s.Tree.AddChild(id, cid); err != nil {
			return tui.NoNode, fmt.Errorf("%s: %w", childPath, err)
		}
	}
	return id, nil
}

// NewWidget creates the leaf content a node describes. A leaf without a
// widget name has no content.
func NewWidget(n Node) (tui.Widget, error) {
	style, err := parseStyle(n.Style)
	if err != nil {
		return nil, err
	}

	switch n.Widget {
	case "":
		return nil, nil
	case "box":
		border, err := widgets.ParseBorderStyle(n.Border)
		if err != nil {
			return nil, err
		}
		b := widgets.NewBox(n.Title)
		b.Border = border
		return b, nil
	case "label":
		l := widgets.NewLabel(n.Text)
		l.Style = style
		return l, nil
	case "fill":
		r := ' '
		if n.Rune != "" {
			r = []rune(n.Rune)[0]
		}
		f := widgets.NewFill(r)
		f.Style = style
		return f, nil
	case "login":
		return widgets.NewLoginForm(), nil
	default:
		return nil, fmt.Errorf("unknown widget %q", n.Widget)
	}
}

func parseStyle(s string) (tui.Style, error) {
	switch s {
	case "", "regular":
		return tui.StyleRegular, nil
	case "bold":
		return tui.StyleBold, nil
	case "underline":
		return tui.StyleUnderline, nil
	default:
		return 0, fmt.Errorf("unknown style %q", s)
	}
}
