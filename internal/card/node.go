package card

// Roles mark the semantic nodes of a card. They are not rendered.
const (
	RoleAvatar = "avatar"
	RoleLinks  = "links"
	RoleLink   = "link"
	RoleIcon   = "icon"
	RoleAbout  = "about"
)

type Attr struct {
	Name  string
	Value string
}

// Node is one element of a display tree. An empty Tag is a fragment whose
// children are rendered in its place. Text is escaped on render unless Raw
// is set.
type Node struct {
	Tag      string
	Role     string
	Attrs    []Attr
	Children []Node
	Text     string
	Raw      bool
}

// Attr returns the value of the named attribute or "".
func (n Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// Find returns every node with the given role in pre-order.
func (n Node) Find(role string) []Node {
	var out []Node
	n.walk(func(c Node) {
		if c.Role == role {
			out = append(out, c)
		}
	})
	return out
}

// Count returns the number of element nodes in the tree, fragments excluded.
func (n Node) Count() int {
	count := 0
	n.walk(func(c Node) {
		if c.Tag != "" {
			count++
		}
	})
	return count
}

func (n Node) walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func el(tag, role string, attrs []Attr, children ...Node) Node {
	return Node{Tag: tag, Role: role, Attrs: attrs, Children: children}
}

func class(v string) Attr {
	return Attr{Name: "class", Value: v}
}
