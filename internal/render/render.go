package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/Arty-Facts/profilecard/internal/card"
	"github.com/Arty-Facts/profilecard/internal/models"
)

const DefaultStylesheetURL = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"

type Options struct {
	// StylesheetURL is the external stylesheet framework linked by the page.
	StylesheetURL string
	// AssetPrefix is prepended to local asset paths, "/static/" when served
	// and "static/" when exported.
	AssetPrefix string
}

// Node converts a display tree to gomponents nodes.
func Node(n card.Node) g.Node {
	nodes := make([]g.Node, 0, len(n.Attrs)+len(n.Children)+1)
	for _, a := range n.Attrs {
		nodes = append(nodes, g.Attr(a.Name, a.Value))
	}
	if n.Text != "" {
		if n.Raw {
			nodes = append(nodes, g.Raw(n.Text))
		} else {
			nodes = append(nodes, g.Text(n.Text))
		}
	}
	for _, child := range n.Children {
		nodes = append(nodes, Node(child))
	}

	if n.Tag == "" {
		return g.Group(nodes)
	}
	return g.El(n.Tag, nodes...)
}

// Page renders the profile with the given layout as a full HTML document.
func Page(p models.Profile, l card.Layout, opts Options) templ.Component {
	if opts.StylesheetURL == "" {
		opts.StylesheetURL = DefaultStylesheetURL
	}
	title := p.Title
	if title == "" {
		title = p.Name
	}

	doc := c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href(opts.StylesheetURL)),
			h.Link(h.Rel("stylesheet"), h.Href(opts.AssetPrefix+"style.css")),
		},
		Body: []g.Node{
			h.Main(h.Class("container text-center"),
				Node(card.ProfileCard(p, l)),
			),
		},
	})

	return component(doc)
}

// ErrorPage renders a minimal document for the given HTTP status.
func ErrorPage(status int) templ.Component {
	text := http.StatusText(status)
	doc := c.HTML5(c.HTML5Props{
		Title:    text,
		Language: "en",
		Body: []g.Node{
			h.Main(h.Class("container text-center"),
				h.H1(g.Text(strconv.Itoa(status))),
				h.P(g.Text(text)),
				h.A(h.Href("/"), g.Text("Back to profile")),
			),
		},
	})
	return component(doc)
}

// Bytes renders a component into memory.
func Bytes(ctx context.Context, comp templ.Component) ([]byte, error) {
	var buf bytes.Buffer
	if err := comp.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}

func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return n.Render(w)
	})
}
