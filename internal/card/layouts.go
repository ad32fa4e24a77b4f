package card

import "github.com/Arty-Facts/profilecard/internal/models"

// gridLayout puts the links in a footer row, one column per link.
type gridLayout struct{}

func (gridLayout) Name() string { return "grid" }

func (gridLayout) Build(p models.Profile) Node {
	links := make([]Node, 0, len(p.Links))
	for _, l := range p.Links {
		links = append(links, anchor(l, RoleLink, []Attr{class("col")},
			icon(l, "float-start w-25"),
		))
	}

	return Node{Children: []Node{
		avatar(p.Avatar, "rounded-circle img-thumbnail"),
		el("footer", RoleLinks, []Attr{class("row")}, links...),
	}}
}

// sectionsLayout stacks each link in its own section, followed by the
// rendered about text when the profile has one.
type sectionsLayout struct{}

func (sectionsLayout) Name() string { return "sections" }

func (sectionsLayout) Build(p models.Profile) Node {
	sections := make([]Node, 0, len(p.Links)+1)
	for _, l := range p.Links {
		sections = append(sections, el("section", RoleLink, []Attr{class("hidden")},
			anchor(l, "", nil, icon(l, "")),
		))
	}
	if p.About != "" {
		sections = append(sections, el("section", "", []Attr{class("hidden")},
			el("div", RoleAbout, []Attr{class("mdPage")}, Node{Text: p.About, Raw: true}),
		))
	}

	return Node{Children: []Node{
		avatar(p.Avatar, "rounded-circle img-thumbnail"),
		el("div", RoleLinks, []Attr{class("content")}, sections...),
	}}
}
