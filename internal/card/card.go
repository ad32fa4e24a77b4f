package card

import (
	"errors"
	"fmt"

	"github.com/Arty-Facts/profilecard/internal/models"
)

var ErrUnknownLayout = errors.New("card: unknown layout")

const DefaultLayout = "grid"

// Layout maps a profile to a display tree. Layouts share the profile data
// and differ only in presentation.
type Layout interface {
	Name() string
	Build(p models.Profile) Node
}

var layouts = []Layout{
	gridLayout{},
	sectionsLayout{},
}

// Layouts returns the registered layout names in a stable order.
func Layouts() []string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name()
	}
	return names
}

func LayoutByName(name string) (Layout, error) {
	for _, l := range layouts {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

// ProfileCard builds the display tree for p: the avatar image followed by
// one link section per profile link, in order. It performs no I/O and
// returns the same tree for the same input.
func ProfileCard(p models.Profile, l Layout) Node {
	if l == nil {
		l = gridLayout{}
	}
	return l.Build(p)
}

func avatar(img models.Image, classes string) Node {
	return el("img", RoleAvatar, []Attr{
		class(classes),
		{Name: "src", Value: img.Src},
		{Name: "alt", Value: img.Alt},
	})
}

func icon(l models.ProfileLink, classes string) Node {
	attrs := []Attr{
		{Name: "src", Value: l.IconURL},
		{Name: "alt", Value: l.AltText},
	}
	if classes != "" {
		attrs = append([]Attr{class(classes)}, attrs...)
	}
	return el("img", RoleIcon, attrs)
}

func anchor(l models.ProfileLink, role string, attrs []Attr, children ...Node) Node {
	attrs = append(attrs, Attr{Name: "href", Value: l.TargetURL})
	if l.Label != "" {
		attrs = append(attrs, Attr{Name: "title", Value: l.Label})
	}
	return el("a", role, attrs, children...)
}
