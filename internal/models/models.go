package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyTargetURL = errors.New("models: empty target url")
	ErrEmptyIconURL   = errors.New("models: empty icon url")
	ErrEmptyAltText   = errors.New("models: empty alt text")
	ErrEmptyAvatar    = errors.New("models: empty avatar source")
	ErrInvalidScheme  = errors.New("models: invalid url scheme")
)

// ProfileLink is one outbound link shown on the profile page.
type ProfileLink struct {
	Label     string `yaml:"label"`
	TargetURL string `yaml:"url"`
	IconURL   string `yaml:"icon"`
	AltText   string `yaml:"alt"`
}

type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Profile is the data a card is rendered from. Links are in display order.
// About holds trusted HTML, already rendered from the profile's markdown.
type Profile struct {
	Name   string        `yaml:"name"`
	Title  string        `yaml:"title"`
	Avatar Image         `yaml:"avatar"`
	Links  []ProfileLink `yaml:"links"`
	About  string        `yaml:"-"`
}

// NewProfileLink validates the fields and returns the link. An empty alt
// text falls back to the label.
func NewProfileLink(label, target, icon, alt string) (ProfileLink, error) {
	l := ProfileLink{
		Label:     strings.TrimSpace(label),
		TargetURL: strings.TrimSpace(target),
		IconURL:   strings.TrimSpace(icon),
		AltText:   strings.TrimSpace(alt),
	}
	if l.AltText == "" {
		l.AltText = l.Label
	}
	if err := l.Validate(); err != nil {
		return ProfileLink{}, err
	}
	return l, nil
}

func (l ProfileLink) Validate() error {
	if l.TargetURL == "" {
		return ErrEmptyTargetURL
	}
	if l.IconURL == "" {
		return ErrEmptyIconURL
	}
	if l.AltText == "" {
		return ErrEmptyAltText
	}
	if err := checkTarget(l.TargetURL); err != nil {
		return err
	}
	return checkImage(l.IconURL)
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Avatar.Src) == "" {
		return ErrEmptyAvatar
	}
	if strings.TrimSpace(p.Avatar.Alt) == "" {
		return fmt.Errorf("avatar: %w", ErrEmptyAltText)
	}
	if err := checkImage(p.Avatar.Src); err != nil {
		return fmt.Errorf("avatar: %w", err)
	}
	for i, l := range p.Links {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("link %d (%s): %w", i, l.Label, err)
		}
	}
	return nil
}

// Clone returns a copy that shares no slices with p.
func (p Profile) Clone() Profile {
	c := p
	c.Links = append([]ProfileLink(nil), p.Links...)
	return c
}

func checkTarget(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: missing host in %q", ErrInvalidScheme, raw)
		}
		return nil
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("%w: missing address in %q", ErrInvalidScheme, raw)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScheme, raw)
	}
}

// Images may be absolute http(s) URLs or paths served next to the page.
func checkImage(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "":
		if u.Host != "" || u.Path == "" {
			return fmt.Errorf("%w: %q", ErrInvalidScheme, raw)
		}
		return nil
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: missing host in %q", ErrInvalidScheme, raw)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScheme, raw)
	}
}
