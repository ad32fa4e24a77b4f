package profile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"

	"github.com/Arty-Facts/profilecard/internal/models"
)

// Source supplies the profile a card is rendered from. The profile is
// fixed once the source is constructed.
type Source interface {
	Close()
	GetProfile(ctx context.Context) (models.Profile, error)
}

type source struct {
	profile models.Profile
}

// NewStatic returns a source serving p after validating it.
func NewStatic(p models.Profile) (Source, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &source{profile: p.Clone()}, nil
}

func (s *source) Close() {}

func (s *source) GetProfile(ctx context.Context) (models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return models.Profile{}, err
	}
	return s.profile.Clone(), nil
}

type fileProfile struct {
	Name   string               `yaml:"name"`
	Title  string               `yaml:"title"`
	Avatar models.Image         `yaml:"avatar"`
	About  string               `yaml:"about"`
	Links  []models.ProfileLink `yaml:"links"`
}

// NewFile loads a profile from a YAML file. The optional about markdown
// file is resolved relative to the profile file and rendered once.
func NewFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	p, err := Decode(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", path, err)
	}
	return NewStatic(p)
}

// Decode parses a YAML profile. Relative about paths are resolved against dir.
func Decode(data []byte, dir string) (models.Profile, error) {
	var fp fileProfile
	if err := yaml.UnmarshalWithOptions(data, &fp, yaml.DisallowUnknownField()); err != nil {
		return models.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}

	p := models.Profile{
		Name:   fp.Name,
		Title:  fp.Title,
		Avatar: fp.Avatar,
		Links:  make([]models.ProfileLink, 0, len(fp.Links)),
	}
	if p.Avatar.Alt == "" {
		p.Avatar.Alt = fp.Name
	}

	for i, raw := range fp.Links {
		l, err := models.NewProfileLink(raw.Label, raw.TargetURL, raw.IconURL, raw.AltText)
		if err != nil {
			return models.Profile{}, fmt.Errorf("link %d (%s): %w", i, raw.Label, err)
		}
		p.Links = append(p.Links, l)
	}

	if fp.About != "" {
		aboutPath := fp.About
		if !filepath.IsAbs(aboutPath) {
			aboutPath = filepath.Join(dir, aboutPath)
		}
		src, err := os.ReadFile(aboutPath)
		if err != nil {
			return models.Profile{}, fmt.Errorf("failed to read about file: %w", err)
		}
		html, err := Markdown(src)
		if err != nil {
			return models.Profile{}, err
		}
		p.About = html
	}

	return p, nil
}

// Markdown renders markdown source to HTML.
func Markdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
