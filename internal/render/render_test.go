package render

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Arty-Facts/profilecard/internal/card"
	"github.com/Arty-Facts/profilecard/internal/models"
)

func renderDoc(t *testing.T, p models.Profile, layout string, opts Options) *goquery.Document {
	t.Helper()
	l, err := card.LayoutByName(layout)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bytes(context.Background(), Page(p, l, opts))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("failed to parse rendered page: %v", err)
	}
	return doc
}

func TestNodeRendersAttributesInOrder(t *testing.T) {
	n := card.Node{
		Tag:   "a",
		Attrs: []card.Attr{{Name: "class", Value: "col"}, {Name: "href", Value: "https://example.com/?a=1&b=2"}},
		Children: []card.Node{
			{Tag: "img", Attrs: []card.Attr{{Name: "src", Value: "/i.png"}, {Name: "alt", Value: `say "hi"`}}},
		},
	}

	var buf bytes.Buffer
	if err := Node(n).Render(&buf); err != nil {
		t.Fatal(err)
	}

	want := `<a class="col" href="https://example.com/?a=1&amp;b=2"><img src="/i.png" alt="say &#34;hi&#34;"></a>`
	if buf.String() != want {
		t.Errorf("expected %s, got %s", want, buf.String())
	}
}

func TestNodeTextEscaping(t *testing.T) {
	var buf bytes.Buffer
	n := card.Node{Children: []card.Node{
		{Tag: "p", Text: "<b>bold</b>"},
		{Tag: "div", Children: []card.Node{{Text: "<b>bold</b>", Raw: true}}},
	}}
	if err := Node(n).Render(&buf); err != nil {
		t.Fatal(err)
	}

	want := `<p>&lt;b&gt;bold&lt;/b&gt;</p><div><b>bold</b></div>`
	if buf.String() != want {
		t.Errorf("expected %s, got %s", want, buf.String())
	}
}

func TestPageGrid(t *testing.T) {
	p := models.DefaultProfile()
	doc := renderDoc(t, p, "grid", Options{AssetPrefix: "/static/"})

	if got := doc.Find("title").Text(); got != "Arty Facts" {
		t.Errorf("expected title 'Arty Facts', got %q", got)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "en" {
		t.Errorf("expected lang 'en', got %q", lang)
	}

	var sheets []string
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		sheets = append(sheets, href)
	})
	if len(sheets) != 2 || sheets[0] != DefaultStylesheetURL || sheets[1] != "/static/style.css" {
		t.Errorf("unexpected stylesheets %v", sheets)
	}

	if n := doc.Find("img.rounded-circle").Length(); n != 1 {
		t.Errorf("expected 1 avatar image, got %d", n)
	}

	anchors := doc.Find("footer.row > a.col")
	if anchors.Length() != len(p.Links) {
		t.Fatalf("expected %d anchors, got %d", len(p.Links), anchors.Length())
	}
	anchors.Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href != p.Links[i].TargetURL {
			t.Errorf("anchor %d: expected %q, got %q", i, p.Links[i].TargetURL, href)
		}
		src, _ := s.Find("img").Attr("src")
		if src != p.Links[i].IconURL {
			t.Errorf("anchor %d: expected icon %q, got %q", i, p.Links[i].IconURL, src)
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if alt, _ := s.Attr("alt"); strings.TrimSpace(alt) == "" {
			t.Error("found image with empty alt text")
		}
	})
}

func TestPageSections(t *testing.T) {
	p := models.DefaultProfile()
	p.About = "<h1>About</h1><p>Hello there</p>"
	doc := renderDoc(t, p, "sections", Options{AssetPrefix: "static/"})

	if n := doc.Find("div.content > section.hidden > a > img").Length(); n != len(p.Links) {
		t.Errorf("expected %d link sections, got %d", len(p.Links), n)
	}
	if got := doc.Find("div.mdPage p").Text(); got != "Hello there" {
		t.Errorf("expected about paragraph, got %q", got)
	}
	if href, _ := doc.Find(`link[href="static/style.css"]`).Attr("href"); href != "static/style.css" {
		t.Errorf("expected relative stylesheet, got %q", href)
	}
}

func TestPageDeterministic(t *testing.T) {
	l, _ := card.LayoutByName("grid")
	p := models.DefaultProfile()

	first, err := Bytes(context.Background(), Page(p, l, Options{}))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Bytes(context.Background(), Page(p, l, Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical output for repeated renders")
	}
}

func TestPageCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Bytes(ctx, Page(models.DefaultProfile(), nil, Options{})); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestErrorPage(t *testing.T) {
	b, err := Bytes(context.Background(), ErrorPage(http.StatusNotFound))
	if err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("h1").Text(); got != "404" {
		t.Errorf("expected heading '404', got %q", got)
	}
	if got := doc.Find("title").Text(); got != "Not Found" {
		t.Errorf("expected title 'Not Found', got %q", got)
	}
}
