// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package markup_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/playbymail/civil/internal/markup"
)

func render(t *testing.T, input string, noteID int) []*markup.Element {
	t.Helper()
	elements, err := markup.Render(input, noteID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return elements
}

func key(k int) *int {
	return &k
}

func TestCompileEmpty(t *testing.T) {
	elements, err := markup.CompileToStruct(nil, 1)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(elements) != 0 {
		t.Fatalf("elements: got %d, want 0", len(elements))
	}

	// an empty source renders to an empty element list
	elements = render(t, "", 1)
	if len(elements) != 0 {
		t.Fatalf("elements: got %d, want 0", len(elements))
	}
}

func TestCompileTextNode(t *testing.T) {
	nodes := []*markup.Node{{Kind: markup.KindText, Pos: 0, Text: "plain"}}
	elements, err := markup.CompileToStruct(nodes, 1)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	expected := []*markup.Element{{Name: "text", Key: key(0), Text: "plain"}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("compile: %v", diff)
	}
}

func TestCompileParagraph(t *testing.T) {
	elements := render(t, "hello world", 1)
	expected := []*markup.Element{{
		Name: "p",
		Key:  key(0),
		Children: []*markup.Element{
			{Name: "text", Key: key(0), Text: "hello world"},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileStrong(t *testing.T) {
	// the strong wraps a single parsed paragraph, which hoists: the
	// paragraph's children attach directly and its offset becomes the key
	elements := render(t, "*bold*", 1)
	expected := []*markup.Element{{
		Name: "p",
		Key:  key(0),
		Children: []*markup.Element{
			{
				Name: "strong",
				Key:  key(1),
				Children: []*markup.Element{
					{Name: "text", Key: key(1), Text: "bold"},
				},
			},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileUnorderedList(t *testing.T) {
	elements := render(t, "- a\n- b\n- c", 1)
	expected := []*markup.Element{{
		Name: "ul",
		Key:  key(0),
		Children: []*markup.Element{
			{Name: "li", Key: key(2), Children: []*markup.Element{{Name: "text", Key: key(2), Text: "a"}}},
			{Name: "li", Key: key(6), Children: []*markup.Element{{Name: "text", Key: key(6), Text: "b"}}},
			{Name: "li", Key: key(10), Children: []*markup.Element{{Name: "text", Key: key(10), Text: "c"}}},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileOrderedListStart(t *testing.T) {
	elements := render(t, "21. first\n22. second", 1)
	if len(elements) != 1 {
		t.Fatalf("elements: got %d, want 1", len(elements))
	}
	ol := elements[0]
	if ol.Name != "ol" || ol.Start != "21" {
		t.Fatalf("got %s start=%q, want ol start=21", ol.Name, ol.Start)
	}
	if len(ol.Children) != 2 || ol.Children[0].Name != "li" {
		t.Fatalf("bad list children")
	}
}

func TestCompileImageWithCaption(t *testing.T) {
	elements := render(t, ":img(foo.jpg a caption)", 1)
	expected := []*markup.Element{{
		Name: "figure",
		Key:  key(0),
		Children: []*markup.Element{
			{Name: "img", Key: key(0), Src: "foo.jpg"},
			{
				Name: "figcaption",
				Key:  key(12),
				Children: []*markup.Element{
					{Name: "text", Key: key(12), Text: "a caption"},
				},
			},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileImageBare(t *testing.T) {
	elements := render(t, ":img(foo.jpg)", 1)
	expected := []*markup.Element{
		{Name: "img", Key: key(0), Src: "foo.jpg"},
	}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileURL(t *testing.T) {
	elements := render(t, ":url(https://example.com)", 1)
	expected := []*markup.Element{{
		Name: "p",
		Key:  key(0),
		Children: []*markup.Element{
			{
				Name: "a",
				Key:  key(5),
				Href: "https://example.com",
				Children: []*markup.Element{
					{Name: "text", Key: key(5), Text: "https"},
					{Name: "text", Key: key(10), Text: "://example.com"},
				},
			},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileNumberedSidenote(t *testing.T) {
	elements := render(t, "x |:# a note| y", 7)
	expected := []*markup.Element{{
		Name: "p",
		Key:  key(0),
		Children: []*markup.Element{
			{Name: "text", Key: key(0), Text: "x "},
			{
				Name:      "label",
				Key:       key(2),
				ClassName: "right-margin-toggle right-margin-number",
				HTMLFor:   "numbered-sidenote-7-2",
				Children:  []*markup.Element{{Name: "text"}},
			},
			{
				Name:      "input",
				Key:       key(3),
				ClassName: "right-margin-toggle",
				ID:        "numbered-sidenote-7-2",
				HTMLType:  "checkbox",
			},
			{
				Name:      "span",
				Key:       key(4),
				ClassName: "right-margin-numbered",
				Children: []*markup.Element{{
					Name: "p",
					Key:  key(6),
					Children: []*markup.Element{
						{Name: "text", Key: key(6), Text: "a note"},
					},
				}},
			},
			{Name: "text", Key: key(13), Text: " y"},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileUnnumberedSidenote(t *testing.T) {
	elements := render(t, "x |a note| y", 3)
	p := elements[0]
	if len(p.Children) != 5 {
		t.Fatalf("children: got %d, want 5", len(p.Children))
	}
	label, input, span := p.Children[1], p.Children[2], p.Children[3]
	if label.Name != "label" || label.ClassName != "right-margin-toggle" || label.HTMLFor != "sidenote-3-2" {
		t.Fatalf("bad label: %+v", label)
	}
	if len(label.Children) != 1 || label.Children[0].Text != "⊗" {
		t.Fatalf("bad label glyph: %+v", label.Children)
	}
	if input.Name != "input" || input.ID != "sidenote-3-2" || input.HTMLType != "checkbox" {
		t.Fatalf("bad input: %+v", input)
	}
	if span.Name != "span" || span.ClassName != "right-margin" {
		t.Fatalf("bad span: %+v", span)
	}
	// keys stay distinct across the three siblings
	if *label.Key != 2 || *input.Key != 3 || *span.Key != 4 {
		t.Fatalf("bad keys: %d %d %d", *label.Key, *input.Key, *span.Key)
	}
}

func TestCompileMarginScribbles(t *testing.T) {
	elements := render(t, "a |:+ agree| b", 1)
	span := elements[0].Children[3]
	if span.Name != "span" || span.ClassName != "right-margin-scribble fg-blue" {
		t.Fatalf("bad comment span: %+v", span)
	}

	elements = render(t, "a |:- nope| b", 1)
	span = elements[0].Children[3]
	if span.Name != "span" || span.ClassName != "right-margin-scribble fg-red" {
		t.Fatalf("bad disagree span: %+v", span)
	}
}

func TestCompileHeaderHoisting(t *testing.T) {
	elements := render(t, ":h2(A header)", 1)
	expected := []*markup.Element{{
		Name: "h2",
		Key:  key(4),
		Children: []*markup.Element{
			{Name: "text", Key: key(4), Text: "A header"},
		},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileHorizontalRule(t *testing.T) {
	elements := render(t, ":-", 1)
	expected := []*markup.Element{
		{Name: "hr", Key: key(0), ClassName: "hr-inline"},
	}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileCodeblock(t *testing.T) {
	elements := render(t, "```rust\nlet x = 1;\n```", 1)
	expected := []*markup.Element{{
		Name: "p",
		Key:  key(0),
		Children: []*markup.Element{{
			Name: "pre",
			Key:  key(0),
			Children: []*markup.Element{{
				Name:      "code",
				ClassName: "rust",
				Children: []*markup.Element{
					{Name: "text", Text: "\nlet x = 1;\n"},
				},
			}},
		}},
	}}
	if diff := deep.Equal(elements, expected); diff != nil {
		t.Fatalf("render: %v", diff)
	}
}

func TestCompileQuotation(t *testing.T) {
	elements := render(t, `she said "yes"`, 1)
	p := elements[0]
	if len(p.Children) != 2 {
		t.Fatalf("children: got %d, want 2", len(p.Children))
	}
	em := p.Children[1]
	if em.Name != "em" {
		t.Fatalf("got %s, want em", em.Name)
	}
	if len(em.Children) != 1 || em.Children[0].Text != "yes" {
		t.Fatalf("bad quotation: %+v", em.Children)
	}
}

func TestCompileHighlightAndUnderline(t *testing.T) {
	elements := render(t, "a ^b^ _c_", 1)
	p := elements[0]
	mark := p.Children[1]
	if mark.Name != "mark" {
		t.Fatalf("got %s, want mark", mark.Name)
	}
	span := p.Children[3]
	if span.Name != "span" || span.ClassName != "underlined" {
		t.Fatalf("bad underline: %+v", span)
	}
}

func TestCompileBlockquote(t *testing.T) {
	elements := render(t, ">>>\nquoted\n<<<", 1)
	if len(elements) != 1 {
		t.Fatalf("elements: got %d, want 1", len(elements))
	}
	bq := elements[0]
	if bq.Name != "blockquote" {
		t.Fatalf("got %s, want blockquote", bq.Name)
	}
	if len(bq.Children) != 1 || bq.Children[0].Name != "p" {
		t.Fatalf("bad blockquote children: %+v", bq.Children)
	}
}
