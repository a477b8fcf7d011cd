// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package markup

import (
	"fmt"

	"github.com/playbymail/civil/cerrs"
)

// CompileToStruct lowers an AST into a flat sequence of elements.
// The noteID is mixed into generated id attributes so that several
// compiled notes can share one document without collisions.
func CompileToStruct(nodes []*Node, noteID int) ([]*Element, error) {
	var res []*Element

	for _, n := range nodes {
		es, err := compileNodeToStruct(n, noteID)
		if err != nil {
			return nil, err
		}
		res = append(res, es...)
	}

	return res, nil
}

func compileNodeToStruct(node *Node, noteID int) ([]*Element, error) {
	// the node offset is re-used as the element key

	switch node.Kind {
	case KindBlockQuote:
		return element("blockquote", node.Pos, noteID, node.Children)
	case KindCodeblock:
		code := &Element{
			Name:     "code",
			Children: []*Element{elementText(node.Text)},
		}
		// a recognized language rides along as a class for the
		// front end's syntax highlighter
		code.ClassName = node.Lang
		return []*Element{{
			Name:     "pre",
			Key:      keyOf(node.Pos),
			Children: []*Element{code},
		}}, nil
	case KindHeader:
		return elementHoisted(fmt.Sprintf("h%d", node.Level), node.Pos, noteID, node.Children)
	case KindHighlight:
		return elementHoisted("mark", node.Pos, noteID, node.Children)
	case KindHorizontalRule:
		return elementClass("hr", "hr-inline", node.Pos, noteID, nil)
	case KindImage:
		img := &Element{
			Name: "img",
			Key:  keyOf(node.Pos),
			Src:  node.Src,
		}
		if len(node.Children) == 0 {
			return []*Element{img}, nil
		}
		// a text description turns the image into a figure:
		// <figure><img/><figcaption>description</figcaption></figure>
		figcaption, err := elementHoisted("figcaption", node.Pos, noteID, node.Children)
		if err != nil {
			return nil, err
		}
		return []*Element{{
			Name:     "figure",
			Key:      keyOf(node.Pos),
			Children: append([]*Element{img}, figcaption...),
		}}, nil
	case KindItalic:
		return elementHoisted("i", node.Pos, noteID, node.Children)
	case KindListItem:
		return element("li", node.Pos, noteID, node.Children)
	case KindMarginComment:
		return compileSidenote("right-margin-scribble fg-blue", node.Pos, noteID, node.Children)
	case KindMarginDisagree:
		return compileSidenote("right-margin-scribble fg-red", node.Pos, noteID, node.Children)
	case KindMarginText:
		if node.Label == Numbered {
			return compileNumberedSidenote(node.Pos, noteID, node.Children)
		}
		return compileSidenote("right-margin", node.Pos, noteID, node.Children)
	case KindOrderedList:
		e, err := baseElement("ol", node.Pos, noteID, node.Children)
		if err != nil {
			return nil, err
		}
		e.Start = node.Start
		return []*Element{e}, nil
	case KindParagraph:
		return element("p", node.Pos, noteID, node.Children)
	case KindQuotation:
		return elementHoisted("em", node.Pos, noteID, node.Children)
	case KindStrong:
		return elementHoisted("strong", node.Pos, noteID, node.Children)
	case KindText:
		e := elementText(node.Text)
		e.Key = keyOf(node.Pos)
		return []*Element{e}, nil
	case KindUnderlined:
		return elementHoistedClass("span", "underlined", node.Pos, noteID, node.Children)
	case KindUnorderedList:
		return element("ul", node.Pos, noteID, node.Children)
	case KindUrl:
		e, err := baseElementHoisted("a", node.Pos, noteID, node.Children)
		if err != nil {
			return nil, err
		}
		e.Href = node.Href
		return []*Element{e}, nil
	default:
		return nil, cerrs.ErrCompiler
	}
}

// compileSidenote expands a margin node into the label, checkbox and
// span triple that drives the toggleable sidenote. The three siblings
// take consecutive keys so they stay distinct when diffed.
func compileSidenote(className string, key, noteID int, ns []*Node) ([]*Element, error) {
	id := fmt.Sprintf("sidenote-%d-%d", noteID, key)

	span, err := elementClass("span", className, key+2, noteID, ns)
	if err != nil {
		return nil, err
	}

	// the toggle glyph is 'circled times' U+2297
	return append([]*Element{
		elementClassFor("label", key, "right-margin-toggle", id, "⊗"),
		elementClassType("input", key+1, "right-margin-toggle", id, "checkbox"),
	}, span...), nil
}

func compileNumberedSidenote(key, noteID int, ns []*Node) ([]*Element, error) {
	id := fmt.Sprintf("numbered-sidenote-%d-%d", noteID, key)

	span, err := elementClass("span", "right-margin-numbered", key+2, noteID, ns)
	if err != nil {
		return nil, err
	}

	return append([]*Element{
		elementClassFor("label", key, "right-margin-toggle right-margin-number", id, ""),
		elementClassType("input", key+1, "right-margin-toggle", id, "checkbox"),
	}, span...), nil
}

func element(name string, key, noteID int, ns []*Node) ([]*Element, error) {
	e, err := baseElement(name, key, noteID, ns)
	if err != nil {
		return nil, err
	}
	return []*Element{e}, nil
}

func elementHoisted(name string, key, noteID int, ns []*Node) ([]*Element, error) {
	e, err := baseElementHoisted(name, key, noteID, ns)
	if err != nil {
		return nil, err
	}
	return []*Element{e}, nil
}

func elementClass(name, className string, key, noteID int, ns []*Node) ([]*Element, error) {
	e, err := baseElement(name, key, noteID, ns)
	if err != nil {
		return nil, err
	}
	e.ClassName = className
	return []*Element{e}, nil
}

func elementHoistedClass(name, className string, key, noteID int, ns []*Node) ([]*Element, error) {
	e, err := baseElementHoisted(name, key, noteID, ns)
	if err != nil {
		return nil, err
	}
	e.ClassName = className
	return []*Element{e}, nil
}

func elementText(text string) *Element {
	return &Element{Name: "text", Text: text}
}

func elementClassFor(name string, key int, className, htmlFor, text string) *Element {
	return &Element{
		Name:      name,
		Key:       keyOf(key),
		ClassName: className,
		HTMLFor:   htmlFor,
		Children:  []*Element{elementText(text)},
	}
}

func elementClassType(name string, key int, className, id, htmlType string) *Element {
	return &Element{
		Name:      name,
		Key:       keyOf(key),
		ClassName: className,
		ID:        id,
		HTMLType:  htmlType,
	}
}

func baseElement(name string, key, noteID int, ns []*Node) (*Element, error) {
	children, err := CompileToStruct(ns, noteID)
	if err != nil {
		return nil, err
	}
	return &Element{Name: name, Key: keyOf(key), Children: children}, nil
}

// baseElementHoisted is baseElement with the paragraph hoist: a
// container whose only child is a paragraph reaches through it and
// adopts the paragraph's children (and its offset as the key), so that
// inline containers like strong and em don't wrap a spurious <p>.
func baseElementHoisted(name string, key, noteID int, ns []*Node) (*Element, error) {
	if len(ns) == 1 && ns[0].Kind == KindParagraph {
		children, err := CompileToStruct(ns[0].Children, noteID)
		if err != nil {
			return nil, err
		}
		return &Element{Name: name, Key: keyOf(ns[0].Pos), Children: children}, nil
	}
	return baseElement(name, key, noteID, ns)
}
