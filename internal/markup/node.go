// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package markup

import "fmt"

// NodeKind identifies the variant of an AST node.
type NodeKind int

const (
	KindBlockQuote NodeKind = iota
	KindCodeblock
	KindHeader
	KindHighlight
	KindHorizontalRule
	KindImage
	KindItalic
	KindListItem
	KindMarginComment
	KindMarginDisagree
	KindMarginText
	KindOrderedList
	KindParagraph
	KindQuotation
	KindStrong
	KindText
	KindUnderlined
	KindUnorderedList
	KindUrl
)

func (k NodeKind) String() string {
	switch k {
	case KindBlockQuote:
		return "BlockQuote"
	case KindCodeblock:
		return "Codeblock"
	case KindHeader:
		return "Header"
	case KindHighlight:
		return "Highlight"
	case KindHorizontalRule:
		return "HorizontalRule"
	case KindImage:
		return "Image"
	case KindItalic:
		return "Italic"
	case KindListItem:
		return "ListItem"
	case KindMarginComment:
		return "MarginComment"
	case KindMarginDisagree:
		return "MarginDisagree"
	case KindMarginText:
		return "MarginText"
	case KindOrderedList:
		return "OrderedList"
	case KindParagraph:
		return "Paragraph"
	case KindQuotation:
		return "Quotation"
	case KindStrong:
		return "Strong"
	case KindText:
		return "Text"
	case KindUnderlined:
		return "Underlined"
	case KindUnorderedList:
		return "UnorderedList"
	case KindUrl:
		return "Url"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// MarginTextLabel distinguishes the two sidenote presentations.
type MarginTextLabel int

const (
	UnNumbered MarginTextLabel = iota
	Numbered
)

// Node is an AST node. Pos is the character offset of the node's first
// source token. The remaining fields are populated per kind:
//
//	Text     literal text (KindText), raw body (KindCodeblock)
//	Lang     code language, empty when unrecognized (KindCodeblock)
//	Level    1..9 (KindHeader)
//	Label    sidenote presentation (KindMarginText)
//	Start    textual starting number (KindOrderedList)
//	Src      image source (KindImage)
//	Href     link target (KindUrl)
type Node struct {
	Kind     NodeKind
	Pos      int
	Children []*Node

	Text  string
	Lang  string
	Level int
	Label MarginTextLabel
	Start string
	Src   string
	Href  string
}
