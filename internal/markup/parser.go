// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package markup

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/playbymail/civil/cerrs"
)

// haltNone is the "no halt token" sentinel threaded through the
// recursive descent. It is never a valid TokenKind.
const haltNone TokenKind = -1

// Parse consumes tokens and returns the block level nodes together
// with the unconsumed tail of the stream. Parsing halts at a
// terminator (EOS or BlockquoteEnd) so that the parse of a blockquote
// body can resume in the caller.
func Parse(tokens []Token) ([]Token, []*Node, error) {
	var res []*Node

	tokens = skipLeadingWhitespaceAndNewlines(tokens)
	for len(tokens) > 0 && !isTerminator(tokens) {
		var node *Node
		var err error
		if isNumberedListItem(tokens) {
			tokens, node, err = eatOrderedList(tokens, haltNone)
		} else if isUnorderedListItem(tokens) {
			tokens, node, err = eatUnorderedList(tokens, haltNone)
		} else if isCodeblock(tokens) {
			tokens, node, err = eatCodeblock(tokens)
		} else if isHorizontalRule(tokens) || isHeading(tokens) || isNewSyntaxHeading(tokens) {
			tokens, node, err = eatColon(tokens)
		} else if isImg(tokens) {
			tokens, node, err = eatImg(tokens)
		} else if isBlockquoteStart(tokens) {
			tokens, node, err = eatBlockquote(tokens)
		} else {
			// by default most content gets wrapped in a paragraph
			tokens, node, err = eatParagraph(tokens)
		}
		if err != nil {
			return nil, nil, err
		}

		res = append(res, node)
		tokens = skipLeadingWhitespaceAndNewlines(tokens)
	}

	return tokens, res, nil
}

func isNumberedListItem(tokens []Token) bool {
	return isTokenAt(tokens, 0, Digits) && isTokenAt(tokens, 1, Period) && isTokenAt(tokens, 2, Whitespace)
}

func isUnorderedListItem(tokens []Token) bool {
	return isTokenAt(tokens, 0, Hyphen) && isTokenAt(tokens, 1, Whitespace)
}

func isCodeblock(tokens []Token) bool {
	n := len(tokens)
	return isTokenAt(tokens, 0, BackTick) && isTokenAt(tokens, 1, BackTick) && isTokenAt(tokens, 2, BackTick) &&
		isTokenAt(tokens, n-3, BackTick) && isTokenAt(tokens, n-2, BackTick) && isTokenAt(tokens, n-1, BackTick)
}

func isHorizontalRule(tokens []Token) bool {
	return isTokenAt(tokens, 0, Colon) && isTokenAt(tokens, 1, Hyphen) &&
		(isTokenAt(tokens, 2, EOS) || isTokenAt(tokens, 2, Whitespace) || isTokenAt(tokens, 2, Newline))
}

// headingText recognizes the legacy heading syntax where the level and
// body share a single text lexeme, e.g. "h2 A header".
func headingText(s string) (int, string, bool) {
	for level := 1; level <= 9; level++ {
		if rest, ok := strings.CutPrefix(s, fmt.Sprintf("h%d ", level)); ok {
			return level, rest, true
		}
	}
	return 0, "", false
}

func isHeading(tokens []Token) bool {
	if isTokenAt(tokens, 0, Colon) && isTokenAt(tokens, 1, Text) {
		if _, rest, ok := headingText(tokens[1].Text); ok {
			return utf8.RuneCountInString(rest) > 0
		}
	}
	return false
}

func isNewSyntaxHeading(tokens []Token) bool {
	if isTokenAt(tokens, 0, Colon) && isTokenAt(tokens, 1, Text) {
		switch tokens[1].Text {
		case "h1", "h2", "h3", "h4", "h5", "h6", "h7", "h8", "h9":
			return true
		}
	}
	return false
}

func isColonSpecifier(tokens []Token) bool {
	return isTokenAt(tokens, 0, Colon) && isTokenAt(tokens, 1, Text) && isTokenAt(tokens, 2, ParenBegin)
}

func isImg(tokens []Token) bool {
	return isColonSpecifier(tokens) && isTextAt(tokens, 1, "img")
}

func isBlockquoteStart(tokens []Token) bool {
	return isTokenAt(tokens, 0, BlockquoteBegin)
}

func eatOrderedList(tokens []Token, haltAt TokenKind) ([]Token, *Node, error) {
	var children []*Node

	// the head must be the digits that start the ordered list
	if !isTokenAt(tokens, 0, Digits) {
		return nil, nil, cerrs.ErrParser
	}
	starts := tokens[0].Text
	pos := tokens[0].Pos

	for len(tokens) > 0 && !isHeadKind(tokens, haltAt) {
		tokens = tokens[3:] // digits, period, whitespace

		remaining, itemChildren, err := eatToNewline(tokens, haltAt)
		if err != nil {
			return nil, nil, err
		}
		tokens = remaining

		if len(itemChildren) > 0 {
			children = append(children, &Node{Kind: KindListItem, Pos: itemChildren[0].Pos, Children: itemChildren})
		}

		if !isNumberedListItem(tokens) {
			break
		}
	}

	return tokens, &Node{Kind: KindOrderedList, Pos: pos, Children: children, Start: starts}, nil
}

func eatUnorderedList(tokens []Token, haltAt TokenKind) ([]Token, *Node, error) {
	var children []*Node

	pos := tokens[0].Pos

	for len(tokens) > 0 && !isHeadKind(tokens, haltAt) {
		tokens = tokens[2:] // hyphen, whitespace

		remaining, itemChildren, err := eatToNewline(tokens, haltAt)
		if err != nil {
			return nil, nil, err
		}
		tokens = remaining

		if len(itemChildren) > 0 {
			children = append(children, &Node{Kind: KindListItem, Pos: itemChildren[0].Pos, Children: itemChildren})
		}

		if !isUnorderedListItem(tokens) {
			break
		}
	}

	return tokens, &Node{Kind: KindUnorderedList, Pos: pos, Children: children}, nil
}

func eatParagraph(tokens []Token) ([]Token, *Node, error) {
	remaining, children, err := eatToNewline(tokens, haltNone)
	if err != nil {
		return nil, nil, err
	}
	if len(children) == 0 {
		return nil, nil, cerrs.ErrParser
	}
	return remaining, &Node{Kind: KindParagraph, Pos: children[0].Pos, Children: children}, nil
}

func eatToNewline(tokens []Token, haltAt TokenKind) ([]Token, []*Node, error) {
	var nodes []*Node

	for len(tokens) > 0 && !isHeadKind(tokens, haltAt) && !isTerminator(tokens) {
		if isHead(tokens, Newline) {
			rest := skipLeadingNewlines(tokens)
			return rest, nodes, nil
		}
		rest, node, err := eatItem(tokens)
		if err != nil {
			return nil, nil, err
		}
		tokens = rest
		nodes = append(nodes, node)
	}

	return tokens, nodes, nil
}

// insidePair splits the stream on the closing delimiter matching the
// head token, parses the content between the pair and returns the
// tokens after the closer. The inner parse must consume its slice
// completely.
func insidePair(tokens []Token) ([]Token, []*Node, error) {
	within, outside, err := splitTokensAt(tokens[1:], tokens[0].Kind)
	if err != nil {
		return nil, nil, err
	}

	remaining, withinNodes, err := Parse(within)
	if err != nil {
		return nil, nil, err
	}
	if len(remaining) != 0 {
		// parse is unable to process all the content within the pair
		return nil, nil, cerrs.ErrParser
	}

	return outside, withinNodes, nil
}

func eatItem(tokens []Token) ([]Token, *Node, error) {
	switch tokens[0].Kind {
	case Asterisk:
		if rest, inside, err := insidePair(tokens); err == nil {
			return rest, &Node{Kind: KindStrong, Pos: tokens[0].Pos, Children: inside}, nil
		}
		return eatTextIncluding(tokens)
	case BackTick:
		return eatCodeblock(tokens)
	case BracketBegin, BracketEnd:
		return eatTextIncluding(tokens)
	case Caret:
		if rest, inside, err := insidePair(tokens); err == nil {
			return rest, &Node{Kind: KindHighlight, Pos: tokens[0].Pos, Children: inside}, nil
		}
		return eatTextIncluding(tokens)
	case Colon:
		return eatColon(tokens)
	case DoubleQuote:
		if rest, inside, err := insidePair(tokens); err == nil {
			return rest, &Node{Kind: KindQuotation, Pos: tokens[0].Pos, Children: inside}, nil
		}
		return eatTextIncluding(tokens)
	case Pipe:
		return eatPipe(tokens)
	case At, Tilde:
		// no structural meaning on their own, degrade to literal text
		return eatTextIncluding(tokens)
	case Underscore:
		if rest, inside, err := insidePair(tokens); err == nil {
			return rest, &Node{Kind: KindUnderlined, Pos: tokens[0].Pos, Children: inside}, nil
		}
		return eatTextIncluding(tokens)
	default:
		return eatText(tokens)
	}
}

func eatImg(tokens []Token) ([]Token, *Node, error) {
	pos := tokens[0].Pos
	tokens, imageName, description, err := eatAsImageDescriptionPair(tokens)
	if err != nil {
		return nil, nil, err
	}

	return tokens, &Node{Kind: KindImage, Pos: pos, Src: imageName, Children: description}, nil
}

func eatURL(tokens []Token) ([]Token, *Node, error) {
	pos := tokens[0].Pos
	tokens, url, description, err := eatAsURLDescriptionPair(tokens)
	if err != nil {
		return nil, nil, err
	}

	return tokens, &Node{Kind: KindUrl, Pos: pos, Href: url, Children: description}, nil
}

func eatColon(tokens []Token) ([]Token, *Node, error) {
	// Colon, Hyphen, Whitespace, (Text), EOS | Newline
	// ":- this text is following a horizontal line"
	//
	// Colon, Text, (Text), EOS | Newline
	// ":h2 this is a heading"

	pos := tokens[0].Pos
	if isTokenAt(tokens, 1, Hyphen) {
		if isTokenAt(tokens, 2, EOS) || isTokenAt(tokens, 2, Whitespace) || isTokenAt(tokens, 2, Newline) {
			tokens = tokens[3:]
		} else {
			tokens = tokens[2:]
		}
		return tokens, &Node{Kind: KindHorizontalRule, Pos: pos}, nil
	} else if isTokenAt(tokens, 1, Text) {
		switch s := tokens[1].Text; s {
		case "img":
			return eatImg(tokens)
		case "url":
			return eatURL(tokens)
		case "b":
			return eatBasicColonCommand(tokens, KindStrong)
		case "h":
			return eatBasicColonCommand(tokens, KindHighlight)
		case "u":
			return eatBasicColonCommand(tokens, KindUnderlined)
		case "i":
			return eatBasicColonCommand(tokens, KindItalic)
		case "h1", "h2", "h3", "h4", "h5", "h6", "h7", "h8", "h9":
			level := int(s[1] - '0')
			rest, node, err := eatBasicColonCommand(tokens, KindHeader)
			if err != nil {
				return nil, nil, err
			}
			node.Level = level
			return rest, node, nil
		case "side":
			rest, node, err := eatBasicColonCommand(tokens, KindMarginText)
			if err != nil {
				return nil, nil, err
			}
			node.Label = UnNumbered
			return rest, node, nil
		case "nside":
			rest, node, err := eatBasicColonCommand(tokens, KindMarginText)
			if err != nil {
				return nil, nil, err
			}
			node.Label = Numbered
			return rest, node, nil
		case "comment":
			return eatBasicColonCommand(tokens, KindMarginComment)
		case "disagree":
			return eatBasicColonCommand(tokens, KindMarginDisagree)
		default:
			if level, rest, ok := headingText(s); ok {
				// legacy heading: the level and the first words share
				// one lexeme
				headerChildren := []*Node{{Kind: KindText, Pos: tokens[1].Pos, Text: rest}}
				tokens = tokens[2:]

				// markup like ":h1 a heading (with parens)" lexes the
				// parenthesized part into separate tokens, so the rest
				// of the line still needs an inline parse
				toks, otherNodes, err := eatToNewline(tokens, haltNone)
				if err != nil {
					return nil, nil, err
				}
				headerChildren = append(headerChildren, otherNodes...)

				return toks, &Node{Kind: KindHeader, Pos: pos, Level: level, Children: headerChildren}, nil
			}
			return eatTextIncluding(tokens)
		}
	}
	return eatTextIncluding(tokens)
}

func eatCodeblock(tokens []Token) ([]Token, *Node, error) {
	if len(tokens) < 6 || !isTokenAt(tokens, 1, BackTick) || !isTokenAt(tokens, 2, BackTick) {
		return eatTextIncluding(tokens)
	}

	pos := tokens[0].Pos

	tokens = tokens[3:] // opening backticks

	// a word on the same line as the opening backticks is the
	// descriptor for the code language
	tokens = skipLeadingWhitespace(tokens)

	var language string
	if !isHead(tokens, Newline) {
		toks, s := eatTextAsString(tokens)
		tokens = toks
		if s == "rust" {
			language = s
		}
	}

	tokens, code := eatString(tokens, BackTick)

	if len(tokens) >= 3 &&
		isTokenAt(tokens, 0, BackTick) && isTokenAt(tokens, 1, BackTick) && isTokenAt(tokens, 2, BackTick) {
		tokens = tokens[3:]
	}

	return tokens, &Node{Kind: KindCodeblock, Pos: pos, Lang: language, Text: code}, nil
}

func parsePipeContent(tokens []Token) ([]Token, []*Node, error) {
	withinPipe, outsidePipe, err := splitTokensAt(tokens, Pipe)
	if err != nil {
		return nil, nil, err
	}
	remaining, withinPipeNodes, err := Parse(withinPipe)
	if err != nil {
		return nil, nil, err
	}
	if len(remaining) != 0 {
		// parse is unable to process all the pipe content
		return nil, nil, cerrs.ErrParser
	}
	return outsidePipe, withinPipeNodes, nil
}

func eatPipe(tokens []Token) ([]Token, *Node, error) {
	if isTokenAt(tokens, 1, Pipe) {
		// two pipes, treat this as text (e.g. could be part of a code
		// snippet)
		return eatTextIncluding(tokens)
	} else if remainingTokensContain(tokens, Pipe) {
		pos := tokens[0].Pos

		if isTokenAt(tokens, 1, Colon) && isTokenAt(tokens, 2, Hash) {
			tokens = skipLeadingWhitespace(tokens[3:]) // eat the pipe, colon, hash

			tokens, withinPipeNodes, err := parsePipeContent(tokens)
			if err != nil {
				return nil, nil, err
			}

			return tokens, &Node{Kind: KindMarginText, Pos: pos, Label: Numbered, Children: withinPipeNodes}, nil
		} else if isTokenAt(tokens, 1, Colon) && isTokenAt(tokens, 2, Hyphen) {
			tokens = skipLeadingWhitespace(tokens[3:]) // eat the pipe, colon, hyphen

			tokens, withinPipeNodes, err := parsePipeContent(tokens)
			if err != nil {
				return nil, nil, err
			}

			return tokens, &Node{Kind: KindMarginDisagree, Pos: pos, Children: withinPipeNodes}, nil
		} else if isTokenAt(tokens, 1, Colon) && isTokenAt(tokens, 2, Plus) {
			tokens = skipLeadingWhitespace(tokens[3:]) // eat the pipe, colon, plus

			tokens, withinPipeNodes, err := parsePipeContent(tokens)
			if err != nil {
				return nil, nil, err
			}

			return tokens, &Node{Kind: KindMarginComment, Pos: pos, Children: withinPipeNodes}, nil
		}

		tokens = skipLeadingWhitespace(tokens[1:]) // eat the opening pipe

		tokens, withinPipeNodes, err := parsePipeContent(tokens)
		if err != nil {
			return nil, nil, err
		}

		return tokens, &Node{Kind: KindMarginText, Pos: pos, Label: UnNumbered, Children: withinPipeNodes}, nil
	}
	return eatTextIncluding(tokens)
}

// splitTextTokenAtWhitespace splits a text token into the run before
// its first whitespace and, when anything follows, a second token
// positioned after the split.
func splitTextTokenAtWhitespace(t Token) (Token, *Token, error) {
	if t.Kind != Text {
		return Token{}, nil, cerrs.ErrParser
	}
	fields := strings.Fields(t.Text)
	if len(fields) == 0 {
		return t, nil, nil
	}

	first := Token{Kind: Text, Pos: t.Pos, Text: fields[0]}
	remaining := strings.TrimPrefix(t.Text, fields[0])
	if utf8.RuneCountInString(remaining) > 0 {
		rhs := Token{
			Kind: Text,
			Pos:  t.Pos + utf8.RuneCountInString(fields[0]),
			Text: strings.TrimLeftFunc(remaining, unicode.IsSpace),
		}
		return first, &rhs, nil
	}
	return first, nil, nil
}

// eatColonCommandContent returns the tokens between the balanced
// parentheses of a ":name(...)" command.
func eatColonCommandContent(tokens []Token) ([]Token, []Token, error) {
	if len(tokens) < 3 {
		return nil, nil, cerrs.ErrParser
	}

	var content []Token
	parenBalancer := 1

	tokens = tokens[3:] // eat the colon, text, opening parenthesis

	for len(tokens) > 0 {
		if isHead(tokens, ParenBegin) {
			parenBalancer++
			content = append(content, tokens[0])
			tokens = tokens[1:]
		} else if isHead(tokens, ParenEnd) {
			parenBalancer--
			tok := tokens[0]
			tokens = tokens[1:]

			if parenBalancer == 0 {
				// reached the closing paren
				break
			}
			content = append(content, tok)
		} else {
			content = append(content, tokens[0])
			tokens = tokens[1:]
		}
	}

	return tokens, content, nil
}

func eatBasicColonCommand(tokens []Token, kind NodeKind) ([]Token, *Node, error) {
	pos := tokens[0].Pos
	tokens, content, err := eatColonCommandContent(tokens)
	if err != nil {
		return nil, nil, err
	}

	_, parsedContent, err := Parse(content)
	if err != nil {
		return nil, nil, err
	}

	return tokens, &Node{Kind: kind, Pos: pos, Children: parsedContent}, nil
}

// eatColonCommandPairing collects the body of a ":name(...)" command,
// splitting it at the first whitespace into the core tokens (the image
// source or link target) and the description tokens.
func eatColonCommandPairing(tokens []Token) ([]Token, bool, []Token, []Token, error) {
	if len(tokens) < 3 {
		return nil, false, nil, nil, cerrs.ErrParser
	}

	foundDescDivide := false
	var coreTokens []Token
	var descTokens []Token

	parenBalancer := 1

	tokens = tokens[3:] // eat the colon, text, opening parenthesis

	for len(tokens) > 0 {
		if isHead(tokens, ParenBegin) {
			parenBalancer++
			if foundDescDivide {
				descTokens = append(descTokens, tokens[0])
			} else {
				coreTokens = append(coreTokens, tokens[0])
			}
			tokens = tokens[1:]
		} else if isHead(tokens, ParenEnd) {
			parenBalancer--
			tok := tokens[0]
			tokens = tokens[1:]

			if parenBalancer == 0 {
				// reached the closing paren
				break
			}
			if foundDescDivide {
				descTokens = append(descTokens, tok)
			} else {
				coreTokens = append(coreTokens, tok)
			}
		} else if isHead(tokens, Text) && !foundDescDivide {
			firstTextToken, otherTextToken, err := splitTextTokenAtWhitespace(tokens[0])
			if err != nil {
				return nil, false, nil, nil, err
			}

			coreTokens = append(coreTokens, firstTextToken)
			if otherTextToken != nil {
				foundDescDivide = true
				descTokens = append(descTokens, *otherTextToken)
			}
			tokens = tokens[1:]
		} else if isHead(tokens, Whitespace) && !foundDescDivide {
			foundDescDivide = true
		} else {
			if foundDescDivide {
				descTokens = append(descTokens, tokens[0])
			} else {
				coreTokens = append(coreTokens, tokens[0])
			}
			tokens = tokens[1:]
		}
	}

	return tokens, foundDescDivide, coreTokens, descTokens, nil
}

func eatAsURLDescriptionPair(tokens []Token) ([]Token, string, []*Node, error) {
	tokens, foundDivide, left, right, err := eatColonCommandPairing(tokens)
	if err != nil {
		return nil, "", nil, err
	}

	var sb strings.Builder
	for _, t := range left {
		sb.WriteString(t.Value())
	}

	// if there is no text after the first space then use the url as
	// the displayed text
	var descriptionNodes []*Node
	if foundDivide {
		_, descriptionNodes, err = Parse(right)
	} else {
		_, descriptionNodes, err = Parse(left)
	}
	if err != nil {
		return nil, "", nil, err
	}
	return tokens, sb.String(), descriptionNodes, nil
}

func eatAsImageDescriptionPair(tokens []Token) ([]Token, string, []*Node, error) {
	tokens, foundDivide, left, right, err := eatColonCommandPairing(tokens)
	if err != nil {
		return nil, "", nil, err
	}

	var sb strings.Builder
	for _, t := range left {
		sb.WriteString(t.Value())
	}

	// only have descriptive text if it's in the markup after the
	// image filename
	if foundDivide {
		_, descriptionNodes, err := Parse(right)
		if err != nil {
			return nil, "", nil, err
		}
		return tokens, sb.String(), descriptionNodes, nil
	}
	return tokens, sb.String(), nil, nil
}

func eatBlockquote(tokens []Token) ([]Token, *Node, error) {
	pos := tokens[0].Pos

	tokens = tokens[1:] // skip past the BlockquoteBegin token

	remaining, nodes, err := Parse(tokens)
	if err != nil {
		return nil, nil, err
	}

	if len(remaining) > 0 {
		remaining = remaining[1:] // skip past the BlockquoteEnd token
	}

	rem := skipLeadingWhitespaceAndNewlines(remaining)

	return rem, &Node{Kind: KindBlockQuote, Pos: pos, Children: nodes}, nil
}

// remainingTokensContain ignores the first token.
func remainingTokensContain(tokens []Token, kind TokenKind) bool {
	if len(tokens) > 1 {
		for _, t := range tokens[1:] {
			if t.Kind == kind {
				return true
			}
		}
	}
	return false
}

// eatString treats every token as text until a token of the given kind
// is reached.
func eatString(tokens []Token, haltAt TokenKind) ([]Token, string) {
	var sb strings.Builder

	for len(tokens) > 0 && !isHead(tokens, haltAt) {
		sb.WriteString(tokens[0].Value())
		tokens = tokens[1:]
	}

	return tokens, sb.String()
}

// eatTextIncluding treats the first token as text and then appends any
// further plain tokens.
func eatTextIncluding(tokens []Token) ([]Token, *Node, error) {
	pos := tokens[0].Pos
	s := tokens[0].Value()
	tokens, st := eatTextAsString(tokens[1:])

	return tokens, &Node{Kind: KindText, Pos: pos, Text: s + st}, nil
}

func eatText(tokens []Token) ([]Token, *Node, error) {
	pos := tokens[0].Pos
	tokens, value := eatTextAsString(tokens)
	return tokens, &Node{Kind: KindText, Pos: pos, Text: value}, nil
}

// eatTextAsString concatenates the maximal run of tokens that read as
// plain text.
func eatTextAsString(tokens []Token) ([]Token, string) {
	var sb strings.Builder

	for len(tokens) > 0 {
		switch tokens[0].Kind {
		case Text, Digits, Whitespace, Plus, Period, Hash, Hyphen, ParenBegin, ParenEnd:
			sb.WriteString(tokens[0].Value())
		default:
			return tokens, sb.String()
		}
		tokens = tokens[1:]
	}

	return tokens, sb.String()
}

func skipLeadingWhitespaceAndNewlines(tokens []Token) []Token {
	for i, tok := range tokens {
		if tok.Kind != Whitespace && tok.Kind != Newline {
			return tokens[i:]
		}
	}
	return nil
}

func skipLeadingNewlines(tokens []Token) []Token {
	return skipLeading(tokens, Newline)
}

func skipLeadingWhitespace(tokens []Token) []Token {
	return skipLeading(tokens, Whitespace)
}

func skipLeading(tokens []Token, kind TokenKind) []Token {
	for i, tok := range tokens {
		if tok.Kind != kind {
			return tokens[i:]
		}
	}
	return nil
}

func isTerminator(tokens []Token) bool {
	return isTokenAt(tokens, 0, EOS) || isTokenAt(tokens, 0, BlockquoteEnd)
}

func isHead(tokens []Token, kind TokenKind) bool {
	return isTokenAt(tokens, 0, kind)
}

// isHeadKind is isHead with the haltNone sentinel allowed.
func isHeadKind(tokens []Token, kind TokenKind) bool {
	if kind == haltNone {
		return false
	}
	return isTokenAt(tokens, 0, kind)
}

func isTokenAt(tokens []Token, idx int, kind TokenKind) bool {
	return idx >= 0 && len(tokens) > idx && tokens[idx].Kind == kind
}

func isTextAt(tokens []Token, idx int, text string) bool {
	return isTokenAt(tokens, idx, Text) && tokens[idx].Text == text
}
