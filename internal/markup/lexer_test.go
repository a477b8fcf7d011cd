// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package markup_test

import (
	"testing"
	"unicode/utf8"

	"github.com/go-test/deep"
	"github.com/playbymail/civil/internal/markup"
)

func tok(t *testing.T, input string, expected []markup.Token) {
	t.Helper()
	tokens, err := markup.Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if diff := deep.Equal(tokens, expected); diff != nil {
		t.Fatalf("tokenize %q: %v", input, diff)
	}
}

func TestLexer(t *testing.T) {
	tok(t, "[]", []markup.Token{
		{Kind: markup.BracketBegin, Pos: 0},
		{Kind: markup.BracketEnd, Pos: 1},
		{Kind: markup.EOS, Pos: 2},
	})

	tok(t, "here are some words", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "here are some words"},
		{Kind: markup.EOS, Pos: 19},
	})

	tok(t, "5", []markup.Token{
		{Kind: markup.Digits, Pos: 0, Text: "5"},
		{Kind: markup.EOS, Pos: 1},
	})

	tok(t, "foo *bar* @ 456789", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "foo "},
		{Kind: markup.Asterisk, Pos: 4},
		{Kind: markup.Text, Pos: 5, Text: "bar"},
		{Kind: markup.Asterisk, Pos: 8},
		{Kind: markup.Whitespace, Pos: 9, Text: " "},
		{Kind: markup.At, Pos: 10},
		{Kind: markup.Whitespace, Pos: 11, Text: " "},
		{Kind: markup.Digits, Pos: 12, Text: "456789"},
		{Kind: markup.EOS, Pos: 18},
	})
}

func TestLexerBlockquote(t *testing.T) {
	tok(t, ">>> only a blockquote <<<", []markup.Token{
		{Kind: markup.BlockquoteBegin, Pos: 0},
		{Kind: markup.Whitespace, Pos: 3, Text: " "},
		{Kind: markup.Text, Pos: 4, Text: "only a blockquote "},
		{Kind: markup.BlockquoteEnd, Pos: 22},
		{Kind: markup.EOS, Pos: 25},
	})

	// not a blockquote
	tok(t, ">> not quite a blockquote", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: ">"},
		{Kind: markup.Text, Pos: 1, Text: ">"},
		{Kind: markup.Whitespace, Pos: 2, Text: " "},
		{Kind: markup.Text, Pos: 3, Text: "not quite a blockquote"},
		{Kind: markup.EOS, Pos: 25},
	})

	tok(t, "prefix words >>> blockquote <<< suffix words", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "prefix words "},
		{Kind: markup.BlockquoteBegin, Pos: 13},
		{Kind: markup.Whitespace, Pos: 16, Text: " "},
		{Kind: markup.Text, Pos: 17, Text: "blockquote "},
		{Kind: markup.BlockquoteEnd, Pos: 28},
		{Kind: markup.Whitespace, Pos: 31, Text: " "},
		{Kind: markup.Text, Pos: 32, Text: "suffix words"},
		{Kind: markup.EOS, Pos: 44},
	})
}

func TestLexerCharLength(t *testing.T) {
	// the apostrophe is multibyte, so the number of bytes in the
	// string doesn't match the number of characters. positions must
	// not drift.
	tok(t, "For, Putin’s mind?\n:-", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "For, Putin’s mind?"},
		{Kind: markup.Newline, Pos: 18},
		{Kind: markup.Colon, Pos: 19},
		{Kind: markup.Hyphen, Pos: 20},
		{Kind: markup.EOS, Pos: 21},
	})
}

func TestLexerImageSyntax(t *testing.T) {
	// the kinds of lexed streams for representing image names

	// name starts with digit, ends in letter
	tok(t, ":img(00a.jpg)", []markup.Token{
		{Kind: markup.Colon, Pos: 0},
		{Kind: markup.Text, Pos: 1, Text: "img"},
		{Kind: markup.ParenBegin, Pos: 4},
		{Kind: markup.Digits, Pos: 5, Text: "00"},
		{Kind: markup.Text, Pos: 7, Text: "a.jpg"},
		{Kind: markup.ParenEnd, Pos: 12},
		{Kind: markup.EOS, Pos: 13},
	})

	// name starts with digit, ends in digit
	tok(t, ":img(000.jpg)", []markup.Token{
		{Kind: markup.Colon, Pos: 0},
		{Kind: markup.Text, Pos: 1, Text: "img"},
		{Kind: markup.ParenBegin, Pos: 4},
		{Kind: markup.Digits, Pos: 5, Text: "000"},
		{Kind: markup.Period, Pos: 8},
		{Kind: markup.Text, Pos: 9, Text: "jpg"},
		{Kind: markup.ParenEnd, Pos: 12},
		{Kind: markup.EOS, Pos: 13},
	})

	// name starts with letter
	tok(t, ":img(a00.jpg)", []markup.Token{
		{Kind: markup.Colon, Pos: 0},
		{Kind: markup.Text, Pos: 1, Text: "img"},
		{Kind: markup.ParenBegin, Pos: 4},
		{Kind: markup.Text, Pos: 5, Text: "a00.jpg"},
		{Kind: markup.ParenEnd, Pos: 12},
		{Kind: markup.EOS, Pos: 13},
	})
}

func TestLexerDoubleQuotes(t *testing.T) {
	tok(t, `alice said "hello"`, []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "alice said "},
		{Kind: markup.DoubleQuote, Pos: 11, Text: `"`},
		{Kind: markup.Text, Pos: 12, Text: "hello"},
		{Kind: markup.DoubleQuote, Pos: 17, Text: `"`},
		{Kind: markup.EOS, Pos: 18},
	})

	// curly quotes from a word processor are accepted and the exact
	// code point is retained
	tok(t, "bob said “hello”", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "bob said "},
		{Kind: markup.DoubleQuote, Pos: 9, Text: "“"},
		{Kind: markup.Text, Pos: 10, Text: "hello"},
		{Kind: markup.DoubleQuote, Pos: 15, Text: "”"},
		{Kind: markup.EOS, Pos: 16},
	})

	tok(t, "charlie said “”", []markup.Token{
		{Kind: markup.Text, Pos: 0, Text: "charlie said "},
		{Kind: markup.DoubleQuote, Pos: 13, Text: "“"},
		{Kind: markup.DoubleQuote, Pos: 14, Text: "”"},
		{Kind: markup.EOS, Pos: 15},
	})
}

// the token stream must cover the source exactly: one trailing EOS,
// positions matching the running character count, and the lexemes
// concatenating back to the source.
func TestLexerRoundTrip(t *testing.T) {
	for _, input := range []string{
		"",
		"hello world",
		"a *b* _c_ ^d^ \"e\"",
		">>> quoted <<< and ~more~ [text] :h2 hi\n1. item\n- item\n```\ncode\n```",
		"multibyte “quotes” and ’apostrophes’ — and dashes",
		":img(foo.jpg a caption) :url(https://example.com words)",
	} {
		tokens, err := markup.Tokenize(input)
		if err != nil {
			t.Fatalf("%q: tokenize: %v", input, err)
		}

		eos := 0
		for _, tk := range tokens {
			if tk.Kind == markup.EOS {
				eos++
			}
		}
		if eos != 1 {
			t.Fatalf("%q: %d EOS tokens, want 1", input, eos)
		}
		if tokens[len(tokens)-1].Kind != markup.EOS {
			t.Fatalf("%q: last token is %s, want EOS", input, tokens[len(tokens)-1].Kind)
		}

		index, text := 0, ""
		for _, tk := range tokens {
			if tk.Pos != index {
				t.Fatalf("%q: token %s at %d, want %d", input, tk.Kind, tk.Pos, index)
			}
			index += utf8.RuneCountInString(tk.Value())
			text += tk.Value()
		}
		if text != input {
			t.Fatalf("%q: lexemes rebuild to %q", input, text)
		}
	}
}
