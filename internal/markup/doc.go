// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package markup implements the note markup language used by Civil.
// It is a three stage pipeline: a lexer that tokenizes UTF-8 source into
// a flat token stream with character offsets, a recursive descent parser
// that builds a tree of block and inline nodes, and a compiler that
// lowers the tree into renderable elements. Each stage is a pure
// function of its input; positions are carried end to end so rendered
// elements can reference source offsets.
package markup
