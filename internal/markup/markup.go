// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package markup

// Render runs the full pipeline on a source string: tokenize, parse,
// then compile to the element tree for the given note.
func Render(source string, noteID int) ([]*Element, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}

	_, nodes, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	return CompileToStruct(nodes, noteID)
}
