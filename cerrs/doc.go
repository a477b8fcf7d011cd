// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes common error messages used throughout the application for
// domain-specific failures such as markup that will not tokenize or parse,
// missing decks and notes, and store-level faults. The Error type supports
// comparison via errors.Is().
package cerrs
