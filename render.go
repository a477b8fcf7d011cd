// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/playbymail/civil/internal/markup"
	"github.com/spf13/cobra"
)

var argsRender struct {
	paths struct {
		input string
	}
	noteId int
}

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "render a markup file to its element tree",
	Long:  `Run the lexer, parser and compiler on a markup file and print the element tree as JSON.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRender.paths.input == "" {
			log.Fatalf("error: input: path is required\n")
		} else if ok, err := isfile(argsRender.paths.input); err != nil {
			log.Fatalf("error: input: %v\n", err)
		} else if !ok {
			log.Fatalf("error: input: invalid path\n")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(argsRender.paths.input)
		if err != nil {
			log.Fatalf("render: %v\n", err)
		}

		elements, err := markup.Render(string(data), argsRender.noteId)
		if err != nil {
			log.Fatalf("render: %s: %v\n", argsRender.paths.input, err)
		}

		out, err := json.MarshalIndent(elements, "", "  ")
		if err != nil {
			log.Fatalf("render: %v\n", err)
		}
		fmt.Printf("%s\n", out)
	},
}
