// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package main implements the civil application
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/playbymail/civil/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 9,
		Patch: 2,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
)

func main() {
	// if version is on the command line, show it and exit
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "civil.json"
	// set the debug flag only if there is a configuration file to debug
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		log.Fatal(err)
	}
}

func Execute(cfg *config.Config) error {
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")

	cmdRoot.AddCommand(cmdDb)
	cmdDb.AddCommand(cmdDbCreate)
	cmdDbCreate.Flags().BoolVar(&argsDb.create.force, "force", false, "force the creation if the database exists")
	cmdDbCreate.Flags().StringVar(&argsDb.paths.store, "store", argsDb.paths.store, "path to the database file")
	if err := cmdDbCreate.MarkFlagRequired("store"); err != nil {
		log.Fatalf("store: %v\n", err)
	}

	cmdRoot.AddCommand(cmdRender)
	cmdRender.Flags().StringVar(&argsRender.paths.input, "input", "", "path to the markup file")
	if err := cmdRender.MarkFlagRequired("input"); err != nil {
		log.Fatalf("input: %v\n", err)
	}
	cmdRender.Flags().IntVar(&argsRender.noteId, "note-id", 1, "note id mixed into generated element ids")

	cmdRoot.AddCommand(cmdServe)
	cmdServe.Flags().StringVar(&argsServe.paths.store, "store", argsServe.paths.store, "path to the database file")
	if err := cmdServe.MarkFlagRequired("store"); err != nil {
		log.Fatalf("store: %v\n", err)
	}
	cmdServe.Flags().StringVar(&argsServe.server.host, "host", "", "host to bind the server to")
	cmdServe.Flags().StringVar(&argsServe.server.port, "port", "", "port to listen on")

	cmdRoot.AddCommand(cmdUser)
	cmdUser.AddCommand(cmdUserCreate)
	cmdUserCreate.Flags().StringVar(&argsUser.paths.store, "store", argsUser.paths.store, "path to the database file")
	if err := cmdUserCreate.MarkFlagRequired("store"); err != nil {
		log.Fatalf("store: %v\n", err)
	}
	cmdUserCreate.Flags().StringVar(&argsUser.create.email, "email", "", "email address for the new user")
	if err := cmdUserCreate.MarkFlagRequired("email"); err != nil {
		log.Fatalf("email: %v\n", err)
	}
	cmdUserCreate.Flags().StringVar(&argsUser.create.password, "password", "", "password for the new user")
	if err := cmdUserCreate.MarkFlagRequired("password"); err != nil {
		log.Fatalf("password: %v\n", err)
	}

	cmdRoot.AddCommand(cmdVersion)

	globalConfig = cfg
	if globalConfig == nil {
		globalConfig = config.Default()
	}

	return cmdRoot.Execute()
}

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion bool
}

var cmdRoot = &cobra.Command{
	Use:   "civil",
	Short: "Root command for our application",
	Long:  `Civil is a personal knowledge manager built on a custom note markup.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.name != "" {
			if fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644); err != nil {
				return err
			} else {
				argsRoot.logFile.fd = fd
			}
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", version)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := log.Output(2, "log file closed"); err != nil {
				return err
			} else if err = argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("Hello from root command\n")
	},
}

func isfile(path string) (bool, error) {
	sb, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	} else if sb.IsDir() || !sb.Mode().IsRegular() {
		return false, nil
	}
	return true, nil
}
