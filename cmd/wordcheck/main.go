// Copyright 2025 The WordCheck Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcheck spelling corrector.

WordCheck loads a wordlist into a trie and corrects words typed with the wrong
vowels or with letters held down too long: "tost" becomes "test" and "tooo"
becomes "too". It runs as a MessagePack IPC server for editors, as a JSON HTTP
service, or as an interactive CLI.

# Usage

Start the msgpack server with the default dictionary:

	wordcheck

Use a specific wordlist and enable debug logging:

	wordcheck -dict /usr/share/dict/words -d

Try corrections by hand:

	wordcheck -c

Serve HTTP on port 8080:

	wordcheck -http :8080

# Dictionaries

A dictionary is either a plain wordlist with one word per line, a single
binary chunk (dict_0001.bin) or a directory of chunks. Relative paths are
looked up in the working directory, next to the executable and in the config
directory, then /usr/share/dict/words is tried. A missing dictionary is not
fatal: wordcheck starts with an empty trie and every lookup misses.

# Configuration

Runtime configuration lives in a TOML file created with defaults on first run:

	[dict]
	path = "words.txt"

	[search]
	max_steps = 0
	cache_size = 20000

	[server]
	max_query_len = 60
	min_prefix = 1
	max_limit = 64
	http_addr = ""

	[cli]
	default_limit = 10
	no_filter = false

Flags given on the command line win over the file.

# Command Line Flags

	-config string
	    Path to a config file
	-dict string
	    Wordlist file or chunk directory
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-http string
	    Serve JSON over HTTP on this address
	-limit int
	    Number of completions to show in CLI mode
	-steps int
	    Maximum search steps per lookup (0 for unlimited)
	-cache int
	    Number of results to cache (0 disables)
	-no-filter
	    Disable input filtering in CLI mode
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the packages together and picks the mode; it holds no logic of its own.
func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	dictPath := flag.String("dict", defaultConfig.Dict.Path, "Wordlist file or directory of dict_*.bin chunks")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for trying corrections by hand")
	httpAddr := flag.String("http", defaultConfig.Server.HTTPAddr, "Serve JSON over HTTP on this address instead of msgpack")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.NoFilter, "Disable input filtering in CLI mode")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of completions to show in CLI mode")
	maxSteps := flag.Int("steps", defaultConfig.Search.MaxSteps, "Maximum search steps per lookup (0 for unlimited)")
	cacheSize := flag.Int("cache", defaultConfig.Search.CacheSize, "Number of results to cache (0 disables)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))

	// explicit flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			appConfig.Dict.Path = *dictPath
		case "http":
			appConfig.Server.HTTPAddr = *httpAddr
		case "no-filter":
			appConfig.CLI.NoFilter = *noFilter
		case "limit":
			appConfig.CLI.DefaultLimit = *limit
		case "steps":
			appConfig.Search.MaxSteps = *maxSteps
		case "cache":
			appConfig.Search.CacheSize = *cacheSize
		}
	})

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolvedDict := pathResolver.GetDictPath(appConfig.Dict.Path)
	log.Debugf("Using dictionary at: %s", resolvedDict)

	t := trie.New(trie.WithStepLimit(appConfig.Search.MaxSteps))
	spell := speller.New(t, speller.WithCacheSize(appConfig.Search.CacheSize))

	stats, err := dictionary.Load(resolvedDict, spell)
	if err != nil {
		log.Warnf("Failed to load dictionary, running with an empty one: %v", err)
	} else {
		log.Debugf("Loaded %s words (%s format, %d files) in %v",
			utils.FormatWithCommas(stats.Words), stats.Format, stats.Files, stats.Duration)
	}

	switch {
	case *cliMode:
		sigHandler()
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"limit", appConfig.CLI.DefaultLimit,
			"maxLen", appConfig.Server.MaxQueryLen,
			"noFilter", appConfig.CLI.NoFilter)

		inputHandler := cli.NewInputHandler(spell, appConfig.Server.MaxQueryLen, appConfig.CLI.DefaultLimit, appConfig.CLI.NoFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	case appConfig.Server.HTTPAddr != "":
		runHTTP(spell, appConfig.Server)

	default:
		sigHandler()
		log.Debug("spawning IPC")
		srv := server.NewServer(spell, appConfig.Server)
		showStartupInfo(resolvedDict, spell)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// runHTTP serves until SIGINT or SIGTERM, then drains in-flight requests.
func runHTTP(spell *speller.Speller, limits config.ServerConfig) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTPServer(spell, limits, limits.HTTPAddr)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
	case <-ctx.Done():
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			log.Errorf("Shutdown: %v", err)
		}
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordCheck ] Fixes vowels and stuck keys")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo prints basic info about the init process to stderr.
func showStartupInfo(dictPath string, spell *speller.Speller) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" WordCheck ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s )", dictPath)
	log.Infof("words: %s", utils.FormatWithCommas(spell.Stats()["totalWords"]))
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
