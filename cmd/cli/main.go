package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/autocomplete/internal/autocomplete"
	"github.com/kumarlokesh/autocomplete/internal/config"
	"github.com/kumarlokesh/autocomplete/internal/logging"
)

var demoWords = []string{"app", "apple", "apply", "application", "ask", "best", "bet"}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	help := flag.Bool("help", false, "Show help message")
	version := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	if *version {
		showVersion()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	args := flag.Args()
	subcommand := args[0]
	subcommandArgs := args[1:]
	switch subcommand {
	case "config":
		handleConfigCommand(cfg)
	case "demo":
		handleDemoCommand(logger)
	case "suggest":
		handleSuggestCommand(cfg, logger, subcommandArgs)
	case "search":
		handleSearchCommand(cfg, logger, subcommandArgs)
	default:
		logger.Error().Str("command", subcommand).Msg("Unknown command")
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	helpText := `Autocomplete CLI

Usage:
  autocomplete [flags] <command> [arguments]

Flags:
  --config string   Path to config file
  --help            Show this help message
  --version         Show version information

Commands:
  config            Show current configuration
  demo              Index a sample vocabulary and complete "ap"
  suggest <prefix>  List indexed words starting with prefix
  search <word>     Check whether word is indexed
`
	fmt.Print(helpText)
}

func showVersion() {
	fmt.Println("Autocomplete v0.1.0")
}

func handleConfigCommand(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Printf("Server: %s\n", cfg.Server.Addr())
	if cfg.Vocabulary.Path != "" {
		fmt.Printf("Vocabulary file: %s\n", cfg.Vocabulary.Path)
	} else {
		fmt.Println("Vocabulary file: [not set]")
	}
	fmt.Printf("Inline words: %d\n", len(cfg.Vocabulary.Words))
	fmt.Printf("Sorted suggestions: %t\n", cfg.Suggest.Sorted)
	fmt.Printf("Max results: %d\n", cfg.Suggest.MaxResults)
	fmt.Printf("Log level: %s\n", cfg.Log.Level)
}

func handleDemoCommand(logger zerolog.Logger) {
	svc := autocomplete.New(autocomplete.WithLogger(logger), autocomplete.WithSorted(true))
	svc.Add(demoWords...)

	fmt.Printf("Indexed: %s\n", strings.Join(demoWords, ", "))
	fmt.Printf("Suggestions for %q: %v\n", "ap", svc.Suggest("ap"))
}

func handleSuggestCommand(cfg *config.Config, logger zerolog.Logger, args []string) {
	if len(args) == 0 {
		logger.Fatal().Msg("Please provide a prefix")
	}

	svc := loadService(cfg, logger)
	for _, word := range svc.Suggest(args[0]) {
		fmt.Println(word)
	}
}

func handleSearchCommand(cfg *config.Config, logger zerolog.Logger, args []string) {
	if len(args) == 0 {
		logger.Fatal().Msg("Please provide a word")
	}

	svc := loadService(cfg, logger)
	if svc.Contains(args[0]) {
		fmt.Printf("%q found\n", args[0])
		return
	}
	fmt.Printf("%q not found\n", args[0])
	os.Exit(1)
}

func loadService(cfg *config.Config, logger zerolog.Logger) *autocomplete.Service {
	svc := autocomplete.New(
		autocomplete.WithLogger(logger),
		autocomplete.WithSorted(cfg.Suggest.Sorted),
		autocomplete.WithMaxResults(cfg.Suggest.MaxResults),
	)

	if cfg.Vocabulary.Path != "" {
		if _, err := svc.LoadFile(context.Background(), cfg.Vocabulary.Path); err != nil {
			logger.Fatal().Err(err).Msg("Failed to load vocabulary")
		}
	}
	svc.Add(cfg.Vocabulary.Words...)

	if svc.Len() == 0 {
		logger.Warn().Msg("Vocabulary is empty; set vocabulary.path or vocabulary.words")
	}
	return svc
}
