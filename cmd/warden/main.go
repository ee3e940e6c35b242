package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cpsec/warden/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		readmePath string
		outputPath string
		outputPDF  string
		configPath string
		execute    bool
		verbose    bool
		llmBaseURL string
		llmModel   string
		llmKey     string
	)

	flag.StringVar(&readmePath, "readme", "", "Path to the competition README (HTML)")
	flag.StringVar(&outputPath, "output", "report.md", "Path to write the Markdown hardening report")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path for a PDF copy of the report")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; explicit flags win")
	flag.BoolVar(&execute, "execute", false, "Run remediation commands instead of the default dry run")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the optional advisor")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Advisor model name (empty disables the advisor)")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the advisor endpoint")
	flag.Parse()

	cfg := app.Config{
		ReadmePath: readmePath,
		OutputPath: outputPath,
		OutputPDF:  outputPDF,
		LLMBaseURL: llmBaseURL,
		LLMModel:   llmModel,
		LLMAPIKey:  llmKey,
		Execute:    execute,
		Verbose:    verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unusable")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if verbose || cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.ReadmePath == "" {
		log.Error().Msg("missing -readme path")
		flag.Usage()
		os.Exit(2)
	}

	// A sparse parse is not a failure: the run completes with whatever the
	// README yielded. Only report I/O can make the run exit non-zero.
	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
