// Package app wires the extraction engine, the task layer, the report
// renderer, and the optional advisor into one hardening run.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cpsec/warden/internal/advise"
	"github.com/cpsec/warden/internal/readme"
	"github.com/cpsec/warden/internal/report"
	"github.com/cpsec/warden/internal/tasks"
)

const advisorTimeout = 30 * time.Second

type App struct {
	cfg     Config
	runner  tasks.Runner
	advisor *advise.Advisor
}

func New(cfg Config) *App {
	a := &App{cfg: cfg}
	if cfg.Execute {
		a.runner = tasks.ExecRunner{}
	} else {
		a.runner = &tasks.DryRunner{}
	}
	a.advisor = advise.New(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	return a
}

// Run parses the README, plans and runs remediation, and writes the report.
// The parse itself cannot fail; a sparse or missing README degrades to an
// empty policy and an almost-empty report.
func (a *App) Run(ctx context.Context) error {
	doc := readme.Parse(a.cfg.ReadmePath)
	log.Info().
		Int("administrators", len(doc.Administrators)).
		Int("users", len(doc.Users)).
		Int("required_software", len(doc.RequiredSoftware)).
		Int("critical_services", len(doc.CriticalServices)).
		Int("prohibited_services", len(doc.ProhibitedServices)).
		Int("actionable_items", len(doc.ActionableItems)).
		Msg("readme parsed")

	cmds := tasks.Plan(doc)
	if !a.cfg.Execute {
		log.Info().Int("commands", len(cmds)).Msg("dry run; no commands will be executed")
	}
	results := tasks.Execute(ctx, a.runner, cmds)
	for _, res := range results {
		if res.Err != nil {
			log.Warn().Err(res.Err).Str("command", res.Command.String()).Msg("command failed; continuing")
		}
	}

	var suggestions []string
	if a.advisor != nil && len(doc.UnmatchedParagraphs) > 0 {
		actx, cancel := context.WithTimeout(ctx, advisorTimeout)
		defer cancel()
		got, err := a.advisor.Suggest(actx, doc.UnmatchedParagraphs)
		if err != nil {
			log.Warn().Err(err).Msg("advisor failed; continuing without suggestions")
		} else {
			suggestions = got
		}
	}

	out := report.Render(doc, results, suggestions)
	if err := os.WriteFile(a.cfg.OutputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote report")

	if a.cfg.OutputPDF != "" {
		if err := report.WritePDF(out, a.cfg.OutputPDF); err != nil {
			log.Warn().Err(err).Str("out", a.cfg.OutputPDF).Msg("pdf render failed; markdown report still written")
		} else {
			log.Info().Str("out", a.cfg.OutputPDF).Msg("wrote pdf report")
		}
	}
	return nil
}
