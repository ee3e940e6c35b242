package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{ReadmePath: "from-flag.html"}
	fc := FileConfig{Readme: "from-file.html", Output: "report.md", Execute: true}

	ApplyFileConfig(&cfg, fc)

	if cfg.ReadmePath != "from-flag.html" {
		t.Fatalf("file config overrode an explicit flag: %+v", cfg)
	}
	if cfg.OutputPath != "report.md" {
		t.Fatalf("empty field not filled from file: %+v", cfg)
	}
	if !cfg.Execute {
		t.Fatalf("execute not applied: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warden.yaml")
	content := "readme: readme.html\noutput: out.md\nllm:\n  model: local-model\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.Readme != "readme.html" || fc.Output != "out.md" || fc.LLM.Model != "local-model" {
		t.Fatalf("unexpected file config %+v", fc)
	}
}

func TestRun_DryRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	readmePath := filepath.Join(dir, "readme.html")
	reportPath := filepath.Join(dir, "report.md")

	html := `<html><head><title>Test Image</title></head><body>
<p>Disable the Telnet service.</p>
</body></html>`
	if err := os.WriteFile(readmePath, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	a := New(Config{ReadmePath: readmePath, OutputPath: reportPath})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(out), "# Test Image") {
		t.Fatalf("unexpected report:\n%s", out)
	}
	if !strings.Contains(string(out), "Telnet") {
		t.Fatalf("expected Telnet remediation in report:\n%s", out)
	}
}

func TestRun_MissingReadmeStillWritesReport(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.md")

	a := New(Config{
		ReadmePath: filepath.Join(dir, "missing.html"),
		OutputPath: reportPath,
	})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run failed on missing readme: %v", err)
	}
	if _, err := os.Stat(reportPath); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}
