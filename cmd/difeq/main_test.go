package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-difeq/eqxml"
	"github.com/cwbudde/algo-difeq/internal/testutil"
)

type cliTestEnv struct {
	configPath string
	src        string
	ref        string
	mono       string
	outDir     string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "difeq.toml")
	body := "[analysis]\nfft_size = 1024\nhop_size = 512\n\n[runtime]\nlog_level = \"error\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	left := testutil.DeterministicNoise(11, 0.2, 8192)
	right := testutil.DeterministicNoise(12, 0.2, 8192)

	return &cliTestEnv{
		configPath: configPath,
		src:        testutil.WriteWAV(t, "src.wav", 44100, left, right),
		ref:        testutil.WriteWAV(t, "ref.wav", 44100, testutil.Scaled(left, 2), testutil.Scaled(right, 2)),
		mono:       testutil.WriteWAV(t, "mono.wav", 44100, left),
		outDir:     t.TempDir(),
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// requireContains matches case-insensitively; table renderers may change
// header case.
func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(strings.ToLower(haystack), strings.ToLower(needle)) {
		t.Fatalf("expected %q in output:\n%s", needle, haystack)
	}
}

func TestMatchExportsCurves(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.outDir, "match.xml")

	out, stderr, err := runCLI(t, []string{
		"match", "--pair", env.src + "=" + env.ref,
		"--smooth", "5", "--resolution", "100", "--out", base,
	}, env.configPath)
	if err != nil {
		t.Fatalf("match: %v\n%s", err, stderr)
	}

	requireContains(t, out, "Pair,Status,Notes")
	requireContains(t, out, "src.wav (L+R) -> ref.wav (L+R),ok")
	requireContains(t, stderr, "Aggregate: 1 pairs")

	for _, p := range eqxml.TriplePaths(base) {
		requireContains(t, out, "Wrote "+p)
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s: %v", p, err)
		}
	}
}

func TestMatchReportsFallbackAndFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"match", "--channels", "R",
		"--pair", env.mono + "=" + env.ref,
		"--pair", filepath.Join(env.outDir, "missing.wav") + "=" + env.ref,
	}, env.configPath)
	if err == nil {
		t.Fatal("expected error for the missing file")
	}
	requireContains(t, err.Error(), "1 of 2 pairs failed")
	requireContains(t, out, "using channel 0 for both slots")
	requireContains(t, out, "failed")
}

func TestMatchRejectsBadInput(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := [][]string{
		{"match"},
		{"match", "--pair", "only-one-side.wav"},
		{"match", "--pair", env.src + "=" + env.ref, "--channels", "mid"},
		{"match", "--pair", env.src + "=" + env.ref, "--resolution", "0"},
		{"match", "--pair", env.src + "=" + env.ref, "--rolloff-start", "9000", "--rolloff-end", "8000"},
	}
	for _, args := range tests {
		if _, _, err := runCLI(t, args, env.configPath); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestShowPrintsCSVWhenNotATerminal(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"show", "--pair", env.src + "=" + env.ref, "--resolution", "50"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.EqualFold(lines[0], "Hz,L dB,R dB,Mean dB") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if len(lines) < 40 {
		t.Fatalf("expected about 50 rows, got %d", len(lines)-1)
	}

	out, _, err = runCLI(t, []string{"show", "--raw", "--pair", env.src + "=" + env.ref}, env.configPath)
	if err != nil {
		t.Fatalf("show --raw: %v", err)
	}
	requireContains(t, out, "Pair,Hz,dB")
}

func TestInspectExportedCurve(t *testing.T) {
	env := setupCLITestEnv(t)
	base := filepath.Join(env.outDir, "eq.xml")

	if _, _, err := runCLI(t, []string{"match", "--pair", env.src + "=" + env.ref, "--out", base}, env.configPath); err != nil {
		t.Fatalf("match: %v", err)
	}

	out, _, err := runCLI(t, []string{"inspect", eqxml.TriplePaths(base)[1]}, "")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.EqualFold(lines[0], "Hz,dB") || len(lines) < 2 {
		t.Fatalf("unexpected inspect output:\n%s", out)
	}

	if _, _, err := runCLI(t, []string{"inspect", filepath.Join(env.outDir, "nope.xml")}, ""); err == nil {
		t.Fatal("expected error for missing curve file")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "init"}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "[analysis]")
	requireContains(t, out, "fft_size = 16384")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init --path: %v", err)
	}
	requireContains(t, out, "Wrote default configuration")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when the file exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	if _, _, err := runCLI(t, []string{"config", "validate", "--log-level", "loud"}, env.configPath); err == nil {
		t.Fatal("expected error for an invalid log level")
	}
}
