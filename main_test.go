package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clawdbotatg/ogcard/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvConfigFile, config.EnvOutDir, config.EnvFont,
		config.EnvQRCode, config.EnvFramebuffer, envStdioLog,
	} {
		t.Setenv(key, "")
	}
}

func TestRunPrintsConfirmation(t *testing.T) {
	clearEnv(t)
	out := t.TempDir()
	missingFont := filepath.Join(t.TempDir(), "Helvetica.ttc")

	var stdout bytes.Buffer
	if code := run([]string{"-out", out, "-font", missingFont}, &stdout); code != 0 {
		t.Fatalf("exit code = %d, want 0; output:\n%s", code, stdout.String())
	}
	if got, want := stdout.String(), "✅ OG image generated: thumbnail.png + thumbnail.jpg\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	for _, name := range []string{"thumbnail.png", "thumbnail.jpg"} {
		info, err := os.Stat(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRunMissingOutDir(t *testing.T) {
	clearEnv(t)
	out := filepath.Join(t.TempDir(), "missing")

	var stdout bytes.Buffer
	if code := run([]string{"-out", out, "-font", filepath.Join(t.TempDir(), "none.ttf")}, &stdout); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stdout.String(), "generate error: ") {
		t.Errorf("stdout = %q, want generate error", stdout.String())
	}
	if strings.Contains(stdout.String(), "✅") {
		t.Error("confirmation printed on failure")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output dir should not exist, stat err = %v", err)
	}
}

func TestRunConfigErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvQRCode, "maybe")

	var stdout bytes.Buffer
	if code := run([]string{"-out", t.TempDir()}, &stdout); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.HasPrefix(stdout.String(), "config error: ") {
		t.Errorf("stdout = %q", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"-no-such-flag"}, &stdout); code != 2 {
		t.Errorf("unknown flag exit code = %d, want 2", code)
	}
}
