package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/subpair/subpair/internal/align"
	"github.com/subpair/subpair/internal/config"
	"github.com/subpair/subpair/internal/logging"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		pathA string
		pathB string
		want  string
	}{
		{
			name:  "same directory",
			pathA: "movie.ko.srt",
			pathB: "movie.ja.srt",
			want:  "movie.ko.movie.ja.pdf",
		},
		{
			name:  "output lands next to the first input",
			pathA: filepath.Join("subs", "a.srt"),
			pathB: filepath.Join("other", "b.srt"),
			want:  filepath.Join("subs", "a.b.pdf"),
		},
		{
			name:  "no extension",
			pathA: "a",
			pathB: "b",
			want:  "a.b.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultOutputPath(tt.pathA, tt.pathB); got != tt.want {
				t.Errorf(
					"defaultOutputPath(%q, %q) = %q, want %q",
					tt.pathA, tt.pathB, got, tt.want,
				)
			}
		})
	}
}

func TestLoadAndAlign(t *testing.T) {
	logger = logging.NewLogger(false)
	tmpDir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
		return path
	}

	valid := write("valid.srt", "1\n00:00:01,000 --> 00:00:02,000\nHello.\n")
	junkA := write("junk_a.srt", "no timing lines in here\n")
	junkB := write("junk_b.srt", "nothing usable here either\n")

	t.Run("both tracks empty aborts before rendering", func(t *testing.T) {
		if _, err := loadAndAlign(
			junkA, junkB, "ko", "ja", align.DefaultThreshold,
		); err == nil {
			t.Errorf("expected error when neither file has usable entries")
		}
	})

	t.Run("one empty track still yields rows", func(t *testing.T) {
		rows, err := loadAndAlign(
			valid, junkB, "ko", "ja", align.DefaultThreshold,
		)
		if err != nil {
			t.Fatalf("loadAndAlign failed: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].TextA != "Hello." || rows[0].TextB != "" {
			t.Errorf(
				"row = (%q, %q), want (Hello., \"\")",
				rows[0].TextA, rows[0].TextB,
			)
		}
	})

	t.Run("unreadable file aborts", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "does-not-exist.srt")
		if _, err := loadAndAlign(
			missing, valid, "ko", "ja", align.DefaultThreshold,
		); err == nil {
			t.Errorf("expected error for missing input file")
		}
	})
}

func TestResolveThreshold(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().Duration("threshold", align.DefaultThreshold, "")
		return cmd
	}

	cfg := config.Default()
	cfg.ThresholdMS = 700

	t.Run("config value applies when flag unset", func(t *testing.T) {
		got, err := resolveThreshold(newCmd(), cfg)
		if err != nil {
			t.Fatalf("resolveThreshold failed: %v", err)
		}
		if got != 700*time.Millisecond {
			t.Errorf("threshold = %v, want 700ms", got)
		}
	})

	t.Run("flag wins over config", func(t *testing.T) {
		cmd := newCmd()
		if err := cmd.Flags().Set("threshold", "250ms"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		got, err := resolveThreshold(cmd, cfg)
		if err != nil {
			t.Fatalf("resolveThreshold failed: %v", err)
		}
		if got != 250*time.Millisecond {
			t.Errorf("threshold = %v, want 250ms", got)
		}
	})

	t.Run("negative flag rejected", func(t *testing.T) {
		cmd := newCmd()
		if err := cmd.Flags().Set("threshold", "-1ms"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		if _, err := resolveThreshold(cmd, cfg); err == nil {
			t.Errorf("expected error for negative threshold")
		}
	})
}

func TestResolveFont(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "NanumGothic.ttf")
	if err := os.WriteFile(existing, []byte("stub"), 0644); err != nil {
		t.Fatalf("failed to write font stub: %v", err)
	}
	missing := filepath.Join(tmpDir, "missing.ttf")

	cfg := config.Default()
	cfg.Fonts = map[string][]config.Font{
		"ko": {
			{Name: "Missing", File: missing},
			{Name: "NanumGothic", File: existing},
		},
		"ja": {
			{Name: "Missing", File: missing},
		},
	}

	t.Run("first existing candidate wins", func(t *testing.T) {
		col, err := resolveFont(cfg, "korean", "")
		if err != nil {
			t.Fatalf("resolveFont failed: %v", err)
		}
		if col.FontName != "NanumGothic" || col.FontFile != existing {
			t.Errorf("column = %+v", col)
		}
	})

	t.Run("override file wins over config", func(t *testing.T) {
		col, err := resolveFont(cfg, "ko", existing)
		if err != nil {
			t.Fatalf("resolveFont failed: %v", err)
		}
		if col.FontName != "NanumGothic" || col.FontFile != existing {
			t.Errorf("column = %+v", col)
		}
	})

	t.Run("missing override fails", func(t *testing.T) {
		if _, err := resolveFont(cfg, "ko", missing); err == nil {
			t.Errorf("expected error for missing override file")
		}
	})

	t.Run("unconfigured language fails", func(t *testing.T) {
		if _, err := resolveFont(cfg, "fr", ""); err == nil {
			t.Errorf("expected error for unconfigured language")
		}
	})

	t.Run("no existing candidate fails", func(t *testing.T) {
		if _, err := resolveFont(cfg, "ja", ""); err == nil {
			t.Errorf("expected error when no candidate file exists")
		}
	})
}
