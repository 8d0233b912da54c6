package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamusis/partner-cli/internal/config"
	"github.com/kamusis/partner-cli/internal/profile"
)

// setupHome points HOME at a temp dir and clears PARTNER_* overrides.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"PARTNER_SOURCE", "PARTNER_LOG_LEVEL", "PARTNER_SERVE_ADDR"} {
		t.Setenv(k, "")
	}
	return home
}

func TestInitWith_CreatesConfigAndSample(t *testing.T) {
	home := setupHome(t)
	var out bytes.Buffer

	if err := initWith(&out, true); err != nil {
		t.Fatalf("initWith: %v", err)
	}
	for _, name := range []string{"partner.yaml", ".env", "Data.json"} {
		if _, err := os.Stat(filepath.Join(home, ".partner", name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	// Second run must leave existing files alone.
	out.Reset()
	if err := initWith(&out, true); err != nil {
		t.Fatalf("initWith: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("expected skip lines:\n%s", out.String())
	}
}

func TestDoctorWith_Healthy(t *testing.T) {
	setupHome(t)
	if err := initWith(&bytes.Buffer{}, true); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	if err := doctorWith(context.Background(), &out, "", profile.NewStore()); err != nil {
		t.Fatalf("doctorWith: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "2 profile(s)") {
		t.Fatalf("expected profile count:\n%s", out.String())
	}
}

func TestDoctorWith_MalformedSource(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, ".partner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(src, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Source = src
	cfgPath := filepath.Join(dir, "partner.yaml")
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	if err := doctorWith(context.Background(), &out, cfgPath, profile.NewStore()); err == nil {
		t.Fatalf("expected doctor to fail:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "cannot parse") {
		t.Fatalf("expected parse failure line:\n%s", out.String())
	}
}

func TestImportWith(t *testing.T) {
	_, src := setupSearchTest(t)
	dest := filepath.Join(t.TempDir(), "people.db")
	var out bytes.Buffer
	ctx := context.Background()

	if err := importWith(ctx, &out, profile.NewStore(), src, dest); err != nil {
		t.Fatalf("importWith: %v", err)
	}
	got, err := profile.NewStore().Load(ctx, dest)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 || got[2].Name != "Carla" {
		t.Fatalf("unexpected imported profiles: %+v", got)
	}

	if err := importWith(ctx, &out, profile.NewStore(), src, filepath.Join(t.TempDir(), "x.json")); err == nil {
		t.Fatalf("expected error for non-sqlite destination")
	}
}
