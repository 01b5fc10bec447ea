package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nSIGNAL_LAB_TEST_A=from-file\nSIGNAL_LAB_TEST_B=\"quoted\"\nmalformed line\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SIGNAL_LAB_TEST_A", "from-env")
	t.Setenv("SIGNAL_LAB_TEST_B", "")

	LoadEnvFile(path)

	if got := os.Getenv("SIGNAL_LAB_TEST_A"); got != "from-env" {
		t.Errorf("existing variable overridden: %q", got)
	}
	if got := os.Getenv("SIGNAL_LAB_TEST_B"); got != "quoted" {
		t.Errorf("expected quoted value unwrapped, got %q", got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	LoadEnvFile(filepath.Join(t.TempDir(), "absent"))
}

func TestSplitList(t *testing.T) {
	got := SplitList(" 1H, 4H,,1D ")
	want := []string{"1H", "4H", "1D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if SplitList("") != nil {
		t.Error("expected nil for empty input")
	}
}
