package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yakiooo/desk-pet/internal/entity"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("GIF89a"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResolveAllPresent(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "default.gif", "click.gif", "left_typing.gif", "right_typing.gif")

	set, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, id := range entity.Clips {
		want := filepath.Join(set.Dir, Files[id])
		if set.Paths[id] != want {
			t.Errorf("%s: path = %q, want %q", id, set.Paths[id], want)
		}
	}
}

func TestResolveReportsMissingPath(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "default.gif", "click.gif", "right_typing.gif")

	_, err := Resolve(dir)
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing", err)
	}
	if !strings.Contains(err.Error(), "left_typing.gif") {
		t.Errorf("error should name the missing file: %v", err)
	}
}

func TestResolveRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "click.gif", "left_typing.gif", "right_typing.gif")
	if err := os.Mkdir(filepath.Join(dir, "default.gif"), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(dir); !errors.Is(err, ErrMissing) {
		t.Errorf("err = %v, want ErrMissing", err)
	}
}

func TestBaseDirPrefersConfigured(t *testing.T) {
	if got := BaseDir("/opt/pet"); got != "/opt/pet" {
		t.Errorf("BaseDir = %q, want /opt/pet", got)
	}
}

func TestBaseDirFallsBackToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// 测试二进制所在的临时目录里没有 default.gif
	if got := BaseDir(""); got != wd {
		t.Errorf("BaseDir = %q, want %q", got, wd)
	}
}
