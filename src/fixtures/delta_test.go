package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/sofmeright/extkit/src/ext"
)

func manifestSet(t *testing.T) *ext.ManifestSet {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"plat.toml": "name = \"plat\"\nkind = \"platform\"\n",
		"pure.toml": "name = \"pure\"\nkind = \"pure\"\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	set, err := ext.LoadManifestDir(dir)
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	return set
}

func TestAffectedUnits(t *testing.T) {
	set := manifestSet(t)

	cases := []struct {
		name    string
		changed map[string]bool
		want    []string
	}{
		{"nil means all", nil, []string{"plat", "pure"}},
		{"one manifest", map[string]bool{"fixtures/plat.toml": true}, []string{"plat"}},
		{"outside fixtures dir", map[string]bool{"src/ext/host.go": true}, []string{}},
		{"unknown manifest", map[string]bool{"fixtures/other.toml": true}, []string{}},
		{"both", map[string]bool{"fixtures/plat.toml": true, "fixtures/pure.toml": true}, []string{"plat", "pure"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AffectedUnits(tc.changed, set, "fixtures")
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChangedFilesOutsideRepo(t *testing.T) {
	d := &Delta{RootDir: t.TempDir()}

	changed, err := d.ChangedFiles(context.Background())
	if err != nil {
		t.Fatalf("changed files: %v", err)
	}
	if changed != nil {
		t.Fatalf("want nil set outside a repo, got %v", changed)
	}
}

func TestChangedFilesWorktree(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	path := filepath.Join(dir, "fixtures", "plat.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("name = \"plat\"\nkind = \"platform\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := wt.Add("fixtures/plat.toml"); err != nil {
		t.Fatalf("add: %v", err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}
	if _, err := wt.Commit("add plat fixture", &git.CommitOptions{Author: sig}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// Modify without committing: the worktree diff must pick it up.
	if err := os.WriteFile(path, []byte("name = \"plat\"\nkind = \"platform\"\nversion = \"1.0.1\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	t.Setenv("EXTKIT_TARGET_BRANCH", "master")
	d := &Delta{RootDir: dir}

	changed, err := d.ChangedFiles(context.Background())
	if err != nil {
		t.Fatalf("changed files: %v", err)
	}
	if !changed["fixtures/plat.toml"] {
		t.Fatalf("modified fixture not detected: %v", changed)
	}
}
