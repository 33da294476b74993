// Package fixtures computes which unit fixtures changed relative to a
// git baseline, so a CI run can exercise only the affected units.
package fixtures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"

	"github.com/sofmeright/extkit/src/ext"
)

// Delta detects changed files relative to a baseline.
type Delta struct {
	RootDir      string
	TargetBranch string
	Verbose      bool
}

// ChangedFiles returns the set of paths changed relative to the baseline.
// In CI it diffs against EXTKIT_TARGET_BRANCH (or auto-detects); locally
// it includes uncommitted and staged changes plus commits not on the
// target branch. Returns nil (treat everything as changed) if git is
// unavailable or no baseline exists.
func (d *Delta) ChangedFiles(ctx context.Context) (map[string]bool, error) {
	repo, err := git.PlainOpen(d.RootDir)
	if err != nil {
		if d.Verbose {
			fmt.Fprintf(os.Stderr, "delta: not a git repo, considering all fixtures changed\n")
		}
		return nil, nil
	}

	worktreeChanges, err := d.worktreeChanges(repo)
	if err != nil {
		if d.Verbose {
			fmt.Fprintf(os.Stderr, "delta: worktree diff failed: %v\n", err)
		}
		return nil, nil
	}

	branchChanges, err := d.branchChanges(ctx, repo)
	if err != nil {
		if d.Verbose {
			fmt.Fprintf(os.Stderr, "delta: branch diff failed: %v\n", err)
		}
		return nil, nil
	}

	changed := make(map[string]bool)
	for p := range worktreeChanges {
		changed[p] = true
	}
	for p := range branchChanges {
		changed[p] = true
	}
	return changed, nil
}

// worktreeChanges returns files with uncommitted modifications (staged + unstaged).
func (d *Delta) worktreeChanges(repo *git.Repository) (map[string]bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}

	status, err := wt.Status()
	if err != nil {
		return nil, err
	}

	changed := make(map[string]bool)
	for path, s := range status {
		if s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
			continue
		}
		changed[path] = true
	}
	return changed, nil
}

// branchChanges returns files changed between HEAD and the target branch.
func (d *Delta) branchChanges(ctx context.Context, repo *git.Repository) (map[string]bool, error) {
	targetBranch := d.targetBranch()
	if targetBranch == "" {
		return nil, nil
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting HEAD commit: %w", err)
	}

	targetRef, err := repo.Reference(plumbing.NewBranchReferenceName(targetBranch), true)
	if err != nil {
		targetRef, err = repo.Reference(plumbing.NewRemoteReferenceName("origin", targetBranch), true)
		if err != nil {
			return nil, nil // target branch not found — skip
		}
	}
	targetCommit, err := repo.CommitObject(targetRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting target commit: %w", err)
	}

	// Push to the target branch itself: diff HEAD against its parent so
	// the latest commit's fixtures still count as changed.
	if headCommit.Hash == targetCommit.Hash {
		if headCommit.NumParents() == 0 {
			return nil, nil
		}
		parent, err := headCommit.Parent(0)
		if err != nil {
			return nil, nil
		}
		targetCommit = parent
	}

	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, err
	}
	targetTree, err := targetCommit.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, targetTree, headTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, fmt.Errorf("diffing trees: %w", err)
	}

	changed := make(map[string]bool)
	for _, change := range changes {
		if name := changeName(change); name != "" {
			changed[name] = true
		}
	}
	return changed, nil
}

// targetBranch determines the branch to diff against.
func (d *Delta) targetBranch() string {
	if branch := os.Getenv("EXTKIT_TARGET_BRANCH"); branch != "" {
		return branch
	}
	if d.TargetBranch != "" {
		return d.TargetBranch
	}

	ciVars := []string{
		"CI_MERGE_REQUEST_TARGET_BRANCH_NAME", // GitLab CI
		"GITHUB_BASE_REF",                     // GitHub Actions
		"BITBUCKET_PR_DESTINATION_BRANCH",     // Bitbucket
		"CHANGE_TARGET",                       // Jenkins
	}
	for _, v := range ciVars {
		if branch := os.Getenv(v); branch != "" {
			return branch
		}
	}

	if branch := d.detectDefaultBranch(); branch != "" {
		return branch
	}
	return "main"
}

// detectDefaultBranch reads the symbolic ref for origin/HEAD.
func (d *Delta) detectDefaultBranch() string {
	repo, err := git.PlainOpen(d.RootDir)
	if err != nil {
		return ""
	}
	// Don't resolve (false) — we need the symbolic ref target, not the commit hash
	ref, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", "HEAD"), false)
	if err != nil {
		return ""
	}
	target := ref.Target().String()
	prefix := "refs/remotes/origin/"
	if strings.HasPrefix(target, prefix) {
		return strings.TrimPrefix(target, prefix)
	}
	return ""
}

// changeName extracts the file path from a tree change.
func changeName(change *object.Change) string {
	action, err := change.Action()
	if err != nil {
		return ""
	}
	switch action {
	case merkletrie.Insert, merkletrie.Modify:
		return change.To.Name
	case merkletrie.Delete:
		return change.From.Name
	}
	return ""
}

// AffectedUnits maps changed paths onto unit names via their manifests.
// dir is the fixtures directory relative to the repo root. A nil changed
// set means every unit with a manifest is affected.
func AffectedUnits(changed map[string]bool, set *ext.ManifestSet, dir string) []string {
	if changed == nil {
		return set.Names()
	}

	byFile := make(map[string]string, set.Len())
	for _, name := range set.Names() {
		m, _ := set.Lookup(name)
		byFile[filepath.Base(m.Path)] = name
	}

	seen := make(map[string]bool)
	for p := range changed {
		p = filepath.ToSlash(p)
		rel := strings.TrimPrefix(p, filepath.ToSlash(dir)+"/")
		if rel == p {
			continue // outside the fixtures dir
		}
		if name, ok := byFile[filepath.Base(rel)]; ok {
			seen[name] = true
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
