package walker

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/log"
)

func TestMaskMatch(t *testing.T) {
	tests := []struct {
		mask string
		name string
		want bool
	}{
		{"*.txt", "report.txt", true},
		{"*.txt", "Report.TXT", true},
		{"*.TXT", "report.txt", true},
		{"*.txt", "report.txtx", false},
		{"*.txt", "reporttxt", false},
		{"*.txt", "a.txt.bak", false},
		{"?.log", "a.log", true},
		{"?.log", "ab.log", false},
		{"data_??.csv", "data_01.csv", true},
		{"data_??.csv", "data_1.csv", false},
		{"*", "anything", true},
		{"readme", "README", true},
		{"readme", "readme.md", false},
		{"a+b(1).txt", "a+b(1).txt", true},
		{"a+b(1).txt", "aab1.txt", false},
		{"[x].txt", "x.txt", false},
		{"", "whatever.bin", true},
	}

	for _, tt := range tests {
		t.Run(tt.mask+"/"+tt.name, func(t *testing.T) {
			m, err := CompileMask(tt.mask)
			if err != nil {
				t.Fatalf("CompileMask(%q): %v", tt.mask, err)
			}
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.mask, tt.name, got, tt.want)
			}
		})
	}
}

func TestMaskEmpty(t *testing.T) {
	var nilMask *Mask
	if !nilMask.Empty() || !nilMask.Match("x") {
		t.Error("nil mask should be empty and match everything")
	}
	if nilMask.String() != "" {
		t.Error("nil mask should render as empty string")
	}

	m, _ := CompileMask("")
	if !m.Empty() {
		t.Error("empty glob should produce an empty mask")
	}

	m, _ = CompileMask("*.log")
	if m.Empty() {
		t.Error("non-empty glob should not be empty")
	}
	if m.String() != "*.log" {
		t.Errorf("String() = %q, want original glob", m.String())
	}
}

// writeTree creates files (relative paths) under root with fixed content.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("content of "+f), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// relSorted converts walk output to sorted slash paths relative to root.
func relSorted(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			t.Errorf("path %q is not absolute", p)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWalkFolderWithMask(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.log", "b.txt", "sub/c.log", "sub/deeper/D.LOG", "sub/e.logx")

	mask, err := CompileMask("*.log")
	if err != nil {
		t.Fatal(err)
	}

	got := relSorted(t, root, Walk(root, mask, ModeFolder))
	want := []string{"a.log", "sub/c.log", "sub/deeper/D.LOG"}
	if !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkDirectoriesNeverFiltered(t *testing.T) {
	root := t.TempDir()
	// Directory names do not match the mask, files inside them do.
	writeTree(t, root, "notes/x.md", "archive.d/old/y.md", "z.txt")

	mask, _ := CompileMask("*.md")
	got := relSorted(t, root, Walk(root, mask, ModeFolder))
	want := []string{"archive.d/old/y.md", "notes/x.md"}
	if !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkEmptyMaskMatchesAll(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a", "b.bin", "c/d.txt")

	got := relSorted(t, root, Walk(root, nil, ModeFolder))
	want := []string{"a", "b.bin", "c/d.txt"}
	if !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkSingleFileIgnoresMask(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "only.bin")
	target := filepath.Join(root, "only.bin")

	mask, _ := CompileMask("*.txt")
	got := Walk(target, mask, ModeSingleFile)
	if len(got) != 1 || got[0] != target {
		t.Errorf("Walk() = %v, want [%s]", got, target)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	if got := Walk(missing, nil, ModeFolder); len(got) != 0 {
		t.Errorf("missing root in folder mode: got %v", got)
	}
	if got := Walk(missing, nil, ModeSingleFile); len(got) != 0 {
		t.Errorf("missing root in single file mode: got %v", got)
	}
	if got := Walk("", nil, ModeFolder); len(got) != 0 {
		t.Errorf("empty root: got %v", got)
	}
}

func TestWalkFolderModeOnFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "plain.txt")

	var buf bytes.Buffer
	log.SetLogger(log.NewSimpleLogger(&buf, log.LevelDebug))
	defer log.SetLogger(nil)

	if got := Walk(filepath.Join(root, "plain.txt"), nil, ModeFolder); len(got) != 0 {
		t.Errorf("folder mode on a regular file should list nothing, got %v", got)
	}
	if !strings.Contains(buf.String(), "Skipping unreadable directory") || !strings.Contains(buf.String(), "directory unreadable") {
		t.Errorf("the warning should carry the error kind, log:\n%s", buf.String())
	}
}

func TestDirError(t *testing.T) {
	cause := os.ErrPermission
	err := dirError("/data/locked", cause)

	if !errors.Is(err, errors.ErrDirectoryUnreadable) || !errors.Is(err, cause) {
		t.Errorf("dirError() = %v, want ErrDirectoryUnreadable wrapping the cause", err)
	}
	if errors.IsFatal(err) {
		t.Error("an unreadable directory must not abort a run")
	}
	var fe *errors.FileError
	if !errors.As(err, &fe) || fe.Op != "list" || fe.Path != "/data/locked" {
		t.Errorf("dirError() = %v, want a list FileError", err)
	}
}

func TestWalkSkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root can read any directory")
	}

	root := t.TempDir()
	writeTree(t, root, "ok.txt", "locked/hidden.txt", "open/visible.txt")

	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	got := relSorted(t, root, Walk(root, nil, ModeFolder))
	want := []string{"ok.txt", "open/visible.txt"}
	if !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}

	root := t.TempDir()
	writeTree(t, root, "real/file.txt")

	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "loop")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "real", "file.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling.txt")); err != nil {
		t.Fatal(err)
	}

	got := relSorted(t, root, Walk(root, nil, ModeFolder))
	want := []string{"link.txt", "real/file.txt"}
	if !equalStrings(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestModeString(t *testing.T) {
	if ModeSingleFile.String() != "file" || ModeFolder.String() != "folder" || Mode(7).String() != "unknown" {
		t.Error("unexpected Mode.String() values")
	}
}
