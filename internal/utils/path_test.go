package utils_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/utils"
)

func TestExtensionFromPath(t *testing.T) {
	cases := []struct {
		path string
		want utils.Extension
	}{
		{"foo.ts", utils.ExtTs},
		{"foo.d.ts", utils.ExtDts},
		{"foo.tsx", utils.ExtTsx},
		{"foo.js", utils.ExtJs},
		{"foo.d.mts", utils.ExtDmts},
		{"foo.txt", utils.ExtNone},
	}
	for _, c := range cases {
		if got := utils.ExtensionFromPath(c.path); got != c.want {
			t.Errorf("ExtensionFromPath(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestExtensionClassificationPredicates(t *testing.T) {
	if !utils.ExtTs.IsTypeScript() || utils.ExtJs.IsTypeScript() {
		t.Fatalf("IsTypeScript misclassified")
	}
	if !utils.ExtDts.IsDeclaration() || utils.ExtTs.IsDeclaration() {
		t.Fatalf("IsDeclaration misclassified")
	}
	if !utils.ExtJs.IsJavaScript() || utils.ExtTs.IsJavaScript() {
		t.Fatalf("IsJavaScript misclassified")
	}
}

func TestNormalizePath(t *testing.T) {
	if got := utils.NormalizePath(`a\b\c`); got != "a/b/c" {
		t.Fatalf("NormalizePath backslash = %q", got)
	}
	if got := utils.NormalizePath("a/b/c"); got != "a/b/c" {
		t.Fatalf("NormalizePath forward-slash = %q", got)
	}
}

func TestGetDirectoryPath(t *testing.T) {
	if got := utils.GetDirectoryPath("/a/b/c.ts"); got != "/a/b/" {
		t.Fatalf("GetDirectoryPath = %q", got)
	}
	if got := utils.GetDirectoryPath("file.ts"); got != "" {
		t.Fatalf("GetDirectoryPath with no dir = %q", got)
	}
}

func TestRemoveFileExtension(t *testing.T) {
	cases := []struct{ path, want string }{
		{"foo.ts", "foo"},
		{"foo.d.ts", "foo"},
		{"foo.d.mts", "foo"},
		{"foo/bar.js", "foo/bar"},
	}
	for _, c := range cases {
		if got := utils.RemoveFileExtension(c.path); got != c.want {
			t.Errorf("RemoveFileExtension(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestIsRooted(t *testing.T) {
	if !utils.IsRooted("/usr/bin") {
		t.Fatalf("expected unix root")
	}
	if !utils.IsRooted("C:/Users") {
		t.Fatalf("expected windows drive root")
	}
	if utils.IsRooted("relative/path") {
		t.Fatalf("expected relative path to not be rooted")
	}
	if utils.IsRooted("") {
		t.Fatalf("expected empty path to not be rooted")
	}
}

func TestCombinePaths(t *testing.T) {
	cases := []struct{ base, relative, want string }{
		{"/a/b", "c.ts", "/a/b/c.ts"},
		{"/a/b/", "c.ts", "/a/b/c.ts"},
		{"", "c.ts", "c.ts"},
		{"/a", "/b/c.ts", "/b/c.ts"},
	}
	for _, c := range cases {
		if got := utils.CombinePaths(c.base, c.relative); got != c.want {
			t.Errorf("CombinePaths(%q, %q) = %q, want %q", c.base, c.relative, got, c.want)
		}
	}
}
