package pathkit_test

import (
	"testing"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path string
		want pathkit.PathInfo
	}{
		{
			"/a/b/c.tar.gz",
			pathkit.PathInfo{Directory: "/a/b", Basename: "c.tar.gz", Extension: "gz", Stem: "c.tar"},
		},
		{
			"noext",
			pathkit.PathInfo{Directory: "", Basename: "noext", Extension: "", Stem: "noext"},
		},
		{
			"file.txt",
			pathkit.PathInfo{Directory: "", Basename: "file.txt", Extension: "txt", Stem: "file"},
		},
		{
			"relative/path/file.txt",
			pathkit.PathInfo{Directory: "relative/path", Basename: "file.txt", Extension: "txt", Stem: "file"},
		},
		{
			"/etc",
			pathkit.PathInfo{Directory: "/", Basename: "etc", Extension: "", Stem: "etc"},
		},
		{
			"/",
			pathkit.PathInfo{Directory: "/", Basename: "", Extension: "", Stem: ""},
		},
		{
			"",
			pathkit.PathInfo{Directory: "", Basename: "", Extension: "", Stem: ""},
		},
		{
			"a/b/",
			pathkit.PathInfo{Directory: "a/b", Basename: "", Extension: "", Stem: ""},
		},
		{
			".bashrc",
			pathkit.PathInfo{Directory: "", Basename: ".bashrc", Extension: "bashrc", Stem: ""},
		},
		{
			"archive.",
			pathkit.PathInfo{Directory: "", Basename: "archive.", Extension: "", Stem: "archive"},
		},
		{
			"dir.with.dots/name",
			pathkit.PathInfo{Directory: "dir.with.dots", Basename: "name", Extension: "", Stem: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pathkit.ParsePath(tt.path); got != tt.want {
				t.Errorf("ParsePath(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/c.tar.gz", "gz"},
		{"noext", ""},
		{"file.txt", "txt"},
		{".bashrc", "bashrc"},
		{"archive.", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := pathkit.Extension(tt.path); got != tt.want {
				t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExtension_MatchesParsePath(t *testing.T) {
	paths := []string{
		"/a/b/c.tar.gz", "noext", "file.txt", ".bashrc", "archive.",
		"", "/", "a/b/", "dir.with.dots/name", "x.y.z",
	}

	for _, path := range paths {
		if got, want := pathkit.Extension(path), pathkit.ParsePath(path).Extension; got != want {
			t.Errorf("Extension(%q) = %q but ParsePath().Extension = %q", path, got, want)
		}
	}
}
