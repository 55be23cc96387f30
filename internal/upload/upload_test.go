package upload

import "testing"

func TestSafeExt(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"dinner.jpg":            ".jpg",
		"DINNER.JPG":            ".jpg",
		"soup.jpeg":             ".jpeg",
		"cake.png":              ".png",
		"stew.webp":             ".webp",
		"script.sh":             "",
		"noext":                 "",
		"../../etc/passwd":      "",
		"../../evil.png":        ".png", // extension survives, path does not
		"weird.name.tar.gz":     "",
		"photo.png.exe":         "",
		"trailingdot.":          "",
		"shout.GIF":             ".gif",
		"/abs/path/lunch.jpeg":  ".jpeg",
		"..\\win\\style.png":    ".png",
	}
	for in, want := range cases {
		if got := SafeExt(in); got != want {
			t.Errorf("SafeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
