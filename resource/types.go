package resource

import (
	"path/filepath"
	"strings"
)

// Kind identifies one of the files a run can produce.
type Kind uint8

const (
	KindSubpixelfied Kind = iota
	KindComparison
	KindAntialiased
)

func (k Kind) String() string {
	switch k {
	case KindSubpixelfied:
		return "Kind(Subpixelfied)"
	case KindComparison:
		return "Kind(Comparison)"
	case KindAntialiased:
		return "Kind(Antialiased)"
	}
	return "Kind(UNKNOWN)"
}

// Suffix is appended to the input's base name.
func (k Kind) Suffix() string {
	switch k {
	case KindComparison:
		return "_comparison"
	case KindAntialiased:
		return "_antialiased"
	}
	return "_subpixelfied"
}

// OutputPath derives the path of a k file from the input path: the
// suffix goes before the extension. Extensions Save cannot encode are
// replaced with .png.
func OutputPath(input string, k Kind) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == "" || !CanSave(input) {
		ext = ".png"
	}
	return base + k.Suffix() + ext
}

// SiblingPath derives a k file next to an explicitly chosen output
// path, e.g. the comparison for -o out.jpg is out_comparison.jpg.
func SiblingPath(output string, k Kind) string {
	if k == KindSubpixelfied {
		return output
	}
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + k.Suffix() + ext
}
