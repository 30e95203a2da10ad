package utils

import "strings"

// NormalizePath converts backslashes to forward slashes, matching
// TypeScript's own normalizePath so a path built on any platform
// compares consistently across the front end.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// IsRooted reports whether path is an absolute path: a Unix root, a
// Windows drive-letter root, or a UNC path.
func IsRooted(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' {
		return true
	}
	if len(path) >= 3 && isAsciiAlpha(path[0]) && path[1] == ':' && (path[2] == '/' || path[2] == '\\') {
		return true
	}
	if len(path) >= 2 && path[0] == '/' && path[1] == '/' {
		return true
	}
	return false
}

func isAsciiAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// EnsureTrailingSeparator appends a trailing "/" unless path already
// ends in a directory separator.
func EnsureTrailingSeparator(path string) string {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return path
	}
	return path + "/"
}

// RemoveTrailingSeparator strips one trailing directory separator,
// leaving a lone root ("/") untouched.
func RemoveTrailingSeparator(path string) string {
	if len(path) > 1 && (strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\")) {
		return path[:len(path)-1]
	}
	return path
}

// CombinePaths joins base and relative the way TypeScript's
// combinePaths does: an already-rooted relative wins outright, an
// empty base returns relative unchanged, otherwise base gets a
// trailing separator before relative is appended.
func CombinePaths(base, relative string) string {
	if IsRooted(relative) {
		return relative
	}
	if base == "" {
		return relative
	}
	return EnsureTrailingSeparator(base) + relative
}

// GetDirectoryPath returns everything up to and including the last
// "/" in path, or "" if path has no directory component.
func GetDirectoryPath(path string) string {
	normalized := NormalizePath(path)
	if i := strings.LastIndex(normalized, "/"); i != -1 {
		return normalized[:i+1]
	}
	return ""
}

// GetBaseName returns the file name component of path.
func GetBaseName(path string) string {
	if i := strings.LastIndexAny(path, "/\\"); i != -1 {
		return path[i+1:]
	}
	return path
}

// RemoveFileExtension strips a recognized extension from path,
// handling the compound declaration suffixes before falling back to a
// plain last-dot split.
func RemoveFileExtension(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".d.ts"):
		return path[:len(path)-5]
	case strings.HasSuffix(lower, ".d.mts"), strings.HasSuffix(lower, ".d.cts"):
		return path[:len(path)-6]
	}
	dot := strings.LastIndex(path, ".")
	slash := strings.LastIndexAny(path, "/\\")
	if dot > slash {
		return path[:dot]
	}
	return path
}

// ChangeExtension replaces path's extension with newExt (including its
// leading dot).
func ChangeExtension(path, newExt string) string {
	return RemoveFileExtension(path) + newExt
}
