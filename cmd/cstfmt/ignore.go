package main

import (
	"path/filepath"
	"strings"
)

// defaultIgnorePatterns are skipped during a directory walk regardless
// of what a .cstfmtignore file says.
var defaultIgnorePatterns = map[string]bool{
	".git/":         true,
	".cstfmtignore": true,
	"go.sum":        true,
	"node_modules/": true,
	"dist/":         true,
	".venv/":        true,
	"venv/":         true,
}

func matchIgnorePattern(value string, patterns map[string]bool) bool {
	value = filepath.ToSlash(value)
	for pattern, ignore := range patterns {
		if ignore && matchPattern(value, pattern) {
			return true
		}
	}
	return false
}

// matchPattern is a small gitignore-flavored glob, kept alongside the
// go-gitignore-backed .cstfmtignore support in walk.go because
// defaultIgnorePatterns above is meant to be cheap to evaluate on
// every walked path without compiling a pattern set first.
func matchPattern(value, pattern string) bool {
	value = filepath.ToSlash(value)
	pattern = filepath.ToSlash(pattern)

	if strings.HasPrefix(pattern, "**/") {
		pattern = strings.TrimPrefix(pattern, "**/")
		parts := strings.Split(value, "/")
		for i := range parts {
			if matchPattern(strings.Join(parts[i:], "/"), pattern) {
				return true
			}
		}
		return false
	}

	if strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")
		return value == pattern || strings.HasPrefix(value, pattern+"/")
	}

	if strings.Contains(pattern, "**") {
		segments := strings.SplitN(pattern, "**", 2)
		prefix, suffix := segments[0], segments[1]
		if !strings.HasPrefix(value, prefix) {
			return false
		}
		remainder := value[len(prefix):]
		return strings.HasSuffix(remainder, suffix)
	}

	if !strings.Contains(pattern, "/") && strings.Contains(pattern, "*") {
		return matchBasename(value, pattern)
	}

	matched, err := filepath.Match(pattern, value)
	return err == nil && matched
}

func matchBasename(value, pattern string) bool {
	for _, part := range strings.Split(value, "/") {
		if matched, err := filepath.Match(pattern, part); err == nil && matched {
			return true
		}
	}
	return false
}
