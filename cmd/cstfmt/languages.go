package main

import (
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"
	sitter_c_sharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

var (
	errUnrecognizedFiletype = fmt.Errorf("unrecognized file type")
	errUnsupportedLanguage  = fmt.Errorf("unsupported language")
)

// extensionMap is the file-extension-to-grammar-name registry this
// demo binary ships bindings for; every entry has a compiled binding in
// GetLanguageFromFileName. An extension missing from the map yields
// errUnrecognizedFiletype, which a directory walk treats as "skip this
// file" rather than aborting.
var extensionMap = map[string]string{
	".bash": "bash",
	".sh":   "bash",
	".cs":   "c_sharp",
	".css":  "css",
	".go":   "go",
	".html": "html",
	".java": "java",
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".py":   "python",
	".rs":   "rust",
	".ts":   "typescript",
	".tsx":  "typescript",
}

// GetLanguageFromFileName maps a file path to a compiled tree-sitter
// grammar by extension.
func GetLanguageFromFileName(path string) (*sitter.Language, string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	lang, ok := extensionMap[ext]
	if !ok {
		return nil, "", errUnrecognizedFiletype
	}

	switch lang {
	case "bash":
		return sitter.NewLanguage(sitter_bash.Language()), lang, nil
	case "c_sharp":
		return sitter.NewLanguage(sitter_c_sharp.Language()), lang, nil
	case "css":
		return sitter.NewLanguage(sitter_css.Language()), lang, nil
	case "go":
		return sitter.NewLanguage(sitter_go.Language()), lang, nil
	case "html":
		return sitter.NewLanguage(sitter_html.Language()), lang, nil
	case "java":
		return sitter.NewLanguage(sitter_java.Language()), lang, nil
	case "javascript":
		return sitter.NewLanguage(sitter_javascript.Language()), lang, nil
	case "python":
		return sitter.NewLanguage(sitter_python.Language()), lang, nil
	case "rust":
		return sitter.NewLanguage(sitter_rust.Language()), lang, nil
	case "typescript":
		return sitter.NewLanguage(sitter_typescript.LanguageTypescript()), lang, nil
	default:
		return nil, "", errUnsupportedLanguage
	}
}
