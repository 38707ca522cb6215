package syntax

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Registry maps language names and file extensions to grammars.
type Registry struct {
	langs map[string]func() *sitter.Language
	exts  map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		langs: make(map[string]func() *sitter.Language),
		exts:  make(map[string]string),
	}
}

// DefaultRegistry creates a registry holding the bundled grammars.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("bash", bash.GetLanguage, ".sh", ".bash")
	r.Register("c", c.GetLanguage, ".c", ".h")
	r.Register("cpp", cpp.GetLanguage, ".cc", ".cpp", ".cxx", ".hpp", ".hh")
	r.Register("css", css.GetLanguage, ".css")
	r.Register("go", golang.GetLanguage, ".go")
	r.Register("html", html.GetLanguage, ".html", ".htm")
	r.Register("javascript", javascript.GetLanguage, ".js", ".mjs", ".cjs", ".jsx")
	r.Register("lua", lua.GetLanguage, ".lua")
	r.Register("python", python.GetLanguage, ".py", ".pyi")
	r.Register("rust", rust.GetLanguage, ".rs")
	r.Register("typescript", typescript.GetLanguage, ".ts", ".mts")
	return r
}

// Register adds a grammar under name and maps each extension to it.
// Extensions are matched case-insensitively, with or without the dot.
func (r *Registry) Register(name string, lang func() *sitter.Language, exts ...string) {
	r.langs[name] = lang
	for _, ext := range exts {
		r.exts[normalizeExt(ext)] = name
	}
}

// Alias maps an extension to an already registered language.
func (r *Registry) Alias(ext, name string) error {
	if _, ok := r.langs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
	}
	r.exts[normalizeExt(ext)] = name
	return nil
}

// Language returns the grammar registered under name.
func (r *Registry) Language(name string) (*sitter.Language, error) {
	lang, ok := r.langs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
	}
	return lang(), nil
}

// Detect returns the language name for path, by extension.
func (r *Registry) Detect(path string) (string, error) {
	ext := normalizeExt(filepath.Ext(path))
	name, ok := r.exts[ext]
	if !ok || ext == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, filepath.Base(path))
	}
	return name, nil
}

// Names returns the registered language names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.langs))
	for name := range r.langs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
