// Package main generates the property reference for the input controls.
// It parses the textinput package sources and emits one markdown table
// per control listing every configuration setter and its documentation.
package main

import (
	"fmt"
	"go/ast"
	"go/doc"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
)

// Controls to document, in order.
var controls = []string{
	"TailoredTextInput",
	"TailoredTextInputLayout",
	"BottomLine",
	"TextEditingController",
}

func main() {
	root, err := findRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding repo root: %v\n", err)
		os.Exit(1)
	}

	modulePath, err := readModulePath(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading go.mod: %v\n", err)
		os.Exit(1)
	}

	methods, err := collectMethods(filepath.Join(root, "pkg", "textinput"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sources: %v\n", err)
		os.Exit(1)
	}

	content := renderMarkdown(modulePath, methods)

	outDir := filepath.Join(root, "docs")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating docs directory: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "properties.md")
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", outPath)
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func readModulePath(root string) (string, error) {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	file, err := modfile.Parse(path, data, nil)
	if err != nil {
		return "", err
	}
	if file.Module == nil {
		return "", fmt.Errorf("%s has no module directive", path)
	}
	return file.Module.Mod.Path, nil
}

// method is one documented configuration method on a control.
type method struct {
	Receiver string
	Name     string
	Doc      string
}

// collectMethods parses the package directory and returns the exported
// setter methods of the documented controls.
func collectMethods(dir string) ([]method, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(info os.FileInfo) bool {
		return !strings.HasSuffix(info.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	documented := make(map[string]bool, len(controls))
	for _, name := range controls {
		documented[name] = true
	}

	var methods []method
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Recv == nil || !fn.Name.IsExported() {
					continue
				}
				if !strings.HasPrefix(fn.Name.Name, "Set") {
					continue
				}
				recv := receiverType(fn)
				if !documented[recv] {
					continue
				}
				methods = append(methods, method{
					Receiver: recv,
					Name:     fn.Name.Name,
					Doc:      doc.Synopsis(fn.Doc.Text()),
				})
			}
		}
	}

	sort.Slice(methods, func(i, j int) bool {
		if methods[i].Receiver != methods[j].Receiver {
			return methods[i].Receiver < methods[j].Receiver
		}
		return methods[i].Name < methods[j].Name
	})
	return methods, nil
}

func receiverType(fn *ast.FuncDecl) string {
	if len(fn.Recv.List) == 0 {
		return ""
	}
	expr := fn.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func renderMarkdown(modulePath string, methods []method) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Property Reference\n\n")
	fmt.Fprintf(&b, "Configuration setters of `%s/pkg/textinput`.\n", modulePath)
	fmt.Fprintf(&b, "Generated by `go run ./cmd/docgen`; do not edit by hand.\n")

	for _, control := range controls {
		var rows []method
		for _, m := range methods {
			if m.Receiver == control {
				rows = append(rows, m)
			}
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", control)
		fmt.Fprintf(&b, "| Setter | Description |\n|---|---|\n")
		for _, m := range rows {
			fmt.Fprintf(&b, "| `%s` | %s |\n", m.Name, escapeCell(m.Doc))
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
