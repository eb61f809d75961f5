/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package assert

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sync"

	"golang.org/x/tools/go/ast/inspector"
)

type sourceFile struct {
	fset      *token.FileSet
	content   []byte
	inspector *inspector.Inspector
}

var (
	sourcesMutex sync.Mutex
	// Parsed files. A nil entry marks a file that couldn't be parsed.
	sources = map[string]*sourceFile{}
)

func loadSource(path string) *sourceFile {
	sourcesMutex.Lock()
	defer sourcesMutex.Unlock()

	if s, present := sources[path]; present {
		return s
	}

	var ans *sourceFile
	content, err := os.ReadFile(path)
	if err == nil {
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, path, content, parser.SkipObjectResolution)
		if err == nil {
			ans = &sourceFile{
				fset:      fset,
				content:   content,
				inspector: inspector.New([]*ast.File{f}),
			}
		}
	}

	sources[path] = ans
	return ans
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		// Explicit instantiation: assert.Equal[int](...)
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	}
	return ""
}

// callArguments returns the source text of the two arguments of the
// call to fname covering the given line of path. When more than one
// call could be the caller, found is false: the reported line alone
// can't tell which one failed.
func callArguments(path string, line int, fname string) (string, string, bool) {
	src := loadSource(path)
	if src == nil {
		return "", "", false
	}

	covering := []*ast.CallExpr{}
	src.inspector.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		c := n.(*ast.CallExpr)
		if len(c.Args) != 2 || calleeName(c.Fun) != fname {
			return
		}
		start := src.fset.Position(c.Pos()).Line
		end := src.fset.Position(c.End()).Line
		if line >= start && line <= end {
			covering = append(covering, c)
		}
	})

	call := covering
	if len(call) > 1 {
		// A multi-line call wrapping a single-line one: the latter is
		// on the reported line.
		call = []*ast.CallExpr{}
		for _, c := range covering {
			if src.fset.Position(c.Pos()).Line == line &&
				src.fset.Position(c.End()).Line == line {
				call = append(call, c)
			}
		}
	}
	if len(call) != 1 {
		return "", "", false
	}

	return src.text(call[0].Args[0]), src.text(call[0].Args[1]), true
}

func (s *sourceFile) text(n ast.Node) string {
	tf := s.fset.File(n.Pos())
	return string(s.content[tf.Offset(n.Pos()):tf.Offset(n.End())])
}
