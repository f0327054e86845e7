// Package yieldcheck defines an Analyzer that reports calls to Yield that do
// not run on the goroutine of a generator procedure.
package yieldcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `check that generator yielders stay on their procedure's goroutine

A *gen.Yielder may only be used by the goroutine running the procedure it was
given to, while that procedure is being stepped. This checker reports:

  - calls to Yield made from a function started with a go statement,
  - calls to Yield made from a deferred function, which panic when the
    generator is closed while suspended,
  - yielders passed as arguments to a go statement.`

const genPath = "github.com/stealthrocket/gen"

var Analyzer = &analysis.Analyzer{
	Name:     "yieldcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

type site int

const (
	procedure site = iota
	goroutine
	deferred
)

func run(pass *analysis.Pass) (any, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	filter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.GoStmt)(nil),
	}

	ins.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		switch n := n.(type) {
		case *ast.GoStmt:
			for _, arg := range n.Call.Args {
				if isYielder(pass.TypesInfo.TypeOf(arg)) {
					pass.Reportf(arg.Pos(), "yielder passed to a new goroutine")
				}
			}
		case *ast.CallExpr:
			if !isYieldCall(pass, n) {
				return true
			}
			switch enclosing(pass, stack) {
			case goroutine:
				pass.Reportf(n.Pos(), "Yield called from a new goroutine")
			case deferred:
				pass.Reportf(n.Pos(), "Yield called from a deferred call; it panics when the generator is closed")
			}
		}
		return true
	})

	return nil, nil
}

// enclosing walks up from the call at the top of the stack and returns the
// site the call executes in. Arguments of go and defer statements are
// evaluated by the current goroutine, so only calls reached through the
// statement's function run elsewhere.
func enclosing(pass *analysis.Pass, stack []ast.Node) site {
	for i := len(stack) - 2; i >= 0; i-- {
		var call *ast.CallExpr
		var where site

		switch s := stack[i].(type) {
		case *ast.FuncDecl:
			return procedure
		case *ast.FuncLit:
			if isProcedure(pass, s.Type) {
				return procedure
			}
			continue
		case *ast.GoStmt:
			call, where = s.Call, goroutine
		case *ast.DeferStmt:
			call, where = s.Call, deferred
		default:
			continue
		}

		if i+2 < len(stack) && stack[i+2] != call.Fun {
			return procedure
		}
		return where
	}
	return procedure
}

func isYieldCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := astutil.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return false
	}
	selection, ok := pass.TypesInfo.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return false
	}
	return selection.Obj().Name() == "Yield" && isYielder(selection.Recv())
}

func isProcedure(pass *analysis.Pass, fn *ast.FuncType) bool {
	if fn.Params == nil {
		return false
	}
	for _, field := range fn.Params.List {
		if isYielder(pass.TypesInfo.TypeOf(field.Type)) {
			return true
		}
	}
	return false
}

func isYielder(t types.Type) bool {
	if t == nil {
		return false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Origin().Obj()
	return obj.Name() == "Yielder" && obj.Pkg() != nil && obj.Pkg().Path() == genPath
}
