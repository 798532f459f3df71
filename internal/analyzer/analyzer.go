// Package analyzer implements try2check, a go/analysis pass that makes sure every
// propagation call is followed by the early return it asks for.
package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `try2check reports propagation calls that are not followed by an early return

Each call to a propagation function (solo.Try2, solo.Try2Err and solo.Unwrap by default)
must bind its early-return value and ok flag, and be followed by

	if !ok {
		return early
	}

either as the next statement or with the call in the if statement's init.`

// Analyzer checks the default targets, or the ones from the file given with -config.
var Analyzer = New(DefaultConfig())

// New returns an analyzer checking the targets of cfg.
func New(cfg Config) *analysis.Analyzer {
	c := &checker{cfg: cfg}
	a := &analysis.Analyzer{
		Name:     "try2check",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      c.run,
	}
	a.Flags.StringVar(&c.configPath, "config", "", "YAML file listing propagation functions to check")
	return a
}

type checker struct {
	cfg        Config
	configPath string

	once sync.Once
	idx  map[string]map[string]bool
	err  error
}

func (c *checker) targets() (map[string]map[string]bool, error) {
	c.once.Do(func() {
		cfg := c.cfg
		if c.configPath != "" {
			cfg, c.err = LoadConfig(c.configPath)
			if c.err != nil {
				return
			}
		}
		c.idx = cfg.index()
	})
	return c.idx, c.err
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	idx, err := c.targets()
	if err != nil {
		return nil, err
	}
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	checked := make(map[*ast.CallExpr]bool)

	blocks := []ast.Node{
		(*ast.BlockStmt)(nil),
		(*ast.CaseClause)(nil),
		(*ast.CommClause)(nil),
		(*ast.IfStmt)(nil),
	}
	pector.WithStack(blocks, func(node ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		results := enclosingResults(stack)

		var list []ast.Stmt
		switch n := node.(type) {
		case *ast.BlockStmt:
			list = n.List
		case *ast.CaseClause:
			list = n.Body
		case *ast.CommClause:
			list = n.Body
		case *ast.IfStmt:
			assign, ok := n.Init.(*ast.AssignStmt)
			if !ok {
				return true
			}
			if call, name := propagation(pass, idx, assign); call != nil {
				checked[call] = true
				checkEarlyReturn(pass, assign, call, name, n, results)
			}
			return true
		}

		for i, stmt := range list {
			assign, ok := unlabel(stmt).(*ast.AssignStmt)
			if !ok {
				continue
			}
			call, name := propagation(pass, idx, assign)
			if call == nil {
				continue
			}
			checked[call] = true
			var next *ast.IfStmt
			if i+1 < len(list) {
				next, _ = unlabel(list[i+1]).(*ast.IfStmt)
			}
			checkEarlyReturn(pass, assign, call, name, next, results)
		}
		return true
	})

	// Whatever was not seen in a statement list is used in a position that cannot return early.
	pector.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		if checked[call] {
			return
		}
		if name, ok := target(pass, idx, call); ok {
			pass.Reportf(call.Pos(), "%s result must be assigned and checked with an early return", name)
		}
	})

	return nil, nil
}

// propagation returns the target call assigned by stmt, if any.
func propagation(pass *analysis.Pass, idx map[string]map[string]bool, stmt *ast.AssignStmt) (*ast.CallExpr, string) {
	if len(stmt.Rhs) != 1 {
		return nil, ""
	}
	call, ok := ast.Unparen(stmt.Rhs[0]).(*ast.CallExpr)
	if !ok {
		return nil, ""
	}
	name, ok := target(pass, idx, call)
	if !ok {
		return nil, ""
	}
	return call, name
}

func target(pass *analysis.Pass, idx map[string]map[string]bool, call *ast.CallExpr) (string, bool) {
	fn := typeutil.StaticCallee(pass.TypesInfo, call)
	if fn == nil || fn.Pkg() == nil {
		return "", false
	}
	if !idx[fn.Pkg().Path()][fn.Name()] {
		return "", false
	}
	return fn.Pkg().Name() + "." + fn.Name(), true
}

// unlabel strips any labels from stmt.
func unlabel(stmt ast.Stmt) ast.Stmt {
	for {
		l, ok := stmt.(*ast.LabeledStmt)
		if !ok {
			return stmt
		}
		stmt = l.Stmt
	}
}

// enclosingResults returns the result list of the innermost function in stack.
func enclosingResults(stack []ast.Node) *ast.FieldList {
	for i := len(stack) - 1; i >= 0; i-- {
		switch fn := stack[i].(type) {
		case *ast.FuncDecl:
			return fn.Type.Results
		case *ast.FuncLit:
			return fn.Type.Results
		}
	}
	return nil
}

func checkEarlyReturn(pass *analysis.Pass, assign *ast.AssignStmt, call *ast.CallExpr, name string, next *ast.IfStmt, results *ast.FieldList) {
	if len(assign.Lhs) != 3 {
		pass.Reportf(call.Pos(), "%s results must be bound to value, early-return and ok variables", name)
		return
	}

	early, _ := assign.Lhs[1].(*ast.Ident)
	okFlag, _ := assign.Lhs[2].(*ast.Ident)
	if early == nil || okFlag == nil || early.Name == "_" || okFlag.Name == "_" {
		pass.Reportf(call.Pos(), "%s early-return value and ok flag must be bound to variables", name)
		return
	}

	earlyObj := pass.TypesInfo.ObjectOf(early)
	okObj := pass.TypesInfo.ObjectOf(okFlag)
	if next == nil || !negates(pass, next.Cond, okObj) || !returns(pass, next.Body, earlyObj, results) {
		pass.Reportf(call.Pos(), "%s must be followed by `if !%s { return %s }`", name, okFlag.Name, early.Name)
	}
}

// negates reports whether cond is !v for the variable obj.
func negates(pass *analysis.Pass, cond ast.Expr, obj types.Object) bool {
	not, ok := ast.Unparen(cond).(*ast.UnaryExpr)
	if !ok || not.Op != token.NOT {
		return false
	}
	id, ok := ast.Unparen(not.X).(*ast.Ident)
	return ok && obj != nil && pass.TypesInfo.ObjectOf(id) == obj
}

// returns reports whether body starts with a return mentioning obj. A bare return
// counts when obj is one of the named results.
func returns(pass *analysis.Pass, body *ast.BlockStmt, obj types.Object, results *ast.FieldList) bool {
	if obj == nil || len(body.List) == 0 {
		return false
	}
	ret, ok := body.List[0].(*ast.ReturnStmt)
	if !ok {
		return false
	}
	if len(ret.Results) == 0 {
		return namedResult(pass, results, obj)
	}

	found := false
	for _, res := range ret.Results {
		ast.Inspect(res, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok && pass.TypesInfo.ObjectOf(id) == obj {
				found = true
			}
			return !found
		})
	}
	return found
}

func namedResult(pass *analysis.Pass, results *ast.FieldList, obj types.Object) bool {
	if results == nil {
		return false
	}
	for _, field := range results.List {
		for _, id := range field.Names {
			if pass.TypesInfo.Defs[id] == obj {
				return true
			}
		}
	}
	return false
}
