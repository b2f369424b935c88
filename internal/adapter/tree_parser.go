package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// TreeParser turns a source file into a structural tree.
type TreeParser interface {
	// Parse builds the tree for path. src holds the file contents.
	Parse(ctx context.Context, path m.Path, src []byte) (*m.Tree, error)
}

// GoTreeAdapter provides a TreeParser backed by go/parser. Go AST nodes are
// labelled with the structural vocabulary the miner understands (infix,
// prefix and postfix expressions, method declarations).
type GoTreeAdapter struct{}

// NewGoTreeAdapter constructs a GoTreeAdapter.
func NewGoTreeAdapter() *GoTreeAdapter {
	return &GoTreeAdapter{}
}

// Parse builds the arena tree for a Go source file.
func (a *GoTreeAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*m.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, string(path), src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	tree := m.NewTree(path)
	stack := make([]int, 0, 32)

	ast.Inspect(file, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		switch n.(type) {
		case *ast.CommentGroup, *ast.Comment:
			return false
		}

		parent := m.NoParent
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}

		nodeType, value, name := describeNode(n)
		id := tree.Add(parent, m.MakeLabel(nodeType, value), value, offsetOf(fset, n.Pos()))
		tree.Nodes[id].Name = name

		stack = append(stack, id)

		return true
	})

	return tree, nil
}

func offsetOf(fset *token.FileSet, pos token.Pos) int {
	if !pos.IsValid() {
		return 0
	}

	return fset.Position(pos).Offset
}

// describeNode returns the type tag, value and declared name of n.
//
//nolint:cyclop // one case per AST shape
func describeNode(n ast.Node) (string, string, string) {
	switch node := n.(type) {
	case *ast.File:
		return "CompilationUnit", node.Name.Name, ""
	case *ast.FuncDecl:
		return m.TypeMethodDeclaration, node.Name.Name, node.Name.Name
	case *ast.BinaryExpr:
		return m.TypeInfixExpression, node.Op.String(), ""
	case *ast.UnaryExpr:
		return m.TypePrefixExpression, node.Op.String(), ""
	case *ast.IncDecStmt:
		return m.TypePostfixExpression, node.Tok.String(), ""
	case *ast.AssignStmt:
		return "Assignment", node.Tok.String(), ""
	case *ast.Ident:
		return "SimpleName", node.Name, ""
	case *ast.BasicLit:
		return literalType(node.Kind), node.Value, ""
	case *ast.BranchStmt:
		return "BranchStatement", node.Tok.String(), ""
	case *ast.IfStmt:
		return "IfStatement", "", ""
	case *ast.ForStmt:
		return "ForStatement", "", ""
	case *ast.RangeStmt:
		return "EnhancedForStatement", "", ""
	case *ast.ReturnStmt:
		return "ReturnStatement", "", ""
	case *ast.ExprStmt:
		return "ExpressionStatement", "", ""
	case *ast.BlockStmt:
		return "Block", "", ""
	case *ast.CallExpr:
		return "MethodInvocation", "", ""
	case *ast.SelectorExpr:
		return "FieldAccess", node.Sel.Name, ""
	case *ast.ParenExpr:
		return "ParenthesizedExpression", "", ""
	case *ast.SwitchStmt, *ast.TypeSwitchStmt:
		return "SwitchStatement", "", ""
	case *ast.CaseClause:
		return "SwitchCase", "", ""
	case *ast.DeclStmt:
		return "VariableDeclarationStatement", "", ""
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."), "", ""
}

func literalType(kind token.Token) string {
	switch kind {
	case token.STRING:
		return "StringLiteral"
	case token.CHAR:
		return "CharacterLiteral"
	default:
		return "NumberLiteral"
	}
}

// CachingTreeParser memoizes another parser by path and content hash. Trees
// are never mutated after parsing, so cached trees are shared freely.
type CachingTreeParser struct {
	next  TreeParser
	cache *lru.Cache[string, *m.Tree]
}

// NewCachingTreeParser wraps next with an LRU cache holding size trees.
func NewCachingTreeParser(next TreeParser, size int) (*CachingTreeParser, error) {
	cache, err := lru.New[string, *m.Tree](size)
	if err != nil {
		return nil, fmt.Errorf("create tree cache: %w", err)
	}

	return &CachingTreeParser{next: next, cache: cache}, nil
}

// Parse returns the cached tree for path and src, parsing on a miss.
func (c *CachingTreeParser) Parse(ctx context.Context, path m.Path, src []byte) (*m.Tree, error) {
	sum := sha256.Sum256(src)
	key := string(path) + "@" + hex.EncodeToString(sum[:])

	if tree, ok := c.cache.Get(key); ok {
		return tree, nil
	}

	tree, err := c.next.Parse(ctx, path, src)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, tree)

	return tree, nil
}

// Len returns the number of cached trees.
func (c *CachingTreeParser) Len() int {
	return c.cache.Len()
}
