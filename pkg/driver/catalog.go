// Package driver is the demonstration layer around the core evaluator: a
// catalog of ready-made programs, a harness that runs them with a fixed
// default budget, and YAML scenario files describing expected outcomes.
package driver

import (
	"fmt"
	"sort"

	"imp/interpreter-go/pkg/ast"
)

// Program pairs a catalog name with a ready-to-run command.
type Program struct {
	Name        string
	Description string
	Command     ast.Command
}

var catalog = map[string]Program{
	"branch-on-x": {
		Name:        "branch-on-x",
		Description: "sets X to 2, then assigns Y or Z depending on X <= 1",
		Command: ast.Seq(
			ast.Asgn("X", ast.Num(2)),
			ast.If(
				ast.Le(ast.Var("X"), ast.Num(1)),
				ast.Asgn("Y", ast.Num(3)),
				ast.Asgn("Z", ast.Num(4)),
			),
		),
	},
	"sum-to-x": {
		Name:        "sum-to-x",
		Description: "accumulates 1+2+...+X into Y, counting X down to zero",
		Command: ast.While(
			ast.Neq(ast.Var("X"), ast.Num(0)),
			ast.Seq(
				ast.Asgn("Y", ast.Add(ast.Var("Y"), ast.Var("X"))),
				ast.Asgn("X", ast.Sub(ast.Var("X"), ast.Num(1))),
			),
		),
	},
	"countdown": {
		Name:        "countdown",
		Description: "decrements X to zero",
		Command: ast.While(
			ast.Gt(ast.Var("X"), ast.Num(0)),
			ast.Asgn("X", ast.Sub(ast.Var("X"), ast.Num(1))),
		),
	},
	"loop-forever": {
		Name:        "loop-forever",
		Description: "diverges; every budget is insufficient",
		Command:     ast.While(ast.Bool(true), ast.Nop()),
	},
}

// Catalog returns the demo programs in name order.
func Catalog() []Program {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	programs := make([]Program, 0, len(names))
	for _, name := range names {
		programs = append(programs, catalog[name])
	}
	return programs
}

// Lookup resolves a catalog program by name.
func Lookup(name string) (Program, error) {
	p, ok := catalog[name]
	if !ok {
		return Program{}, fmt.Errorf("unknown program %q", name)
	}
	return p, nil
}
