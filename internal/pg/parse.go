package pg

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

func parseSql(m string) (*pg_query.ParseResult, error) {
	ast, err := pg_query.Parse(m)
	if err != nil {
		return nil, fmt.Errorf(`failed to parse AST: %w`, err)
	}

	return ast, nil
}

// ValidateSelect checks that `sql` is a single read-only SELECT statement.
// Data modifying CTEs, SELECT INTO and locking clauses are rejected.
func ValidateSelect(sql string) error {
	ast, err := parseSql(sql)
	if err != nil {
		return err
	}

	stmts := ast.GetStmts()
	if len(stmts) != 1 {
		return fmt.Errorf(`expected exactly one statement but got %d`, len(stmts))
	}

	line := resolveLine(sql, int(stmts[0].GetStmtLocation()))
	if err := validateStmt(stmts[0].GetStmt()); err != nil {
		return fmt.Errorf(`statement on line %d: %w`, line, err)
	}

	return nil
}

func validateStmt(stmt *pg_query.Node) error {
	switch n := stmt.GetNode().(type) {
	case *pg_query.Node_SelectStmt:
		return validateSelectStmt(n.SelectStmt)
	}

	return fmt.Errorf(`only SELECT statements are allowed but got "%+T"`, stmt.GetNode())
}

func validateSelectStmt(stmt *pg_query.SelectStmt) error {
	if stmt == nil {
		return nil
	}

	if stmt.GetIntoClause() != nil {
		return fmt.Errorf(`SELECT INTO is not allowed`)
	}

	if len(stmt.GetLockingClause()) > 0 {
		return fmt.Errorf(`locking clauses are not allowed`)
	}

	for _, cte := range stmt.GetWithClause().GetCtes() {
		if err := validateStmt(cte.GetCommonTableExpr().GetCtequery()); err != nil {
			return fmt.Errorf(`in CTE "%s": %w`, cte.GetCommonTableExpr().GetCtename(), err)
		}
	}

	// Set operations keep their operands in larg and rarg.
	if err := validateSelectStmt(stmt.GetLarg()); err != nil {
		return err
	}

	return validateSelectStmt(stmt.GetRarg())
}
