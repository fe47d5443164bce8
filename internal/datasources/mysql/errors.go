package mysql

import (
	"context"
	"database/sql"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const (
	errDuplicateEntry   = 1062
	errNoReferencedRow  = 1452
	errLockDeadlock     = 1213
	maxDeadlockAttempts = 3

	// ER_REGEXP_RULE_SYNTAX through ER_REGEXP_INVALID_RANGE.
	errRegexpSyntaxFirst = 3688
	errRegexpSyntaxLast  = 3697
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func hasErrorNumber(err error, number uint16) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}

func isDuplicateKey(err error) bool {
	return hasErrorNumber(err, errDuplicateEntry)
}

// isMissingReference reports a foreign key pointing at a row that does not exist.
func isMissingReference(err error) bool {
	return hasErrorNumber(err, errNoReferencedRow)
}

// isRegexpSyntax reports a REGEXP_LIKE pattern ICU could not compile.
func isRegexpSyntax(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) &&
		mysqlErr.Number >= errRegexpSyntaxFirst && mysqlErr.Number <= errRegexpSyntaxLast
}

func isDeadlock(err error) bool {
	return hasErrorNumber(err, errLockDeadlock)
}
