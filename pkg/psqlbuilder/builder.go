// Package psqlbuilder exposes squirrel statement builders preconfigured for
// PostgreSQL dollar placeholders.
package psqlbuilder

import sq "github.com/Masterminds/squirrel"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Select starts a SELECT statement with $N placeholders.
func Select(columns ...string) sq.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT statement with $N placeholders.
func Insert(into string) sq.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE statement with $N placeholders.
func Update(table string) sq.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE statement with $N placeholders.
func Delete(from string) sq.DeleteBuilder {
	return builder.Delete(from)
}
