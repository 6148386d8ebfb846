package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory-tracker/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE 23503
const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// updateBuilder collects "column = $n" assignments for the keys a patch carries.
type updateBuilder struct {
	sets []string
	args []any
}

func setField[T any](b *updateBuilder, column string, field model.Optional[T]) {
	if !field.Set {
		return
	}
	// A nil pointer is written as NULL
	b.args = append(b.args, field.Value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

type stdTime interface {
	Std() time.Time
}

// setTimeField unwraps Timestamp/Date so pgx sees a plain time.Time.
func setTimeField[T stdTime](b *updateBuilder, column string, field model.Optional[T]) {
	if !field.Set {
		return
	}
	var v *time.Time
	if field.Value != nil {
		t := (*field.Value).Std()
		v = &t
	}
	setField(b, column, model.Optional[time.Time]{Set: true, Value: v})
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// build returns the UPDATE statement, with the row id as the final argument.
func (b *updateBuilder) build(table string, id int64, returning string) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), len(args), returning)
	return query, args
}

func dateOrNil(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	return &model.Date{Time: *t}
}

func timeOrNil(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Std()
	return &t
}
