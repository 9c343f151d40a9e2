package db

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolationPgx(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsUniqueViolation(dup, ""))
	assert.True(t, IsUniqueViolation(dup, "users_email_key"))
	assert.False(t, IsUniqueViolation(dup, "carts_user_id_key"))

	wrapped := fmt.Errorf("create user: %w", dup)
	assert.True(t, IsUniqueViolation(wrapped, "users_email_key"))

	notNull := &pgconn.PgError{Code: "23502"}
	assert.False(t, IsUniqueViolation(notNull, ""))
}

func TestIsUniqueViolationPq(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	assert.True(t, IsUniqueViolation(dup, ""))
	assert.True(t, IsUniqueViolation(dup, "users_email_key"))
	assert.False(t, IsUniqueViolation(dup, "other_key"))
}

func TestIsUniqueViolationStringFallback(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("ERROR: duplicate key value violates unique constraint \"users_email_key\""), ""))
	assert.True(t, IsUniqueViolation(fmt.Errorf("UNIQUE constraint failed: users.email"), "users_email_key"))
	assert.False(t, IsUniqueViolation(fmt.Errorf("connection refused"), "users_email_key"))
	assert.False(t, IsUniqueViolation(nil, ""))
}
