package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrProductNotFound is returned when a product id has no catalog entry.
	ErrProductNotFound = errors.New("product not found")

	// ErrClientNotFound is returned when a client id has no record.
	ErrClientNotFound = errors.New("client not found")

	// ErrSaleNotFound is returned when a sale id has no record.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrUserNotFound is returned when a username has no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatedValueUnique is returned when a write would violate a
	// unique constraint (product name, username).
	ErrDuplicatedValueUnique = errors.New("duplicated value in unique field")

	// ErrInsufficientStock is returned when a sale commit asks for more
	// units than the persisted stock holds at commit time.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyCart is returned when a sale commit carries no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidQuantity is returned when a cart line quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrCodeExhausted is returned when product code generation keeps
	// colliding with existing codes.
	ErrCodeExhausted = errors.New("could not allocate a unique product code")
)

// uniqueViolation reports whether err is a postgres unique-constraint
// violation, and if so which constraint was hit.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}
