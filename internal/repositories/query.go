package repositories

import (
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
)

var (
	// ErrConcurrentModification is returned when a versioned update matched no row.
	ErrConcurrentModification = errors.New("concurrent modification detected")
	// ErrAlreadyExists is returned when an insert hit a uniqueness constraint.
	ErrAlreadyExists = errors.New("record already exists")
)

// logQuery logs a statement in a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
