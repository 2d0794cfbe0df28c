package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/racketclub/club-system/models"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx so repository methods
// can take part in a caller-owned transaction.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

func playersToArray(players []models.PlayerID) pq.Int64Array {
	arr := make(pq.Int64Array, len(players))
	for i, p := range players {
		arr[i] = int64(p)
	}
	return arr
}

func playersFromArray(arr pq.Int64Array) []models.PlayerID {
	players := make([]models.PlayerID, len(arr))
	for i, v := range arr {
		players[i] = models.PlayerID(v)
	}
	return players
}
