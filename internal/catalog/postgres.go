package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"landmark/internal/models"
)

const selectBuildings = `SELECT name, COALESCE(description, ''), latitude, longitude, altitude
FROM buildings
ORDER BY position, name`

// Querier is satisfied by *pgx.Conn and *pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres reads the buildings table in catalog order.
func LoadPostgres(ctx context.Context, db Querier) (*Catalog, error) {
	rows, err := db.Query(ctx, selectBuildings)
	if err != nil {
		return nil, fmt.Errorf("failed to query buildings: %w", err)
	}
	defer rows.Close()

	var buildings []models.Building
	for rows.Next() {
		var b models.Building
		if err := rows.Scan(&b.Name, &b.Description, &b.Coordinates.Lat, &b.Coordinates.Lon, &b.Coordinates.Alt); err != nil {
			return nil, fmt.Errorf("failed to scan building row: %w", err)
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read buildings: %w", err)
	}
	return New(buildings)
}

// Connect opens a single connection for catalog loading.
func Connect(ctx context.Context, databaseURL string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return conn, nil
}
