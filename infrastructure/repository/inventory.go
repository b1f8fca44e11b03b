package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/stmbudget/sales-planning-api/infrastructure/database/postgres"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

const (
	inventoryTable = "inventory_records"

	inventoryColumns = `id, item_id, location, current_stock, minimum_stock_level,
		maximum_stock_level, status, created_at, updated_at`
)

type InventoryRepository interface {
	GetByItemAndLocation(itemID, location string) (*domain.InventoryRecord, error)
	ListByItem(itemID string) ([]*domain.InventoryRecord, error)
	Upsert(record *domain.InventoryRecord) error
}

type inventoryRepository struct {
	conn *postgres.Connection
}

func NewInventoryRepository(conn *postgres.Connection) InventoryRepository {
	return &inventoryRepository{
		conn: conn,
	}
}

func (r *inventoryRepository) GetByItemAndLocation(itemID, location string) (*domain.InventoryRecord, error) {
	query, args, err := squirrel.
		Select(inventoryColumns).
		From(inventoryTable).
		Where(squirrel.Eq{"item_id": itemID, "location": location}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanInventoryRecord(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de estoque: %w", err)
	}

	return record, nil
}

func (r *inventoryRepository) ListByItem(itemID string) ([]*domain.InventoryRecord, error) {
	query, args, err := squirrel.
		Select(inventoryColumns).
		From(inventoryTable).
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("location ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.InventoryRecord, 0)
	for rows.Next() {
		record, err := scanInventoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros de estoque: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// Upsert grava o estoque de (item, localização), uma linha por par
func (r *inventoryRepository) Upsert(record *domain.InventoryRecord) error {
	query, args, err := squirrel.
		Insert(inventoryTable).
		Columns(
			"id", "item_id", "location", "current_stock",
			"minimum_stock_level", "maximum_stock_level", "status",
		).
		Values(
			record.ID, record.ItemID, record.Location, record.CurrentStock,
			record.MinimumStockLevel, record.MaximumStockLevel, record.Status,
		).
		Suffix(`ON CONFLICT (item_id, location)
			DO UPDATE SET
				current_stock = EXCLUDED.current_stock,
				minimum_stock_level = EXCLUDED.minimum_stock_level,
				maximum_stock_level = EXCLUDED.maximum_stock_level,
				status = EXCLUDED.status,
				updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanInventoryRecord(row rowScanner) (*domain.InventoryRecord, error) {
	record := &domain.InventoryRecord{}

	err := row.Scan(
		&record.ID,
		&record.ItemID,
		&record.Location,
		&record.CurrentStock,
		&record.MinimumStockLevel,
		&record.MaximumStockLevel,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
