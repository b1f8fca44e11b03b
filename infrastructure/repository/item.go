package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/stmbudget/sales-planning-api/infrastructure/database/postgres"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

const (
	itemsTable = "items"

	itemColumns = `id, code, name, category_code, category_name, brand_code,
		brand_name, unit_price, cost, discount_percentage, is_active,
		created_at, updated_at`
)

type ItemRepository interface {
	GetByID(id string) (*domain.Item, error)
	GetByIDs(ids []string) ([]*domain.Item, error)
	List(onlyActive bool) ([]*domain.Item, error)
	Create(item *domain.Item) error
	Update(item *domain.Item) error
}

type itemRepository struct {
	conn *postgres.Connection
}

func NewItemRepository(conn *postgres.Connection) ItemRepository {
	return &itemRepository{
		conn: conn,
	}
}

func (r *itemRepository) GetByID(id string) (*domain.Item, error) {
	query, args, err := squirrel.
		Select(itemColumns).
		From(itemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanItem(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear item: %w", err)
	}

	return item, nil
}

func (r *itemRepository) GetByIDs(ids []string) ([]*domain.Item, error) {
	if len(ids) == 0 {
		return []*domain.Item{}, nil
	}

	query, args, err := squirrel.
		Select(itemColumns).
		From(itemsTable).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryItems(query, args...)
}

func (r *itemRepository) List(onlyActive bool) ([]*domain.Item, error) {
	builder := squirrel.
		Select(itemColumns).
		From(itemsTable)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryItems(query, args...)
}

func (r *itemRepository) Create(item *domain.Item) error {
	query, args, err := squirrel.
		Insert(itemsTable).
		Columns(
			"id", "code", "name", "category_code", "category_name",
			"brand_code", "brand_name", "unit_price", "cost",
			"discount_percentage", "is_active",
		).
		Values(
			item.ID, item.Code, item.Name, item.CategoryCode, item.CategoryName,
			item.BrandCode, item.BrandName, item.UnitPrice, item.Cost,
			item.DiscountPercentage, item.IsActive,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return translateUniqueViolation(err)
	}

	return nil
}

func (r *itemRepository) Update(item *domain.Item) error {
	query, args, err := squirrel.
		Update(itemsTable).
		Set("name", item.Name).
		Set("category_code", item.CategoryCode).
		Set("category_name", item.CategoryName).
		Set("brand_code", item.BrandCode).
		Set("brand_name", item.BrandName).
		Set("unit_price", item.UnitPrice).
		Set("cost", item.Cost).
		Set("discount_percentage", item.DiscountPercentage).
		Set("is_active", item.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return translateUniqueViolation(err)
	}

	return nil
}

func (r *itemRepository) queryItems(query string, args ...any) ([]*domain.Item, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear itens: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func scanItem(row rowScanner) (*domain.Item, error) {
	item := &domain.Item{}

	err := row.Scan(
		&item.ID,
		&item.Code,
		&item.Name,
		&item.CategoryCode,
		&item.CategoryName,
		&item.BrandCode,
		&item.BrandName,
		&item.UnitPrice,
		&item.Cost,
		&item.DiscountPercentage,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
