package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/stmbudget/sales-planning-api/infrastructure/database/postgres"
	"github.com/stmbudget/sales-planning-api/internal/domain"
)

const (
	customersTable = "customers"

	customerColumns = `id, code, name, status, category, email, phone, address,
		credit_limit, payment_terms, salesperson_id, total_sales_ytd,
		last_order_date, is_active, created_at, updated_at`
)

type CustomerRepository interface {
	GetByID(id string) (*domain.Customer, error)
	List(onlyActive bool, salespersonID *int) ([]*domain.Customer, error)
	Create(customer *domain.Customer) error
	Update(customer *domain.Customer) error
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) GetByID(id string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select(customerColumns).
		From(customersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	customer, err := scanCustomer(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) List(onlyActive bool, salespersonID *int) ([]*domain.Customer, error) {
	builder := squirrel.
		Select(customerColumns).
		From(customersTable)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	if salespersonID != nil {
		builder = builder.Where(squirrel.Eq{"salesperson_id": *salespersonID})
	}

	query, args, err := builder.
		OrderBy("name ASC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear clientes: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) Create(customer *domain.Customer) error {
	query, args, err := squirrel.
		Insert(customersTable).
		Columns(
			"id", "code", "name", "status", "category", "email", "phone",
			"address", "credit_limit", "payment_terms", "salesperson_id",
			"total_sales_ytd", "is_active",
		).
		Values(
			customer.ID, customer.Code, customer.Name, customer.Status,
			customer.Category, customer.Email, customer.Phone, customer.Address,
			customer.CreditLimit, customer.PaymentTerms, customer.SalespersonID,
			customer.TotalSalesYTD, customer.IsActive,
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

func (r *customerRepository) Update(customer *domain.Customer) error {
	query, args, err := squirrel.
		Update(customersTable).
		Set("name", customer.Name).
		Set("status", customer.Status).
		Set("category", customer.Category).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("address", customer.Address).
		Set("credit_limit", customer.CreditLimit).
		Set("payment_terms", customer.PaymentTerms).
		Set("salesperson_id", customer.SalespersonID).
		Set("is_active", customer.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
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

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	customer := &domain.Customer{}
	var lastOrderDate pq.NullTime

	err := row.Scan(
		&customer.ID,
		&customer.Code,
		&customer.Name,
		&customer.Status,
		&customer.Category,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.CreditLimit,
		&customer.PaymentTerms,
		&customer.SalespersonID,
		&customer.TotalSalesYTD,
		&lastOrderDate,
		&customer.IsActive,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastOrderDate.Valid {
		customer.LastOrderDate = &lastOrderDate.Time
	}

	return customer, nil
}
