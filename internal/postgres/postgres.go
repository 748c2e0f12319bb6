package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ushnuel/next-dashboard/internal/domain"
	"github.com/ushnuel/next-dashboard/pkg/logger"
)

type Postgres struct {
	DB *sql.DB
}

func New(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) Close() error {
	return p.DB.Close()
}

func (p *Postgres) CreateInvoice(invoice domain.Invoice) error {
	_, err := p.DB.Exec(
		"INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5)",
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			logger.Log.Warn("unknown customer", logger.String("customer_id", invoice.CustomerID))
			return fmt.Errorf("error creating invoice: %w", domain.ErrCustomerNotFound)
		}
		return fmt.Errorf("error creating invoice: %w", err)
	}

	return nil
}

func (p *Postgres) UpdateInvoice(id, customerID string, amount int64, status domain.InvoiceStatus) error {
	// date is deliberately not in the SET list: it records creation time only.
	_, err := p.DB.Exec(
		"UPDATE invoices SET customer_id = $1, amount = $2, status = $3 WHERE id = $4",
		customerID, amount, string(status), id,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			logger.Log.Warn("unknown customer", logger.String("customer_id", customerID))
			return fmt.Errorf("error updating invoice: %w", domain.ErrCustomerNotFound)
		}
		return fmt.Errorf("error updating invoice: %w", err)
	}

	return nil
}

func (p *Postgres) DeleteInvoice(id string) error {
	// a missing row deletes zero rows and is not an error
	_, err := p.DB.Exec("DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting invoice: %w", err)
	}

	return nil
}

func (p *Postgres) Invoices() ([]domain.Invoice, error) {
	rows, err := p.DB.Query("SELECT id, customer_id, amount, status, date FROM invoices ORDER BY date DESC")
	if err != nil {
		return nil, fmt.Errorf("error fetching invoices: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("error closing rows", logger.Error(err))
		}
	}(rows)

	var invoices []domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(&invoice.ID, &invoice.CustomerID, &invoice.Amount, &invoice.Status, &invoice.Date)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over invoices: %w", err)
	}

	return invoices, nil
}

func (p *Postgres) UserByEmail(email string) (*domain.User, error) {
	row := p.DB.QueryRow("SELECT id, email, password FROM users WHERE email = $1", email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &user, nil
}
