package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/payroll_app/internal/models"
	"github.com/SscSPs/payroll_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEmployeeRepository stores the roster in the employees and line_items tables.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const (
	employeeColumns = `employee_id, name, base_amount, base_currency, created_at, last_updated_at`
	lineItemColumns = `line_item_id, employee_id, position, kind, label, amount, currency, created_at, last_updated_at`
	insertEmployee  = `INSERT INTO employees (` + employeeColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	insertLineItem  = `INSERT INTO line_items (` + lineItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	lineItemPositionKey = "line_items_employee_position_key"
	maxAppendAttempts   = 3
)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(&m.EmployeeID, &m.Name, &m.BaseAmount, &m.BaseCurrency, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

func scanLineItem(row pgx.Row) (models.LineItem, error) {
	var m models.LineItem
	err := row.Scan(&m.LineItemID, &m.EmployeeID, &m.Position, &m.Kind, &m.Label, &m.Amount, &m.Currency, &m.CreatedAt, &m.LastUpdatedAt)
	return m, err
}

// FindEmployeeByID retrieves an employee with its items in list order.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	m, err := scanEmployee(r.Pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("employee " + employeeID)
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	rows, err := r.Pool.Query(ctx,
		`SELECT `+lineItemColumns+` FROM line_items WHERE employee_id = $1 ORDER BY position`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items of employee %s: %w", employeeID, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LineItem, error) {
		return scanLineItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items of employee %s: %w", employeeID, err)
	}

	employee := mapping.ToDomainEmployee(m, items)
	return &employee, nil
}

// ListEmployees retrieves the roster in creation order.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at, employee_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	rows, err = r.Pool.Query(ctx, `SELECT `+lineItemColumns+` FROM line_items ORDER BY employee_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LineItem, error) {
		return scanLineItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan line items: %w", err)
	}

	byEmployee := make(map[string][]models.LineItem, len(employees))
	for _, item := range items {
		byEmployee[item.EmployeeID] = append(byEmployee[item.EmployeeID], item)
	}

	result := make([]domain.Employee, len(employees))
	for i, m := range employees {
		result[i] = mapping.ToDomainEmployee(m, byEmployee[m.EmployeeID])
	}
	return result, nil
}

// SaveEmployee inserts an employee and its items in one transaction.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		return insertEmployeeTx(ctx, tx, employee)
	})
}

func insertEmployeeTx(ctx context.Context, tx pgx.Tx, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	batch := &pgx.Batch{}
	batch.Queue(insertEmployee, m.EmployeeID, m.Name, m.BaseAmount, m.BaseCurrency, m.CreatedAt, m.LastUpdatedAt)
	for i, item := range employee.Items {
		li := mapping.ToModelLineItem(item, i)
		batch.Queue(insertLineItem, li.LineItemID, li.EmployeeID, li.Position, li.Kind, li.Label, li.Amount, li.Currency, li.CreatedAt, li.LastUpdatedAt)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: employee %s or one of its items already exists", apperrors.ErrDuplicate, employee.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

// UpdateEmployee updates the name, base salary and update time.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	tag, err := r.Pool.Exec(ctx,
		`UPDATE employees SET name = $2, base_amount = $3, base_currency = $4, last_updated_at = $5 WHERE employee_id = $1`,
		m.EmployeeID, m.Name, m.BaseAmount, m.BaseCurrency, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee " + employee.EmployeeID)
	}
	return nil
}

// DeleteEmployee removes an employee; line items go with it through ON DELETE CASCADE.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("employee " + employeeID)
	}
	return nil
}

// ReplaceRoster deletes every employee and inserts employees in one transaction.
func (r *PgxEmployeeRepository) ReplaceRoster(ctx context.Context, employees []domain.Employee) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM employees`); err != nil {
			return fmt.Errorf("failed to clear roster: %w", err)
		}
		for _, employee := range employees {
			if err := insertEmployeeTx(ctx, tx, employee); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveLineItem appends item after the employee's last item. Concurrent appends that
// pick the same position are retried.
func (r *PgxEmployeeRepository) SaveLineItem(ctx context.Context, item domain.LineItem) error {
	m := mapping.ToModelLineItem(item, 0)
	var err error
	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		_, err = r.Pool.Exec(ctx, `
			INSERT INTO line_items (`+lineItemColumns+`)
			SELECT $1::text, $2::text, COALESCE(MAX(position) + 1, 0), $3::text, $4::text, $5::numeric, $6::text, $7::timestamptz, $8::timestamptz
			FROM line_items WHERE employee_id = $2::text`,
			m.LineItemID, m.EmployeeID, m.Kind, m.Label, m.Amount, m.Currency, m.CreatedAt, m.LastUpdatedAt)
		if !isPositionConflict(err) {
			break
		}
	}
	if err != nil {
		switch {
		case isPositionConflict(err):
			return fmt.Errorf("failed to save line item %s: position contended: %w", item.LineItemID, err)
		case pgErrorCode(err) == pgForeignKeyViolation:
			return apperrors.NewNotFoundError("employee " + item.EmployeeID)
		case pgErrorCode(err) == pgUniqueViolation:
			return fmt.Errorf("%w: line item %s already exists", apperrors.ErrDuplicate, item.LineItemID)
		}
		return fmt.Errorf("failed to save line item %s: %w", item.LineItemID, err)
	}
	return nil
}

// isPositionConflict reports a collision on the per-employee item position.
func isPositionConflict(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation && pgConstraint(err) == lineItemPositionKey
}

// UpdateLineItem updates kind, label, value and update time of an item.
func (r *PgxEmployeeRepository) UpdateLineItem(ctx context.Context, item domain.LineItem) error {
	m := mapping.ToModelLineItem(item, 0)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE line_items SET kind = $3, label = $4, amount = $5, currency = $6, last_updated_at = $7
		WHERE line_item_id = $1 AND employee_id = $2`,
		m.LineItemID, m.EmployeeID, m.Kind, m.Label, m.Amount, m.Currency, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update line item %s: %w", item.LineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("line item " + item.LineItemID)
	}
	return nil
}

// DeleteLineItem removes one item of an employee.
func (r *PgxEmployeeRepository) DeleteLineItem(ctx context.Context, employeeID, lineItemID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM line_items WHERE line_item_id = $1 AND employee_id = $2`, lineItemID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete line item %s: %w", lineItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("line item " + lineItemID)
	}
	return nil
}
