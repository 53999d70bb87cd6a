// Package memory provides in-process implementations of the repository ports
// for deployments without Postgres and for tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
)

// EmployeeRepository keeps the roster in creation order.
type EmployeeRepository struct {
	mu        sync.RWMutex
	order     []string
	employees map[string]domain.Employee
}

// NewEmployeeRepository returns an empty roster.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]domain.Employee)}
}

var _ portsrepo.EmployeeRepositoryFacade = (*EmployeeRepository)(nil)

// cloneEmployee copies the item slice so callers never share storage with the repository.
func cloneEmployee(e domain.Employee) domain.Employee {
	items := make([]domain.LineItem, len(e.Items))
	copy(items, e.Items)
	e.Items = items
	return e
}

func (r *EmployeeRepository) FindEmployeeByID(_ context.Context, employeeID string) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[employeeID]
	if !ok {
		return nil, apperrors.NewNotFoundError("employee " + employeeID)
	}
	clone := cloneEmployee(e)
	return &clone, nil
}

func (r *EmployeeRepository) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneEmployee(r.employees[id]))
	}
	return out, nil
}

func (r *EmployeeRepository) SaveEmployee(_ context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked(employee)
}

func (r *EmployeeRepository) saveLocked(employee domain.Employee) error {
	if _, exists := r.employees[employee.EmployeeID]; exists {
		return fmt.Errorf("%w: employee %s already exists", apperrors.ErrDuplicate, employee.EmployeeID)
	}
	r.employees[employee.EmployeeID] = cloneEmployee(employee)
	r.order = append(r.order, employee.EmployeeID)
	return nil
}

func (r *EmployeeRepository) UpdateEmployee(_ context.Context, employee domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.employees[employee.EmployeeID]
	if !ok {
		return apperrors.NewNotFoundError("employee " + employee.EmployeeID)
	}
	stored.Name = employee.Name
	stored.Base = employee.Base
	stored.LastUpdatedAt = employee.LastUpdatedAt
	r.employees[employee.EmployeeID] = stored
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(_ context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[employeeID]; !ok {
		return apperrors.NewNotFoundError("employee " + employeeID)
	}
	delete(r.employees, employeeID)
	for i, id := range r.order {
		if id == employeeID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ReplaceRoster swaps the roster only if every employee in employees can be stored.
func (r *EmployeeRepository) ReplaceRoster(_ context.Context, employees []domain.Employee) error {
	next := &EmployeeRepository{employees: make(map[string]domain.Employee, len(employees))}
	for _, e := range employees {
		if err := next.saveLocked(e); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = next.employees
	r.order = next.order
	return nil
}

func (r *EmployeeRepository) SaveLineItem(_ context.Context, item domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[item.EmployeeID]
	if !ok {
		return apperrors.NewNotFoundError("employee " + item.EmployeeID)
	}
	if e.FindItem(item.LineItemID) >= 0 {
		return fmt.Errorf("%w: line item %s already exists", apperrors.ErrDuplicate, item.LineItemID)
	}
	e = cloneEmployee(e)
	e.Items = append(e.Items, item)
	r.employees[item.EmployeeID] = e
	return nil
}

func (r *EmployeeRepository) UpdateLineItem(_ context.Context, item domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[item.EmployeeID]
	if !ok {
		return apperrors.NewNotFoundError("employee " + item.EmployeeID)
	}
	idx := e.FindItem(item.LineItemID)
	if idx < 0 {
		return apperrors.NewNotFoundError("line item " + item.LineItemID)
	}
	e = cloneEmployee(e)
	stored := e.Items[idx]
	stored.Kind = item.Kind
	stored.Label = item.Label
	stored.Value = item.Value
	stored.LastUpdatedAt = item.LastUpdatedAt
	e.Items[idx] = stored
	r.employees[item.EmployeeID] = e
	return nil
}

func (r *EmployeeRepository) DeleteLineItem(_ context.Context, employeeID, lineItemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[employeeID]
	if !ok {
		return apperrors.NewNotFoundError("employee " + employeeID)
	}
	idx := e.FindItem(lineItemID)
	if idx < 0 {
		return apperrors.NewNotFoundError("line item " + lineItemID)
	}
	items := make([]domain.LineItem, 0, len(e.Items)-1)
	items = append(items, e.Items[:idx]...)
	items = append(items, e.Items[idx+1:]...)
	e.Items = items
	r.employees[employeeID] = e
	return nil
}
