package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/google/uuid"
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new roster service.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}
	base, err := req.BaseSalary.ToDomain()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       name,
		Base:       base,
		Items:      []domain.LineItem{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee in repository", slog.String("employee_id", employee.EmployeeID))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee by ID in repository", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees from repository")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	s.LogDebug(ctx, "Employees listed", slog.Int("count", len(employees)))
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := requireText("name", *req.Name)
		if err != nil {
			return nil, err
		}
		employee.Name = name
	}
	if req.BaseSalary != nil {
		base, err := req.BaseSalary.ToDomain()
		if err != nil {
			return nil, err
		}
		employee.Base = base
	}
	employee.LastUpdatedAt = time.Now()

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update employee in repository", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee in repository", slog.String("employee_id", employeeID))
		}
		return err
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

func (s *employeeService) AddLineItem(ctx context.Context, employeeID string, req dto.AddLineItemRequest) (*domain.LineItem, error) {
	if _, err := s.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	kind, err := parseKind(req.Kind)
	if err != nil {
		return nil, err
	}
	label, err := requireText("label", req.Label)
	if err != nil {
		return nil, err
	}
	value, err := req.Value.ToDomain()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := domain.LineItem{
		LineItemID: uuid.NewString(),
		EmployeeID: employeeID,
		Kind:       kind,
		Label:      label,
		Value:      value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.employeeRepo.SaveLineItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save line item in repository",
			slog.String("employee_id", employeeID), slog.String("line_item_id", item.LineItemID))
		return nil, fmt.Errorf("failed to add line item: %w", err)
	}

	s.LogInfo(ctx, "Line item added", slog.String("employee_id", employeeID), slog.String("line_item_id", item.LineItemID))
	return &item, nil
}

func (s *employeeService) UpdateLineItem(ctx context.Context, employeeID, lineItemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	idx := employee.FindItem(lineItemID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("line item " + lineItemID + " of employee " + employeeID)
	}
	item := employee.Items[idx]

	if req.Kind != nil {
		kind, err := parseKind(*req.Kind)
		if err != nil {
			return nil, err
		}
		item.Kind = kind
	}
	if req.Label != nil {
		label, err := requireText("label", *req.Label)
		if err != nil {
			return nil, err
		}
		item.Label = label
	}
	if req.Value != nil {
		value, err := req.Value.ToDomain()
		if err != nil {
			return nil, err
		}
		item.Value = value
	}
	item.LastUpdatedAt = time.Now()

	if err := s.employeeRepo.UpdateLineItem(ctx, item); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update line item in repository",
				slog.String("employee_id", employeeID), slog.String("line_item_id", lineItemID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Line item updated", slog.String("employee_id", employeeID), slog.String("line_item_id", lineItemID))
	return &item, nil
}

func (s *employeeService) RemoveLineItem(ctx context.Context, employeeID, lineItemID string) error {
	if err := s.employeeRepo.DeleteLineItem(ctx, employeeID, lineItemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete line item in repository",
				slog.String("employee_id", employeeID), slog.String("line_item_id", lineItemID))
		}
		return err
	}
	s.LogInfo(ctx, "Line item removed", slog.String("employee_id", employeeID), slog.String("line_item_id", lineItemID))
	return nil
}

func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s must not be empty", apperrors.ErrValidation, field)
	}
	return trimmed, nil
}

func parseKind(raw string) (domain.LineItemKind, error) {
	kind := domain.LineItemKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: unknown line item kind '%s'", apperrors.ErrValidation, raw)
	}
	return kind, nil
}
