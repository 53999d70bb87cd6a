package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type rosterService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	rates        portssvc.ExchangeRateReaderSvc
	validate     *validator.Validate
}

// NewRosterService creates the roster import/export service.
func NewRosterService(repo portsrepo.EmployeeRepositoryFacade, rates portssvc.ExchangeRateReaderSvc, validate *validator.Validate) portssvc.RosterSvc {
	return &rosterService{employeeRepo: repo, rates: rates, validate: validate}
}

var _ portssvc.RosterSvc = (*rosterService)(nil)

func (s *rosterService) Export(ctx context.Context) (*dto.RosterDocument, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for export")
		return nil, fmt.Errorf("failed to export roster: %w", err)
	}
	base, _ := s.rates.CurrentRates(ctx)

	doc := &dto.RosterDocument{
		Version:      dto.RosterDocumentVersion,
		BaseCurrency: base.String(),
		Employees:    make([]dto.RosterEmployee, len(employees)),
	}
	for i, e := range employees {
		items := make([]dto.RosterLineItem, len(e.Items))
		for j, item := range e.Items {
			items[j] = dto.RosterLineItem{
				LineItemID: item.LineItemID,
				Kind:       string(item.Kind),
				Label:      item.Label,
				Value:      dto.RosterMoney{Amount: item.Value.Amount, Currency: item.Value.Currency.String()},
			}
		}
		doc.Employees[i] = dto.RosterEmployee{
			EmployeeID: e.EmployeeID,
			Name:       e.Name,
			BaseSalary: dto.RosterMoney{Amount: e.Base.Amount, Currency: e.Base.Currency.String()},
			Items:      items,
		}
	}
	return doc, nil
}

func (s *rosterService) Import(ctx context.Context, doc dto.RosterDocument) (*dto.ImportRosterResponse, error) {
	if err := s.validate.Struct(doc); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, fmt.Errorf("%w: roster document: %s", apperrors.ErrValidation, validationErrs.Error())
		}
		return nil, fmt.Errorf("%w: roster document: %s", apperrors.ErrValidation, err.Error())
	}

	employees, itemCount, err := rosterFromDocument(doc, time.Now())
	if err != nil {
		return nil, err
	}

	docBase, _ := domain.ParseCurrency(doc.BaseCurrency)
	if base, _ := s.rates.CurrentRates(ctx); docBase != base {
		s.LogInfo(ctx, "Imported roster was exported with another base currency",
			slog.String("document_base", docBase.String()), slog.String("current_base", base.String()))
	}

	if err := s.employeeRepo.ReplaceRoster(ctx, employees); err != nil {
		s.LogError(ctx, err, "Failed to replace roster")
		return nil, fmt.Errorf("failed to import roster: %w", err)
	}

	s.LogInfo(ctx, "Roster imported", slog.Int("employees", len(employees)), slog.Int("line_items", itemCount))
	return &dto.ImportRosterResponse{EmployeesImported: len(employees), LineItemsImported: itemCount}, nil
}

// rosterFromDocument converts an already validated document. Missing ids are generated;
// duplicated ids are rejected.
func rosterFromDocument(doc dto.RosterDocument, now time.Time) ([]domain.Employee, int, error) {
	seen := make(map[string]bool)
	claim := func(id string) (string, error) {
		if id == "" {
			id = uuid.NewString()
		}
		if seen[id] {
			return "", fmt.Errorf("%w: roster document: duplicate id %s", apperrors.ErrValidation, id)
		}
		seen[id] = true
		return id, nil
	}
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	employees := make([]domain.Employee, 0, len(doc.Employees))
	itemCount := 0
	for _, re := range doc.Employees {
		employeeID, err := claim(re.EmployeeID)
		if err != nil {
			return nil, 0, err
		}
		name, err := requireText("name", re.Name)
		if err != nil {
			return nil, 0, err
		}
		base, err := rosterMoney(re.BaseSalary)
		if err != nil {
			return nil, 0, err
		}

		items := make([]domain.LineItem, 0, len(re.Items))
		for _, ri := range re.Items {
			itemID, err := claim(ri.LineItemID)
			if err != nil {
				return nil, 0, err
			}
			label, err := requireText("label", ri.Label)
			if err != nil {
				return nil, 0, err
			}
			value, err := rosterMoney(ri.Value)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, domain.LineItem{
				LineItemID:  itemID,
				EmployeeID:  employeeID,
				Kind:        domain.LineItemKind(ri.Kind),
				Label:       label,
				Value:       value,
				AuditFields: audit,
			})
		}
		itemCount += len(items)

		employees = append(employees, domain.Employee{
			EmployeeID:  employeeID,
			Name:        name,
			Base:        base,
			Items:       items,
			AuditFields: audit,
		})
	}
	return employees, itemCount, nil
}

// rosterMoney accepts currency codes in any case, matching the currency validation tag.
func rosterMoney(m dto.RosterMoney) (domain.Money, error) {
	currency, err := domain.ParseCurrency(m.Currency)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(m.Amount, currency)
}
