package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/utils"
)

const chatSystemPrompt = "You are a payroll assistant. Answer questions about salaries, accruals and deductions concisely."

type chatService struct {
	BaseService
	client    clients.ChatClient
	reporting portssvc.ReportingSvc
}

// NewChatService creates the chat service. A nil client means chat is not configured.
func NewChatService(client clients.ChatClient, reporting portssvc.ReportingSvc) portssvc.ChatSvc {
	return &chatService{client: client, reporting: reporting}
}

var _ portssvc.ChatSvc = (*chatService)(nil)

func (s *chatService) Ask(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: chat is not configured", apperrors.ErrValidation)
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: at least one message is required", apperrors.ErrValidation)
	}

	system := chatSystemPrompt
	if req.IncludePayrollContext {
		if summary, err := s.payrollSummary(ctx); err != nil {
			s.GetLogger(ctx).Warn("Chat request sent without payroll context", slog.String("error", err.Error()))
		} else {
			system += "\n" + summary
		}
	}

	messages := make([]clients.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, clients.ChatMessage{Role: "system", Content: system})
	for _, m := range req.Messages {
		messages = append(messages, clients.ChatMessage{Role: m.Role, Content: m.Content})
	}

	completion, err := s.client.Complete(ctx, messages)
	if err != nil {
		s.LogError(ctx, err, "Chat completion failed", slog.Int("messages", len(messages)))
		if !errors.Is(err, apperrors.ErrUpstream) {
			err = fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
		}
		return nil, err
	}

	return &dto.ChatResponse{Reply: completion.Content, Model: completion.Model}, nil
}

// payrollSummary renders company net pay in every supported currency, e.g.
// "Company net pay for 3 employees: 23500.00 UAH, 587.50 USD, 546.51 EUR (base currency UAH)."
func (s *chatService) payrollSummary(ctx context.Context) (string, error) {
	report, err := s.reporting.CompanyTotals(ctx)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(report.Totals.Net))
	for _, c := range domain.SupportedCurrencies() {
		parts = append(parts, utils.FormatMoney(report.Totals.Net[c], c))
	}
	summary := fmt.Sprintf("Company net pay for %d employees: %s (base currency %s).",
		report.Totals.EmployeeCount, strings.Join(parts, ", "), report.BaseCurrency)
	if report.RatesCapturedAt == nil {
		summary += " No exchange rates are available, so amounts are not converted."
	}
	return summary, nil
}
