package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
)

// HelpDesk answers course questions and escalates them to staff. The last
// exchange is kept in memory only and dropped whenever the question changes.
type HelpDesk struct {
	service    ports.MatchService
	guard      *SessionGuard
	reconciler *Reconciler
	logger     zerolog.Logger

	mu       sync.Mutex
	question string
	exchange *domain.AskExchange
}

func NewHelpDesk(service ports.MatchService, guard *SessionGuard, reconciler *Reconciler, logger zerolog.Logger) *HelpDesk {
	return &HelpDesk{service: service, guard: guard, reconciler: reconciler, logger: logger}
}

func (h *HelpDesk) SetQuestion(question string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if question != h.question {
		h.exchange = nil
	}
	h.question = question
}

func (h *HelpDesk) Question() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.question
}

func (h *HelpDesk) Exchange() (domain.AskExchange, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.exchange == nil {
		return domain.AskExchange{}, false
	}
	return *h.exchange, true
}

// Ask sends the current question. The answer is kept only if the question
// did not change while the request was in flight.
func (h *HelpDesk) Ask(ctx context.Context) (domain.AskExchange, error) {
	question := strings.TrimSpace(h.Question())
	if question == "" {
		return domain.AskExchange{}, domain.ErrQuestionRequired
	}

	identity, err := h.guard.Require(ctx)
	if err != nil {
		return domain.AskExchange{}, err
	}

	exchange, err := h.service.Ask(ctx, identity.CourseCode, question, identity.UserID)
	if err != nil {
		h.guard.Forget(ctx, err)
		return domain.AskExchange{}, fmt.Errorf("ask: %w", err)
	}
	if exchange.Question == "" {
		exchange.Question = question
	}

	h.mu.Lock()
	if strings.TrimSpace(h.question) == question {
		h.exchange = &exchange
	}
	h.mu.Unlock()

	return exchange, nil
}

// Escalate opens a ticket for the current question and refreshes the pod,
// since staff may place the user in one.
func (h *HelpDesk) Escalate(ctx context.Context) (domain.Ticket, error) {
	question := strings.TrimSpace(h.Question())
	if question == "" {
		return domain.Ticket{}, domain.ErrQuestionRequired
	}

	identity, err := h.guard.Require(ctx)
	if err != nil {
		return domain.Ticket{}, err
	}

	ticket, err := h.service.CreateTicket(ctx, identity.CourseCode, identity.UserID, question)
	if err != nil {
		h.guard.Forget(ctx, err)
		return domain.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}

	if h.reconciler != nil {
		if _, err := h.reconciler.Refresh(ctx); err != nil {
			h.logger.Debug().Err(err).Msg("refresh pod after ticket")
		}
	}

	return ticket, nil
}
