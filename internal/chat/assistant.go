// Package chat implements the conversational assistant: it routes a user
// message to an intent (balance query, help, or transaction capture), drives
// the parser and the ledger, and composes the pt-BR reply.
package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/finchat-dev/finchat/internal/brl"
	"github.com/finchat-dev/finchat/internal/chatlog"
	"github.com/finchat-dev/finchat/internal/ledger"
	"github.com/finchat-dev/finchat/internal/model"
	"github.com/finchat-dev/finchat/internal/parser"
)

// monthDisplay renders dates like "julho de 2025".
var monthDisplay = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

const noAmountReply = "Compreendi sua intenção, mas preciso de um valor numérico claro " +
	"para processar o lançamento. Poderia repetir informando o valor?"

const helpReply = `Como posso ajudar:

Você pode me enviar comandos naturais como:
  - "Gastei 180 no barbeiro" (débito)
  - "Minha fatura de fevereiro é 345" (agendamento)
  - "Assinatura de 39,90 todo mês" (recorrência)
  - "qual meu saldo?" (consulta)`

// Assistant handles one user message at a time. It holds no conversation
// state: every message is independent.
type Assistant struct {
	parser *parser.Parser
	ledger *ledger.Service
	root   string
	logger *log.Logger
	now    func() time.Time
}

// New creates an Assistant. root is the data directory (used for the chat
// audit log).
func New(p *parser.Parser, svc *ledger.Service, root string, logger *log.Logger) *Assistant {
	return &Assistant{
		parser: p,
		ledger: svc,
		root:   root,
		logger: logger,
		now:    time.Now,
	}
}

// Reply processes one message and returns the assistant's answer.
func (a *Assistant) Reply(text string) (string, error) {
	msgID := uuid.NewString()
	clean := parser.Normalize(text)

	switch {
	case strings.Contains(clean, "saldo"):
		reply, err := a.balanceReply()
		if err != nil {
			return "", err
		}
		a.logExchange(msgID, text, chatlog.ActionAnswered, nil, "")
		return reply, nil

	case strings.Contains(clean, "ajuda"):
		a.logExchange(msgID, text, chatlog.ActionAnswered, nil, "")
		return helpReply, nil
	}

	res, err := a.parser.Parse(text)
	if errors.Is(err, parser.ErrNoAmount) {
		a.logger.Debug("no amount in message", "message_id", msgID)
		a.logExchange(msgID, text, chatlog.ActionNoAmount, nil, "")
		return noAmountReply, nil
	}
	if err != nil {
		return "", fmt.Errorf("parsing message: %w", err)
	}

	created, err := a.ledger.Record(ledger.RecordParams{
		Description:   res.Description,
		Amount:        res.Amount,
		Type:          res.Type,
		Category:      res.Category,
		Bank:          res.Bank,
		PaymentMethod: res.PaymentMethod,
		Date:          res.Date,
		RepeatMonths:  res.Installments,
		IsInstallment: !res.IsRecurring,
	})
	if err != nil {
		return "", fmt.Errorf("recording transaction: %w", err)
	}

	a.logger.Info("transaction recorded",
		"message_id", msgID,
		"postings", len(created),
		"amount", res.Amount.StringFixed(2),
		"category", string(res.Category),
	)
	a.logExchange(msgID, text, chatlog.ActionRecorded, created, brl.Format(created[0].Amount))

	return successReply(res), nil
}

func (a *Assistant) balanceReply() (string, error) {
	sum, err := a.ledger.Summary()
	if err != nil {
		return "", fmt.Errorf("computing balance: %w", err)
	}
	return fmt.Sprintf("Seu saldo atual consolidado é de %s.", brl.Format(sum.Balance)), nil
}

func successReply(res *parser.Result) string {
	var b strings.Builder
	if res.Type == model.TypeIncome {
		b.WriteString("Entrada registrada com sucesso!\n\n")
	} else {
		b.WriteString("Lançamento realizado com sucesso!\n\n")
	}

	fmt.Fprintf(&b, "Período: %s de %d\n", monthDisplay[res.Date.Month()-1], res.Date.Year())
	fmt.Fprintf(&b, "Montante: %s\n", brl.Format(res.Amount))
	fmt.Fprintf(&b, "Método: %s\n", methodDisplay(res))
	fmt.Fprintf(&b, "Descrição: %s\n", res.Description)
	fmt.Fprintf(&b, "Categoria: %s", model.CategoryLabels[res.Category])

	if res.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(res.Feedback)
	}
	return b.String()
}

func methodDisplay(res *parser.Result) string {
	if res.PaymentMethod == model.MethodCredit {
		return "Crédito (fatura)"
	}
	if res.Type == model.TypeIncome {
		return "Receita (saldo)"
	}
	return "Débito direto"
}

// logExchange appends to the audit log; failures are only logged, never
// surfaced to the user.
func (a *Assistant) logExchange(msgID, input string, action chatlog.Action, created []model.Transaction, amount string) {
	ids := make([]string, len(created))
	for i, txn := range created {
		ids[i] = txn.ID
	}

	entry := chatlog.Entry{
		Timestamp:  a.now(),
		MessageID:  msgID,
		Input:      input,
		Action:     action,
		PostingIDs: strings.Join(ids, ";"),
		Amount:     amount,
	}
	if err := chatlog.Append(a.root, []chatlog.Entry{entry}); err != nil {
		a.logger.Warn("failed to write chat log", "error", err)
	}
}
