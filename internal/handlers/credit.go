package handlers

import (
	"strconv"

	"github.com/industry-digital/flux-game-sub002/internal/command"
	"github.com/industry-digital/flux-game-sub002/internal/handler"
	"github.com/industry-digital/flux-game-sub002/internal/intent"
	"github.com/industry-digital/flux-game-sub002/internal/transformer"
	"github.com/industry-digital/flux-game-sub002/internal/urn"
)

func init() {
	handler.Register(func() handler.Handler { return &Credit{} })
}

// TypeCredit is CREDIT's command type (spec §8 scenario 2).
const TypeCredit command.Type = "CREDIT"

// CreditPayload carries the parsed recipient/currency/amount/memo.
type CreditPayload struct {
	Recipient urn.URN
	Currency  string
	Amount    int
	Memo      string
}

// Credit parses "@credit <actor-urn> <currency> <amount> [--memo=...]"
// and, on reduce, delegates the actual ledger mutation to the context's
// CurrencyAPI collaborator — this handler owns parsing and dispatch
// only, not economy rules (spec §1 Non-goals: currency catalog is an
// external collaborator).
type Credit struct{}

func (Credit) Type() command.Type { return TypeCredit }

func (Credit) Parse(pctx *handler.ParserContext, in *intent.Intent) (*command.Command, error) {
	if in.Verb != "@credit" || len(in.Tokens) < 3 {
		return nil, nil
	}

	amount, err := strconv.Atoi(in.Tokens[2])
	if err != nil {
		return nil, nil
	}

	memo, _ := in.Options.StringValue("memo")

	return &command.Command{
		Type: TypeCredit,
		Payload: CreditPayload{
			Recipient: urn.URN(in.Tokens[0]),
			Currency:  in.Tokens[1],
			Amount:    amount,
			Memo:      memo,
		},
	}, nil
}

func (Credit) Reduce(ctx *transformer.Context, cmd command.Command) (*transformer.Context, error) {
	payload, _ := cmd.Payload.(CreditPayload)

	if ctx.Currency != nil {
		if err := ctx.Currency.Credit(payload.Recipient, payload.Currency, payload.Amount, payload.Memo); err != nil {
			return nil, err
		}
	}

	ctx.Emit(transformer.Event{
		Name:     "CREDIT",
		Actor:    cmd.Actor,
		Location: cmd.Location,
		Session:  cmd.Session,
		Payload:  payload,
	})
	return ctx, nil
}
