package form

import (
	"context"
	"fmt"

	"github.com/fw/askline/ask"
	"github.com/fw/askline/internal/ctxlog"
)

// translateForm converts a decoded form block into the runnable model.
func (l *Loader) translateForm(ctx context.Context, block *formBlock) (*Form, error) {
	form := &Form{Name: block.Name}
	for _, qb := range block.Questions {
		q, err := l.translateQuestion(ctx, qb)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", qb.Name, err)
		}
		form.Questions = append(form.Questions, q)
	}
	if len(form.Questions) == 0 {
		return nil, fmt.Errorf("form has no questions")
	}
	return form, nil
}

// translateQuestion builds the ask.Question for one question block. A list
// type becomes a greedy trailing sequence, or a fixed-arity sequence when
// count is set; everything else is a single-token slot.
func (l *Loader) translateQuestion(ctx context.Context, qb *questionBlock) (*Question, error) {
	logger := ctxlog.FromContext(ctx)

	ty, err := typeExprToCtyType(qb.Type)
	if err != nil {
		return nil, err
	}
	logger.Debug("Translated question type.", "name", qb.Name, "type", ty.FriendlyName())

	var slot ask.Slot
	switch {
	case ty.IsListType():
		if qb.Count != nil {
			if *qb.Count <= 0 {
				return nil, fmt.Errorf("count must be positive, got %d", *qb.Count)
			}
			slot = ask.FixedSeq(ty.ElementType(), *qb.Count)
		} else {
			slot = ask.Remainder(ty.ElementType())
		}
	default:
		if qb.Count != nil {
			return nil, fmt.Errorf("count is only valid on list questions")
		}
		slot = ask.Value(ty)
	}

	cond, err := compileCondition(qb, ty)
	if err != nil {
		return nil, err
	}

	message := qb.Message
	if message == "" {
		message = fmt.Sprintf("%s: ", qb.Name)
	}

	return &Question{
		Name: qb.Name,
		Type: ty,
		Prompt: ask.Question{
			Message:        message,
			ParseError:     qb.ParseError,
			ConditionError: qb.ConditionError,
			Condition:      cond,
			Slots:          []ask.Slot{slot},
		},
	}, nil
}
