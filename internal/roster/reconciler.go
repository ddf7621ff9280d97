package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"csa-console/internal/model"
)

// OpKind тип одиночного запроса к бэкенду при сохранении состава.
type OpKind string

const (
	// OpUpdateDetails PUT /user/{id}: имя, email, роль, пароль.
	OpUpdateDetails OpKind = "update_details"
	// OpUpdateSchemes PUT /scheme/{id}: список назначенных схем.
	OpUpdateSchemes OpKind = "update_schemes"
	// OpDelete DELETE /user/{id}.
	OpDelete OpKind = "delete"
)

// Operation один запрос из плана сохранения. Seq порядковый номер в плане.
type Operation struct {
	Seq      int               `json:"seq"`
	Kind     OpKind            `json:"kind"`
	MemberID string            `json:"member_id"`
	Member   *model.TeamMember `json:"-"`
}

func (o Operation) String() string {
	return fmt.Sprintf("%s(%s)", o.Kind, o.MemberID)
}

// Operations разворачивает план в последовательность запросов:
// для каждого изменённого участника сначала детали, затем схемы, после всех обновлений удаления.
func (p Plan) Operations() []Operation {
	ops := make([]Operation, 0, len(p.Updates)*2+len(p.Deletes))
	for i := range p.Updates {
		m := p.Updates[i].Clone()
		ops = append(ops,
			Operation{Kind: OpUpdateDetails, MemberID: m.UUID, Member: &m},
			Operation{Kind: OpUpdateSchemes, MemberID: m.UUID, Member: &m},
		)
	}
	for _, id := range p.Deletes {
		ops = append(ops, Operation{Kind: OpDelete, MemberID: id})
	}
	for i := range ops {
		ops[i].Seq = i
	}
	return ops
}

// Failure неуспешная операция и её ошибка.
type Failure struct {
	Operation
	Err error `json:"-"`
}

// Result итог применения плана по каждой операции.
type Result struct {
	Succeeded []Operation
	Failed    []Failure
	Skipped   []Operation
}

// OK все операции выполнены.
func (r Result) OK() bool {
	return len(r.Failed) == 0 && len(r.Skipped) == 0
}

// Total количество операций в плане.
func (r Result) Total() int {
	return len(r.Succeeded) + len(r.Failed) + len(r.Skipped)
}

// succeeded проверяет, прошла ли операция данного типа для участника.
func (r Result) succeeded(kind OpKind, id string) bool {
	for _, op := range r.Succeeded {
		if op.Kind == kind && op.MemberID == id {
			return true
		}
	}
	return false
}

// FailurePolicy определяет поведение при ошибке отдельного запроса.
type FailurePolicy int

const (
	// ContinueOnError логирует ошибку и продолжает со следующей операцией.
	ContinueOnError FailurePolicy = iota
	// AbortOnError останавливается на первой ошибке, остаток помечается как пропущенный.
	AbortOnError
)

// Backend запросы, которые выполняет сохранение состава.
type Backend interface {
	UpdateUser(ctx context.Context, id string, u model.UserUpdate) error
	UpdateUserSchemes(ctx context.Context, id string, schemes []string) error
	DeleteUser(ctx context.Context, id string) error
}

// Reconciler применяет план к бэкенду строго последовательно, без транзакции.
type Reconciler struct {
	backend Backend
	policy  FailurePolicy
	log     *slog.Logger
}

// NewReconciler создаёт Reconciler. Если log == nil, используется slog.Default().
func NewReconciler(backend Backend, policy FailurePolicy, log *slog.Logger) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{backend: backend, policy: policy, log: log}
}

// Apply выполняет операции плана по одной и возвращает результат по каждой.
// Отмена контекста прекращает цикл, оставшиеся операции попадают в Skipped.
func (r *Reconciler) Apply(ctx context.Context, plan Plan) Result {
	ops := plan.Operations()
	var res Result

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			res.Skipped = append(res.Skipped, ops[i:]...)
			r.log.Warn("roster save interrupted", slog.Int("skipped", len(ops)-i), slog.Any("err", err))
			return res
		}

		start := time.Now()
		err := r.do(ctx, op)
		if err != nil {
			r.log.Error("roster operation failed",
				slog.String("op", string(op.Kind)),
				slog.String("member_id", op.MemberID),
				slog.Any("err", err),
			)
			res.Failed = append(res.Failed, Failure{Operation: op, Err: err})
			if r.policy == AbortOnError {
				res.Skipped = append(res.Skipped, ops[i+1:]...)
				return res
			}
			continue
		}

		r.log.Debug("roster operation done",
			slog.String("op", string(op.Kind)),
			slog.String("member_id", op.MemberID),
			slog.Duration("took", time.Since(start)),
		)
		res.Succeeded = append(res.Succeeded, op)
	}
	return res
}

func (r *Reconciler) do(ctx context.Context, op Operation) error {
	switch op.Kind {
	case OpUpdateDetails:
		return r.backend.UpdateUser(ctx, op.MemberID, model.UpdateFor(*op.Member))
	case OpUpdateSchemes:
		return r.backend.UpdateUserSchemes(ctx, op.MemberID, op.Member.Schemes)
	case OpDelete:
		return r.backend.DeleteUser(ctx, op.MemberID)
	default:
		return fmt.Errorf("unknown operation %q", op.Kind)
	}
}
