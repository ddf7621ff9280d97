package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"csa-console/internal/backend"
	"csa-console/internal/export"
	"csa-console/internal/model"
	"csa-console/internal/roster"
	"csa-console/internal/session"
)

// ReportStore хранилище отчётов о сохранении состава.
type ReportStore interface {
	InsertReport(ctx context.Context, rep model.SaveReport) error
	ListReports(ctx context.Context, limit int) ([]model.SaveReport, error)
}

// TeamView то, что отдаёт экран "My Team".
type TeamView struct {
	State          roster.State       `json:"state"`
	Members        []model.TeamMember `json:"members"`
	Schemes        []string           `json:"schemes"`
	PendingDeletes []string           `json:"pending_deletes"`
}

// MemberPatch изменения одного участника. Поле nil не трогаем.
type MemberPatch struct {
	Name         *string   `json:"name,omitempty"`
	Email        *string   `json:"email,omitempty"`
	AccessRights *string   `json:"access_rights,omitempty"`
	Password     *string   `json:"password,omitempty"`
	Schemes      *[]string `json:"schemes,omitempty"`
}

// Empty в патче нет ни одного поля.
func (p MemberPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.AccessRights == nil &&
		p.Password == nil && p.Schemes == nil
}

// RosterService экран "My Team": загрузка, редактирование и сохранение состава.
type RosterService struct {
	backends BackendFunc
	drafts   *Drafts
	reports  ReportStore
	pin      PinGuard
	policy   roster.FailurePolicy
	log      *slog.Logger
	now      func() time.Time
}

func NewRosterService(
	backends BackendFunc,
	drafts *Drafts,
	reports ReportStore,
	pin PinGuard,
	policy roster.FailurePolicy,
	log *slog.Logger,
) *RosterService {
	return &RosterService{
		backends: backends,
		drafts:   drafts,
		reports:  reports,
		pin:      pin,
		policy:   policy,
		log:      log,
		now:      time.Now,
	}
}

// View показывает состав с фильтром по схеме и поиском по имени, email или dept.
// Trainer видит только стажёров своего dept. В режиме просмотра снимок перечитывается
// с бэкенда, при редактировании и сохранении показывается рабочая копия.
func (s *RosterService) View(ctx context.Context, sess session.Session, scheme, search string) (TeamView, error) {
	if err := requireRole(sess, model.AccessAdmin, model.AccessTrainer); err != nil {
		return TeamView{}, err
	}

	be := s.backends(sess)
	editor, editing := s.drafts.Get(sess.ID)
	editing = editing && editor.State() != roster.Viewing

	var (
		members []model.TeamMember
		schemes []string
	)
	g, gctx := errgroup.WithContext(ctx)
	if !editing {
		g.Go(func() error {
			var err error
			members, err = s.team(gctx, sess, be)
			return err
		})
	}
	g.Go(func() error {
		var err error
		schemes, err = be.DistinctSchemes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return TeamView{}, s.backendErr(sess, "failed to load team", err)
	}

	if !editing {
		if editor == nil {
			editor = s.drafts.PutIfAbsent(sess.ID, roster.NewEditor(members))
		} else if err := editor.Reload(members); err != nil &&
			!errors.Is(err, roster.ErrAlreadyEditing) && !errors.Is(err, roster.ErrSaving) {
			return TeamView{}, fromEditor(err)
		}
	}

	v := editor.View()
	return TeamView{
		State:          v.State,
		Members:        roster.Filter(v.Members, scheme, search),
		Schemes:        normalizeSchemes(schemes),
		PendingDeletes: v.PendingDeletes,
	}, nil
}

// BeginEdit Viewing -> Editing над последним загруженным снимком.
func (s *RosterService) BeginEdit(ctx context.Context, sess session.Session) error {
	editor, err := s.editor(ctx, sess)
	if err != nil {
		return err
	}
	if err := editor.Begin(); err != nil {
		return fromEditor(err)
	}
	s.log.Info("roster edit started", slog.String("user_id", sess.User.UUID))
	return nil
}

// UpdateMember применяет патч к участнику рабочей копии.
func (s *RosterService) UpdateMember(ctx context.Context, sess session.Session, id string, patch MemberPatch) error {
	editor, err := s.editing(sess)
	if err != nil {
		return err
	}
	if patch.Empty() {
		return ErrBadRequest("nothing to update")
	}
	if err := inScope(sess, editor, id); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value *string
	}{
		{roster.FieldName, patch.Name},
		{roster.FieldEmail, patch.Email},
		{roster.FieldAccessRights, patch.AccessRights},
		{roster.FieldPassword, patch.Password},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := editor.SetField(id, f.name, *f.value); err != nil {
			return fromEditor(err)
		}
	}
	if patch.Schemes != nil {
		if err := editor.SetSchemes(id, *patch.Schemes); err != nil {
			return fromEditor(err)
		}
	}
	return nil
}

// ResetPassword генерирует новый пароль участнику. Уходит на бэкенд при сохранении.
func (s *RosterService) ResetPassword(ctx context.Context, sess session.Session, id string) (string, error) {
	editor, err := s.editing(sess)
	if err != nil {
		return "", err
	}
	if err := inScope(sess, editor, id); err != nil {
		return "", err
	}
	pw, err := editor.ResetPassword(id)
	if err != nil {
		return "", fromEditor(err)
	}
	return pw, nil
}

// QueueDelete ставит участника в очередь удаления после подтверждения PIN.
func (s *RosterService) QueueDelete(ctx context.Context, sess session.Session, id, pin string) error {
	editor, err := s.editing(sess)
	if err != nil {
		return err
	}
	if err := inScope(sess, editor, id); err != nil {
		return err
	}
	if err := s.pin.Check(pin); err != nil {
		return err
	}
	if id == sess.User.UUID {
		return ErrBadRequest("you cannot delete yourself")
	}
	return fromEditor(editor.QueueDelete(id))
}

// Cancel отбрасывает правки и очередь удаления.
func (s *RosterService) Cancel(ctx context.Context, sess session.Session) error {
	editor, err := s.editing(sess)
	if err != nil {
		return err
	}
	return fromEditor(editor.Cancel())
}

// Save применяет разницу к бэкенду по одному запросу и возвращает отчёт.
// Пока план выполняется, повторное сохранение и правки получают SAVE_IN_PROGRESS.
// Редактор возвращается в просмотр при любом исходе, в снимок попадает только принятое бэкендом.
func (s *RosterService) Save(ctx context.Context, sess session.Session) (model.SaveReport, error) {
	editor, err := s.editing(sess)
	if err != nil {
		return model.SaveReport{}, err
	}
	plan, err := editor.Plan()
	if err != nil {
		return model.SaveReport{}, fromEditor(err)
	}

	started := s.now().UTC()
	var res roster.Result
	if !plan.Empty() {
		res = roster.NewReconciler(s.backends(sess), s.policy, s.log).Apply(ctx, plan)
	}
	editor.Complete(res)

	rep := s.report(sess, started, res)
	s.log.Info("roster saved",
		slog.String("report_id", rep.ID),
		slog.String("user_id", sess.User.UUID),
		slog.Int("succeeded", rep.Succeeded),
		slog.Int("failed", rep.Failed),
		slog.Int("skipped", rep.Skipped),
	)

	if rep.Succeeded+rep.Failed+rep.Skipped > 0 {
		// ошибка записи отчёта не отменяет сохранение
		if err := s.reports.InsertReport(context.WithoutCancel(ctx), rep); err != nil {
			s.log.Error("failed to store save report", slog.String("report_id", rep.ID), slog.Any("err", err))
		}
	}

	for _, f := range res.Failed {
		if errors.Is(f.Err, backend.ErrUnauthorized) {
			s.drafts.Drop(sess.ID)
			return rep, fromBackend("failed to save team", f.Err)
		}
	}
	return rep, nil
}

// Reports последние отчёты о сохранениях.
func (s *RosterService) Reports(ctx context.Context, sess session.Session, limit int) ([]model.SaveReport, error) {
	if err := requireRole(sess, model.AccessAdmin, model.AccessTrainer); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, ErrBadRequest("limit must be positive")
	}
	reps, err := s.reports.ListReports(ctx, limit)
	if err != nil {
		return nil, errInternal("failed to list save reports", err)
	}
	return reps, nil
}

// Export пишет состав в CSV с теми же фильтрами, что и View.
func (s *RosterService) Export(ctx context.Context, sess session.Session, scheme, search string, w io.Writer) error {
	if err := requireRole(sess, model.AccessAdmin, model.AccessTrainer); err != nil {
		return err
	}
	members, err := s.team(ctx, sess, s.backends(sess))
	if err != nil {
		return s.backendErr(sess, "failed to load team", err)
	}
	if err := export.Roster(w, roster.Filter(members, scheme, search)); err != nil {
		return errInternal("failed to write csv", err)
	}
	return nil
}

func (s *RosterService) editor(ctx context.Context, sess session.Session) (*roster.Editor, error) {
	if err := requireRole(sess, model.AccessAdmin, model.AccessTrainer); err != nil {
		return nil, err
	}
	if e, ok := s.drafts.Get(sess.ID); ok {
		return e, nil
	}
	members, err := s.team(ctx, sess, s.backends(sess))
	if err != nil {
		return nil, s.backendErr(sess, "failed to load team", err)
	}
	return s.drafts.PutIfAbsent(sess.ID, roster.NewEditor(members)), nil
}

func (s *RosterService) editing(sess session.Session) (*roster.Editor, error) {
	if err := requireRole(sess, model.AccessAdmin, model.AccessTrainer); err != nil {
		return nil, err
	}
	e, ok := s.drafts.Get(sess.ID)
	if !ok || e.State() == roster.Viewing {
		return nil, fromEditor(roster.ErrNotEditing)
	}
	return e, nil
}

// team загружает состав в области видимости вызывающего.
// Для Trainer параллельно читается его профиль: dept есть только там.
func (s *RosterService) team(ctx context.Context, sess session.Session, be Backend) ([]model.TeamMember, error) {
	if sess.User.AccessRights == model.AccessAdmin {
		return be.ListUsers(ctx)
	}

	var (
		members []model.TeamMember
		caller  model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = be.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		caller, err = be.GetUser(gctx, sess.User.UUID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	caller.AccessRights = sess.User.AccessRights
	return roster.Scope(members, caller), nil
}

// inScope запрещает Trainer трогать участников вне его состава.
func inScope(sess session.Session, editor *roster.Editor, id string) error {
	if sess.User.AccessRights == model.AccessAdmin || editor.Has(id) {
		return nil
	}
	return ErrForbidden("OUT_OF_SCOPE", "team member is not in your team")
}

func (s *RosterService) backendErr(sess session.Session, msg string, err error) error {
	if errors.Is(err, backend.ErrUnauthorized) {
		s.drafts.Drop(sess.ID)
	}
	return fromBackend(msg, err)
}

func (s *RosterService) report(sess session.Session, started time.Time, res roster.Result) model.SaveReport {
	rep := model.SaveReport{
		ID:         uuid.NewString(),
		ActorID:    sess.User.UUID,
		ActorEmail: sess.User.Email,
		StartedAt:  started,
		FinishedAt: s.now().UTC(),
		Succeeded:  len(res.Succeeded),
		Failed:     len(res.Failed),
		Skipped:    len(res.Skipped),
		Operations: make([]model.ReportOperation, 0, res.Total()),
	}
	type entry struct {
		seq int
		op  model.ReportOperation
	}
	entries := make([]entry, 0, res.Total())
	for _, op := range res.Succeeded {
		entries = append(entries, entry{op.Seq, model.ReportOperation{
			Kind: string(op.Kind), MemberID: op.MemberID, Status: model.OperationSucceeded,
		}})
	}
	for _, f := range res.Failed {
		entries = append(entries, entry{f.Seq, model.ReportOperation{
			Kind: string(f.Kind), MemberID: f.MemberID, Status: model.OperationFailed, Error: f.Err.Error(),
		}})
	}
	for _, op := range res.Skipped {
		entries = append(entries, entry{op.Seq, model.ReportOperation{
			Kind: string(op.Kind), MemberID: op.MemberID, Status: model.OperationSkipped,
		}})
	}
	// в порядке выполнения
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	for _, e := range entries {
		rep.Operations = append(rep.Operations, e.op)
	}
	return rep
}

// normalizeSchemes приводит имена схем к виду бэкенда, убирает дубликаты и "All".
func normalizeSchemes(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = model.NormalizeSchemeName(n)
		if n == "" || n == model.SchemeAll {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// LogReports ReportStore без базы: отчёты только пишутся в лог.
type LogReports struct {
	Log *slog.Logger
}

func (l LogReports) InsertReport(_ context.Context, rep model.SaveReport) error {
	l.Log.Info("save report",
		slog.String("report_id", rep.ID),
		slog.String("actor_email", rep.ActorEmail),
		slog.Any("operations", rep.Operations),
	)
	return nil
}

func (l LogReports) ListReports(context.Context, int) ([]model.SaveReport, error) {
	return []model.SaveReport{}, nil
}
