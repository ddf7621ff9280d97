package roster

import (
	"errors"
	"fmt"
	"sync"

	"csa-console/internal/model"
)

// State состояние экрана состава.
type State string

const (
	// Viewing таблица только для чтения.
	Viewing State = "viewing"
	// Editing ячейки редактируются, очередь удаления активна.
	Editing State = "editing"
	// Saving план отправляется на бэкенд, правки запрещены до Complete.
	Saving State = "saving"
)

// Редактируемые поля участника.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldAccessRights = "access_rights"
)

var (
	// ErrNotEditing операция доступна только в режиме редактирования.
	ErrNotEditing = errors.New("roster is not in edit mode")
	// ErrAlreadyEditing повторный вход в режим редактирования.
	ErrAlreadyEditing = errors.New("roster is already in edit mode")
	// ErrSaving сохранение уже идёт.
	ErrSaving = errors.New("roster save is in progress")
	// ErrUnknownMember участника нет в рабочей копии.
	ErrUnknownMember = errors.New("unknown team member")
	// ErrUnknownField поле не редактируется с экрана состава.
	ErrUnknownField = errors.New("unknown member field")
	// ErrInvalidAccessRights роль не из списка Admin/Trainer/Trainee.
	ErrInvalidAccessRights = errors.New("invalid access rights")
)

// View снимок того, что сейчас показывает экран.
type View struct {
	State          State
	Members        []model.TeamMember
	PendingDeletes []string
}

// Editor конечный автомат Viewing/Editing/Saving поверх снимка, рабочей копии и очереди удаления.
// Безопасен для конкурентного использования.
type Editor struct {
	mu          sync.Mutex
	state       State
	original    *Roster
	working     *Roster
	deleteQueue []string
	planned     Plan
}

// NewEditor создаёт редактор в режиме просмотра над загруженным списком.
func NewEditor(members []model.TeamMember) *Editor {
	original := New(members)
	return &Editor{
		state:    Viewing,
		original: original,
		working:  original.Clone(),
	}
}

// State текущее состояние.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// View возвращает рабочую копию при редактировании и сохранении, снимок в режиме просмотра.
func (e *Editor) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := View{State: e.state, PendingDeletes: append([]string(nil), e.deleteQueue...)}
	if e.state != Viewing {
		v.Members = e.working.Members()
	} else {
		v.Members = e.original.Members()
	}
	return v
}

// Has сообщает, есть ли участник в снимке или рабочей копии.
func (e *Editor) Has(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.original.Has(id) || e.working.Has(id)
}

// Reload заменяет снимок свежим списком с бэкенда. Во время редактирования запрещено.
func (e *Editor) Reload(members []model.TeamMember) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Editing:
		return ErrAlreadyEditing
	case Saving:
		return ErrSaving
	}
	e.original = New(members)
	e.working = e.original.Clone()
	return nil
}

// Begin Viewing -> Editing.
func (e *Editor) Begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Editing:
		return ErrAlreadyEditing
	case Saving:
		return ErrSaving
	}
	e.state = Editing
	e.working = e.original.Clone()
	e.deleteQueue = nil
	return nil
}

// SetField меняет одно поле участника в рабочей копии.
func (e *Editor) SetField(id, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.editable(id)
	if err != nil {
		return err
	}

	switch field {
	case FieldName:
		m.Name = value
	case FieldEmail:
		m.Email = value
	case FieldPassword:
		m.Password = value
	case FieldAccessRights:
		ar := model.AccessRights(value)
		if !ar.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidAccessRights, value)
		}
		m.AccessRights = ar
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	e.working.Put(m)
	return nil
}

// SetSchemes заменяет назначенные участнику схемы.
func (e *Editor) SetSchemes(id string, schemes []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.editable(id)
	if err != nil {
		return err
	}
	m.Schemes = append([]string{}, schemes...)
	e.working.Put(m)
	return nil
}

// ResetPassword генерирует новый пароль участнику и возвращает его.
func (e *Editor) ResetPassword(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.editable(id)
	if err != nil {
		return "", err
	}
	pw, err := GeneratePassword()
	if err != nil {
		return "", err
	}
	m.Password = pw
	e.working.Put(m)
	return pw, nil
}

// QueueDelete убирает участника из рабочей копии и ставит в очередь на удаление.
// Удаление выполняется только при сохранении.
func (e *Editor) QueueDelete(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.editable(id); err != nil {
		return err
	}
	e.working.Remove(id)
	e.deleteQueue = append(e.deleteQueue, id)
	return nil
}

// Cancel отбрасывает рабочую копию и очередь удаления, Editing -> Viewing.
// Во время сохранения отменять нечего.
func (e *Editor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Saving {
		return ErrSaving
	}
	e.working = e.original.Clone()
	e.deleteQueue = nil
	e.state = Viewing
	return nil
}

// Plan фиксирует разницу между рабочей копией и снимком и переводит Editing -> Saving.
// Второй Plan до Complete возвращает ErrSaving.
func (e *Editor) Plan() (Plan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Saving:
		return Plan{}, ErrSaving
	case Viewing:
		return Plan{}, ErrNotEditing
	}
	e.planned = Diff(e.original, e.working, e.deleteQueue)
	e.state = Saving
	return e.planned, nil
}

// Complete Saving -> Viewing независимо от результата сохранения.
// Новый снимок собирается из зафиксированного плана и отражает только то, что бэкенд принял:
// при неудачном обновлении деталей или схем остаётся исходное значение,
// участник с неудачным удалением возвращается.
func (e *Editor) Complete(res Result) {
	e.mu.Lock()
	defer e.mu.Unlock()

	deleted := make(map[string]struct{}, len(e.planned.Deletes))
	for _, id := range e.planned.Deletes {
		deleted[id] = struct{}{}
	}
	updated := make(map[string]model.TeamMember, len(e.planned.Updates))
	for _, m := range e.planned.Updates {
		updated[m.UUID] = m
	}

	next := New(nil)
	for _, id := range e.original.order {
		before := e.original.byID[id]

		if _, ok := deleted[id]; ok {
			if !res.succeeded(OpDelete, id) {
				next.Put(before)
			}
			continue
		}

		merged := before.Clone()
		if sent, ok := updated[id]; ok {
			if res.succeeded(OpUpdateDetails, id) {
				merged.Name = sent.Name
				merged.Email = sent.Email
				merged.AccessRights = sent.AccessRights
			}
			if res.succeeded(OpUpdateSchemes, id) {
				merged.Schemes = append([]string{}, sent.Schemes...)
			}
		}
		merged.Password = ""
		next.Put(merged)
	}

	e.original = next
	e.working = next.Clone()
	e.deleteQueue = nil
	e.planned = Plan{}
	e.state = Viewing
}

func (e *Editor) editable(id string) (model.TeamMember, error) {
	if e.state == Saving {
		return model.TeamMember{}, ErrSaving
	}
	if e.state != Editing {
		return model.TeamMember{}, ErrNotEditing
	}
	m, ok := e.working.Get(id)
	if !ok {
		return model.TeamMember{}, fmt.Errorf("%w: %s", ErrUnknownMember, id)
	}
	return m, nil
}
