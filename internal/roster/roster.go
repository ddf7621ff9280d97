// Package roster реализует редактирование состава команды: снимок и рабочую копию,
// вычисление разницы между ними и применение этой разницы к бэкенду.
package roster

import "csa-console/internal/model"

// Roster упорядоченный набор участников с доступом по uuid.
// Порядок нужен только для отображения: сравнение всегда идёт по идентификатору.
type Roster struct {
	order []string
	byID  map[string]model.TeamMember
}

// New строит Roster из списка участников. Участники с повторяющимся uuid
// перезаписывают предыдущих, сохраняя позицию первого вхождения.
func New(members []model.TeamMember) *Roster {
	r := &Roster{
		order: make([]string, 0, len(members)),
		byID:  make(map[string]model.TeamMember, len(members)),
	}
	for _, m := range members {
		r.Put(m)
	}
	return r
}

// Len количество участников.
func (r *Roster) Len() int {
	return len(r.order)
}

// Get возвращает участника по uuid.
func (r *Roster) Get(id string) (model.TeamMember, bool) {
	m, ok := r.byID[id]
	if !ok {
		return model.TeamMember{}, false
	}
	return m.Clone(), true
}

// Has проверяет наличие участника.
func (r *Roster) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Put добавляет участника в конец или заменяет существующего на его месте.
func (r *Roster) Put(m model.TeamMember) {
	if _, ok := r.byID[m.UUID]; !ok {
		r.order = append(r.order, m.UUID)
	}
	r.byID[m.UUID] = m.Clone()
}

// Remove удаляет участника. Возвращает false, если его не было.
func (r *Roster) Remove(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// IDs идентификаторы в порядке отображения.
func (r *Roster) IDs() []string {
	return append([]string(nil), r.order...)
}

// Members участники в порядке отображения.
func (r *Roster) Members() []model.TeamMember {
	out := make([]model.TeamMember, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out
}

// Clone глубокая копия.
func (r *Roster) Clone() *Roster {
	return New(r.Members())
}
