package roster

import "csa-console/internal/model"

// Plan набор изменений, которые нужно отправить на бэкенд при сохранении.
type Plan struct {
	// Updates изменённые участники в порядке исходного снимка, не больше одной записи на участника.
	Updates []model.TeamMember
	// Deletes uuid участников из очереди на удаление, без повторов.
	Deletes []string
}

// Empty сообщает, что сохранять нечего.
func (p Plan) Empty() bool {
	return len(p.Updates) == 0 && len(p.Deletes) == 0
}

// Diff сравнивает рабочую копию со снимком по uuid.
// Участник попадает в Updates, если у него изменились email, name, access_rights,
// password или множество схем. Dept только для чтения: бэкенд его не принимает. Участники из deleteQueue в Updates не попадают
// никогда, даже если их поля тоже менялись. Участники, которых нет в снимке, игнорируются.
func Diff(original, working *Roster, deleteQueue []string) Plan {
	plan := Plan{Deletes: dedupe(deleteQueue)}

	queued := make(map[string]struct{}, len(plan.Deletes))
	for _, id := range plan.Deletes {
		queued[id] = struct{}{}
	}

	for _, id := range original.order {
		if _, ok := queued[id]; ok {
			continue
		}
		edited, ok := working.byID[id]
		if !ok {
			continue
		}
		if Changed(original.byID[id], edited) {
			plan.Updates = append(plan.Updates, edited.Clone())
		}
	}
	return plan
}

// Changed сравнивает две версии одного участника по редактируемым полям.
// Схемы сравниваются как множества.
func Changed(before, after model.TeamMember) bool {
	return before.Email != after.Email ||
		before.Name != after.Name ||
		before.AccessRights != after.AccessRights ||
		before.Password != after.Password ||
		!model.SameSchemes(before.Schemes, after.Schemes)
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
