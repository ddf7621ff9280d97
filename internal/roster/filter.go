package roster

import (
	"strings"

	"csa-console/internal/model"
)

// Filter отбирает участников по схеме и строке поиска.
// Пустая схема или "All" не фильтрует; поиск ищет подстроку в имени, email или dept без учёта регистра.
func Filter(members []model.TeamMember, scheme, search string) []model.TeamMember {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]model.TeamMember, 0, len(members))
	for _, m := range members {
		if scheme != "" && scheme != model.SchemeAll && !m.HasScheme(scheme) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Email), search) &&
			!strings.Contains(strings.ToLower(m.Dept), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Scope оставляет участников, которых вызывающий видит на экране состава.
// Admin видит всех, Trainer только стажёров своего dept, остальные никого.
func Scope(members []model.TeamMember, caller model.User) []model.TeamMember {
	switch caller.AccessRights {
	case model.AccessAdmin:
		return members
	case model.AccessTrainer:
		out := make([]model.TeamMember, 0, len(members))
		for _, m := range members {
			if m.AccessRights == model.AccessTrainee && m.Dept == caller.Dept {
				out = append(out, m)
			}
		}
		return out
	default:
		return []model.TeamMember{}
	}
}
