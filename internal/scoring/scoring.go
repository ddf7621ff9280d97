// Package scoring готовит средние баллы стажёра к показу: порядок схем, доли для диаграммы, проценты.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"csa-console/internal/model"
)

// Slice сектор круговой диаграммы.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Total int     `json:"total"`
}

// Summary средние баллы по схемам, "All" всегда первая.
type Summary struct {
	Schemes []model.SchemeScores `json:"schemes"`
	Overall model.SchemeScores   `json:"overall"`
}

// Summarize сортирует средние: "All" первой, остальные по имени схемы.
// Если бэкенд не прислал "All", оно считается как среднее по схемам с попытками.
func Summarize(scores []model.SchemeScores) Summary {
	out := append([]model.SchemeScores(nil), scores...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SchemeName == model.SchemeAll {
			return out[j].SchemeName != model.SchemeAll
		}
		if out[j].SchemeName == model.SchemeAll {
			return false
		}
		return out[i].SchemeName < out[j].SchemeName
	})

	if len(out) == 0 || out[0].SchemeName != model.SchemeAll {
		out = append([]model.SchemeScores{overall(out)}, out...)
	}
	return Summary{Schemes: out, Overall: out[0]}
}

// For возвращает средние по схеме или false, если такой нет.
func (s Summary) For(scheme string) (model.SchemeScores, bool) {
	for _, sc := range s.Schemes {
		if sc.SchemeName == scheme {
			return sc, true
		}
	}
	return model.SchemeScores{}, false
}

// Slices три сектора диаграммы: Accuracy, Comprehension (precision) и Tone, каждый из 5.
func Slices(sc model.SchemeScores) []Slice {
	return []Slice{
		{Label: "Accuracy", Value: sc.AccuracyScoreAvg, Total: model.MaxScore},
		{Label: "Comprehension", Value: sc.PrecisionScoreAvg, Total: model.MaxScore},
		{Label: "Tone", Value: sc.ToneScoreAvg, Total: model.MaxScore},
	}
}

// Percent переводит балл из 5 в проценты: 4 -> "80%".
func Percent(score float64) string {
	p := score / model.MaxScore * 100
	if p == math.Trunc(p) {
		return fmt.Sprintf("%d%%", int(p))
	}
	return fmt.Sprintf("%.1f%%", p)
}

// overall среднее по схемам, где есть хоть один ненулевой балл.
func overall(scores []model.SchemeScores) model.SchemeScores {
	all := model.SchemeScores{SchemeName: model.SchemeAll}
	n := 0
	for _, sc := range scores {
		if sc.AccuracyScoreAvg == 0 && sc.PrecisionScoreAvg == 0 && sc.ToneScoreAvg == 0 {
			continue
		}
		all.AccuracyScoreAvg += sc.AccuracyScoreAvg
		all.PrecisionScoreAvg += sc.PrecisionScoreAvg
		all.ToneScoreAvg += sc.ToneScoreAvg
		n++
	}
	if n > 0 {
		all.AccuracyScoreAvg /= float64(n)
		all.PrecisionScoreAvg /= float64(n)
		all.ToneScoreAvg /= float64(n)
	}
	return all
}
