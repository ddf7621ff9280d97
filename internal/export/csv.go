// Package export выгружает состав команды и попытки стажёра в CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"csa-console/internal/model"
	"csa-console/internal/scoring"
)

var (
	rosterHeader = []string{"Name", "Email", "Access", "Schemes"}

	attemptsHeader = []string{
		"Name", "Email", "Scheme", "Date",
		"Question Title", "Question", "Answer",
		"Accuracy Feedback", "Accuracy Score",
		"Precision Feedback", "Precision Score",
		"Tone Feedback", "Tone Score",
	}
)

// Roster пишет состав команды, схемы через "; ".
func Roster(w io.Writer, members []model.TeamMember) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rosterHeader); err != nil {
		return fmt.Errorf("write roster header: %w", err)
	}
	for _, m := range members {
		row := []string{m.Name, m.Email, string(m.AccessRights), strings.Join(m.Schemes, "; ")}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write roster row %s: %w", m.UUID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Attempts пишет все попытки пользователя, баллы в процентах.
func Attempts(w io.Writer, user model.User, attempts []model.Attempt) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(attemptsHeader); err != nil {
		return fmt.Errorf("write attempts header: %w", err)
	}
	for _, a := range attempts {
		row := []string{
			user.Name,
			user.Email,
			a.SchemeName,
			a.Date,
			a.QuestionTitle,
			a.QuestionDetails,
			a.Answer,
			a.AccuracyFeedback,
			scoring.Percent(float64(a.AccuracyScore)),
			a.PrecisionFeedback,
			scoring.Percent(float64(a.PrecisionScore)),
			a.ToneFeedback,
			scoring.Percent(float64(a.ToneScore)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write attempt %s: %w", a.AttemptID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AttemptsFilename имя файла выгрузки, как на странице профиля.
func AttemptsFilename(user model.User) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '_'
		}
		return r
	}, user.Name)
	return name + "_all_attempts.csv"
}
