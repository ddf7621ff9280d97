// Package model содержит доменные структуры тренажёра: участники команды, схемы, вопросы, попытки и промпты.
package model

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// SchemeAll псевдо-схема "все схемы" в фильтрах и средних баллах.
const SchemeAll = "All"

// Scheme описывает тренировочную категорию (например, CareShield) с её вопросами.
type Scheme struct {
	SchemeName         string     `json:"scheme_name"`
	SchemeCSAImgPath   string     `json:"scheme_csa_img_path,omitempty"`
	SchemeAdminImgPath string     `json:"scheme_admin_img_path,omitempty"`
	NumberOfQuestions  int        `json:"number_of_questions"`
	Questions          []Question `json:"questions,omitempty"`
}

// NormalizeSchemeName приводит имя схемы к виду, в котором его хранит бэкенд:
// "/" заменяется на " or ", первая буква заглавная, остальные строчные.
func NormalizeSchemeName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "/", " or "))
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}

// Question описывает вопрос схемы вместе с эталонным ответом.
type Question struct {
	QuestionID      string     `json:"question_id,omitempty"`
	SchemeName      string     `json:"scheme_name"`
	Title           string     `json:"title"`
	QuestionDetails string     `json:"question_details"`
	Ideal           string     `json:"ideal"`
	IdealSystemName string     `json:"ideal_system_name,omitempty"`
	IdealSystemURL  string     `json:"ideal_system_url,omitempty"`
	Difficulty      string     `json:"question_difficulty,omitempty"`
	Created         *time.Time `json:"created,omitempty"`
}

// PromptType различает стандартный и изменённый администратором промпт.
type PromptType string

const (
	// PromptDefault промпт по умолчанию.
	PromptDefault PromptType = "default"
	// PromptDynamic промпт, сохранённый администратором.
	PromptDynamic PromptType = "dynamic"
)

// Prompt текущий промпт, по которому внешний AI-процесс оценивает ответы.
type Prompt struct {
	PromptText string     `json:"prompt_text"`
	PromptType PromptType `json:"prompt_type,omitempty"`
}

// Message стандартный ответ бэкенда вида {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}
