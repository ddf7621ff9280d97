// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import "csa-console/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionID string     `json:"session_id"`
	User      model.User `json:"user"`
}

type userResponse struct {
	User model.User `json:"user"`
}

type passwordResponse struct {
	MemberID string `json:"member_id"`
	Password string `json:"password"`
}

type queuedResponse struct {
	MemberID string `json:"member_id"`
	Queued   bool   `json:"queued"`
}

type stateResponse struct {
	State string `json:"state"`
}

type reportsResponse struct {
	Reports []model.SaveReport `json:"reports"`
}

type createSchemeRequest struct {
	SchemeName string `json:"scheme_name"`
	FileURL    string `json:"file_url"`
}

type schemesResponse struct {
	Schemes []model.Scheme `json:"schemes"`
}

type schemeNamesResponse struct {
	Schemes []string `json:"schemes"`
}

type questionsResponse struct {
	Questions []model.Question `json:"questions"`
}

type createQuestionResponse struct {
	QuestionID string `json:"question_id"`
}

type attemptsResponse struct {
	Attempts []model.Attempt `json:"attempts"`
}

type promptRequest struct {
	PromptText string `json:"prompt_text"`
}
