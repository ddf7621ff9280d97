package model

import "sort"

// AccessRights определяет роль участника и то, каким дашбордом он может пользоваться.
type AccessRights string

const (
	// AccessAdmin даёт доступ к административному дашборду.
	AccessAdmin AccessRights = "Admin"
	// AccessTrainer даёт доступ к дашборду тренера.
	AccessTrainer AccessRights = "Trainer"
	// AccessTrainee даёт доступ к дашборду стажёра (CSA).
	AccessTrainee AccessRights = "Trainee"
)

// Valid сообщает, является ли значение одной из известных ролей.
func (a AccessRights) Valid() bool {
	switch a {
	case AccessAdmin, AccessTrainer, AccessTrainee:
		return true
	}
	return false
}

// TeamMember описывает участника команды так, как его редактирует экран "My Team".
// Password на чтение всегда пустой: бэкенд его не отдаёт, поле заполняется только при сбросе.
// Dept только для чтения: PUT /user/{id} его не принимает.
type TeamMember struct {
	UUID         string       `json:"uuid" yaml:"uuid"`
	Name         string       `json:"name" yaml:"name"`
	Email        string       `json:"email" yaml:"email"`
	Password     string       `json:"password,omitempty" yaml:"password,omitempty"`
	AccessRights AccessRights `json:"access_rights" yaml:"access_rights"`
	Dept         string       `json:"dept,omitempty" yaml:"dept,omitempty"`
	Schemes      []string     `json:"schemes" yaml:"schemes"`
}

// Clone возвращает копию участника с собственным слайсом схем.
func (m TeamMember) Clone() TeamMember {
	c := m
	if m.Schemes != nil {
		c.Schemes = append([]string(nil), m.Schemes...)
	}
	return c
}

// HasScheme проверяет, назначена ли участнику схема.
func (m TeamMember) HasScheme(scheme string) bool {
	for _, s := range m.Schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// SameSchemes сравнивает назначенные схемы как множества, порядок не важен.
func SameSchemes(a, b []string) bool {
	setA := schemeSet(a)
	setB := schemeSet(b)
	if len(setA) != len(setB) {
		return false
	}
	for s := range setA {
		if _, ok := setB[s]; !ok {
			return false
		}
	}
	return true
}

// SortedSchemes возвращает отсортированную копию без дубликатов.
func SortedSchemes(schemes []string) []string {
	set := schemeSet(schemes)
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func schemeSet(schemes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(schemes))
	for _, s := range schemes {
		set[s] = struct{}{}
	}
	return set
}

// UserUpdate тело PUT /user/{id}. Пустой Password бэкенд игнорирует.
type UserUpdate struct {
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	AccessRights AccessRights `json:"access_rights"`
	Schemes      []string     `json:"schemes"`
	Password     string       `json:"password,omitempty"`
}

// UpdateFor собирает тело PUT /user/{id} из участника.
func UpdateFor(m TeamMember) UserUpdate {
	return UserUpdate{
		Email:        m.Email,
		Name:         m.Name,
		AccessRights: m.AccessRights,
		Schemes:      m.Schemes,
		Password:     m.Password,
	}
}

// NewUser тело POST /user (страница addprofile).
type NewUser struct {
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	Name         string       `json:"name"`
	AccessRights AccessRights `json:"access_rights"`
}

// SchemeAssignment тело PUT /scheme/{user_id}.
type SchemeAssignment struct {
	UserID      string   `json:"user_id"`
	SchemesList []string `json:"schemesList"`
}

// LoginResult ответ бэкенда на POST /token.
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	UUID         string       `json:"uuid"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	AccessRights AccessRights `json:"access_rights"`
}

// User профиль вошедшего пользователя без токена. Dept ответ логина не несёт,
// он приходит только из GET /user/{id}.
type User struct {
	UUID         string       `json:"uuid"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	AccessRights AccessRights `json:"access_rights"`
	Dept         string       `json:"dept,omitempty"`
}

// Profile возвращает профиль пользователя из ответа логина.
func (l LoginResult) Profile() User {
	return User{UUID: l.UUID, Email: l.Email, Name: l.Name, AccessRights: l.AccessRights}
}
