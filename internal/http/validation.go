package http

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"csa-console/internal/model"
	"csa-console/internal/service"
)

const maxReportsLimit = 100

// ValidateLoginRequest /auth/login, тело запроса
func ValidateLoginRequest(req loginRequest) error {
	if req.Email == "" {
		return service.ErrBadRequest("email is required")
	}
	if req.Password == "" {
		return service.ErrBadRequest("password is required")
	}
	return nil
}

// ValidateMemberPatch PATCH /team/members/{id}, тело запроса
func ValidateMemberPatch(p service.MemberPatch) error {
	if p.Empty() {
		return service.ErrBadRequest("at least one field is required")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return service.ErrBadRequest("name must not be empty")
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			return service.ErrBadRequest("email is invalid")
		}
	}
	if p.AccessRights != nil && !model.AccessRights(*p.AccessRights).Valid() {
		return service.ErrBadRequest("access_rights must be one of Admin, Trainer, Trainee")
	}
	if p.Schemes != nil {
		for i, s := range *p.Schemes {
			if strings.TrimSpace(s) == "" {
				return service.ErrBadRequest(fmt.Sprintf("schemes[%d] must not be empty", i))
			}
		}
	}
	return nil
}

// ParseLimit query-параметр limit для /team/saves
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxReportsLimit {
		return 0, service.ErrBadRequest(fmt.Sprintf("limit must be between 1 and %d", maxReportsLimit))
	}
	return n, nil
}

// ValidatePIN заголовок X-Confirm-PIN для удалений
func ValidatePIN(pin string) error {
	if pin == "" {
		return service.ErrBadRequest(pinHeader + " header is required")
	}
	return nil
}
