package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"csa-console/internal/model"
)

// FileTokens хранит токен консольной утилиты в файле и отдаёт его бэкенд-клиенту.
type FileTokens struct {
	path string
}

type fileSession struct {
	Login     model.LoginResult `json:"login"`
	ExpiresAt time.Time         `json:"expires_at,omitempty"`
}

// NewFileTokens источник токенов на файле path.
func NewFileTokens(path string) *FileTokens {
	return &FileTokens{path: path}
}

// Path путь к файлу сессии.
func (f *FileTokens) Path() string {
	return f.path
}

// Save записывает результат логина с правами 0600.
func (f *FileTokens) Save(login model.LoginResult) error {
	exp, err := TokenExpiry(login.AccessToken)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileSession{Login: login, ExpiresAt: exp}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Load читает сохранённый логин.
func (f *FileTokens) Load() (model.LoginResult, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return model.LoginResult{}, ErrNotFound
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("read session file: %w", err)
	}
	var fs fileSession
	if err := json.Unmarshal(data, &fs); err != nil {
		return model.LoginResult{}, fmt.Errorf("decode session file: %w", err)
	}
	if !fs.ExpiresAt.IsZero() && !time.Now().Before(fs.ExpiresAt) {
		return model.LoginResult{}, ErrExpired
	}
	return fs.Login, nil
}

func (f *FileTokens) Token(context.Context) (string, error) {
	login, err := f.Load()
	if err != nil {
		return "", err
	}
	return login.AccessToken, nil
}

func (f *FileTokens) Invalidate(context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
