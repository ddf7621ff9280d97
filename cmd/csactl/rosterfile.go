package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"csa-console/internal/roster"
)

// rosterFile желаемые изменения состава: правки участников и удаления.
//
//	members:
//	  - uuid: "2"
//	    email: bob@example.com
//	    schemes: [Careshield, Medisave]
//	delete: ["3"]
type rosterFile struct {
	Members []memberEntry `yaml:"members"`
	Delete  []string      `yaml:"delete"`
}

// memberEntry отсутствующее поле не меняется. Dept бэкенд не принимает, такого ключа нет.
type memberEntry struct {
	UUID         string    `yaml:"uuid"`
	Name         *string   `yaml:"name"`
	Email        *string   `yaml:"email"`
	AccessRights *string   `yaml:"access_rights"`
	Password     *string   `yaml:"password"`
	Schemes      *[]string `yaml:"schemes"`
}

func loadRosterFile(path string) (rosterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rosterFile{}, fmt.Errorf("read roster file: %w", err)
	}
	var rf rosterFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return rosterFile{}, fmt.Errorf("parse roster file %s: %w", path, err)
	}
	for i, m := range rf.Members {
		if m.UUID == "" {
			return rosterFile{}, fmt.Errorf("members[%d]: uuid is required", i)
		}
	}
	return rf, nil
}

// applyTo переносит файл в редактор, уже переведённый в режим редактирования.
func (rf rosterFile) applyTo(e *roster.Editor) error {
	for _, m := range rf.Members {
		fields := []struct {
			name  string
			value *string
		}{
			{roster.FieldName, m.Name},
			{roster.FieldEmail, m.Email},
			{roster.FieldAccessRights, m.AccessRights},
			{roster.FieldPassword, m.Password},
		}
		for _, f := range fields {
			if f.value == nil {
				continue
			}
			if err := e.SetField(m.UUID, f.name, *f.value); err != nil {
				return fmt.Errorf("member %s: %w", m.UUID, err)
			}
		}
		if m.Schemes != nil {
			if err := e.SetSchemes(m.UUID, *m.Schemes); err != nil {
				return fmt.Errorf("member %s: %w", m.UUID, err)
			}
		}
	}
	for _, id := range rf.Delete {
		if err := e.QueueDelete(id); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
	}
	return nil
}
