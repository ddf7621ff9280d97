package service

import (
	"sync"
	"time"

	"csa-console/internal/roster"
)

type draft struct {
	editor  *roster.Editor
	touched time.Time
}

// Drafts редакторы состава по id сессии: у каждого пользователя своя рабочая копия.
type Drafts struct {
	mu  sync.Mutex
	m   map[string]*draft
	now func() time.Time
}

func NewDrafts() *Drafts {
	return &Drafts{m: make(map[string]*draft), now: time.Now}
}

// Get возвращает редактор сессии.
func (d *Drafts) Get(sessionID string) (*roster.Editor, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dr, ok := d.m[sessionID]
	if !ok {
		return nil, false
	}
	dr.touched = d.now()
	return dr.editor, true
}

// PutIfAbsent сохраняет редактор, если у сессии его ещё нет, и возвращает действующий.
func (d *Drafts) PutIfAbsent(sessionID string, e *roster.Editor) *roster.Editor {
	d.mu.Lock()
	defer d.mu.Unlock()

	if dr, ok := d.m[sessionID]; ok {
		dr.touched = d.now()
		return dr.editor
	}
	d.m[sessionID] = &draft{editor: e, touched: d.now()}
	return e
}

// Drop забывает редактор сессии.
func (d *Drafts) Drop(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.m, sessionID)
}

// Sweep удаляет редакторы, к которым не обращались с момента before.
func (d *Drafts) Sweep(before time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for id, dr := range d.m {
		if dr.touched.Before(before) {
			delete(d.m, id)
			n++
		}
	}
	return n
}

// Len количество живых черновиков.
func (d *Drafts) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.m)
}
