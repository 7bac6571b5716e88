// Package editor implements the record create/update form flow as an
// explicit state machine. The state tag and target id travel together,
// so an id can only exist in the two Editing states.
package editor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ore/internal/core"
	"ore/internal/store"
)

// State identifies where the edit flow currently is.
type State int

const (
	Closed State = iota
	AddingWage
	EditingWage
	AddingManual
	EditingManual
)

func (s State) String() string {
	switch s {
	case AddingWage:
		return "adding_wage"
	case EditingWage:
		return "editing_wage"
	case AddingManual:
		return "adding_manual"
	case EditingManual:
		return "editing_manual"
	default:
		return "closed"
	}
}

// Form is the shared edit buffer. Only the fields of the record kind
// being edited are consulted on save; the rest stay blank.
type Form struct {
	// Wage record fields.
	Name  string
	Time  string
	Wage  string
	Total string

	// Manual record fields.
	Date       string
	StartTime  string
	EndTime    string
	BreakTime  string
	TotalHours string
	Project    string
}

// Editor drives the form flow against the record store.
type Editor struct {
	store *store.Store
	newID func() string

	state    State
	targetID string
	form     Form
}

// New returns a closed editor. newID supplies ids for created records;
// nil selects UUIDs.
func New(st *store.Store, newID func() string) *Editor {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Editor{store: st, newID: newID}
}

// State reports the current state of the flow.
func (e *Editor) State() State { return e.state }

// TargetID reports the id being edited, empty outside the Editing states.
func (e *Editor) TargetID() string { return e.targetID }

// Form returns a copy of the edit buffer.
func (e *Editor) Form() Form { return e.form }

// SetForm replaces the edit buffer. It has no effect while closed.
func (e *Editor) SetForm(f Form) {
	if e.state == Closed {
		return
	}
	e.form = f
}

// OpenAddWage starts a new wage record with a pre-filled buffer (the
// calculator pushes its result in this way).
func (e *Editor) OpenAddWage(prefill Form) {
	e.state = AddingWage
	e.targetID = ""
	e.form = prefill
}

// OpenEditWage loads the wage record into the buffer for editing.
func (e *Editor) OpenEditWage(id string) error {
	r, ok := e.store.WageByID(id)
	if !ok {
		return fmt.Errorf("open wage record %s: %w", id, store.ErrRecordNotFound)
	}
	e.state = EditingWage
	e.targetID = id
	e.form = Form{Name: r.Name, Time: r.Time, Wage: r.Wage, Total: r.Total}
	return nil
}

// OpenAddManual starts a new manual record with an empty buffer.
func (e *Editor) OpenAddManual() {
	e.state = AddingManual
	e.targetID = ""
	e.form = Form{}
}

// OpenEditManual loads the manual record into the buffer for editing.
func (e *Editor) OpenEditManual(id string) error {
	r, ok := e.store.ManualByID(id)
	if !ok {
		return fmt.Errorf("open manual record %s: %w", id, store.ErrRecordNotFound)
	}
	e.state = EditingManual
	e.targetID = id
	e.form = Form{
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		BreakTime:  r.BreakTime,
		TotalHours: r.TotalHours,
		Project:    r.Project,
	}
	return nil
}

// Save validates the buffer and commits it to the store. On a validation
// error the state and the store are left untouched so the form can stay
// open. On success the editor closes and returns the id written.
func (e *Editor) Save() (string, error) {
	switch e.state {
	case AddingWage, EditingWage:
		return e.saveWage()
	case AddingManual, EditingManual:
		return e.saveManual()
	default:
		return "", fmt.Errorf("save: editor is closed")
	}
}

func (e *Editor) saveWage() (string, error) {
	if strings.TrimSpace(e.form.Name) == "" {
		return "", core.ErrEmptyName
	}

	id := e.targetID
	if e.state == EditingWage {
		patch := core.WagePatch{
			Name:  &e.form.Name,
			Time:  &e.form.Time,
			Wage:  &e.form.Wage,
			Total: &e.form.Total,
		}
		if err := e.store.UpdateWage(id, patch); err != nil {
			return "", err
		}
	} else {
		id = e.newID()
		e.store.AddWage(core.WageRecord{
			ID:    id,
			Name:  e.form.Name,
			Time:  e.form.Time,
			Wage:  e.form.Wage,
			Total: e.form.Total,
		})
	}

	e.close()
	return id, nil
}

func (e *Editor) saveManual() (string, error) {
	if strings.TrimSpace(e.form.Date) == "" ||
		strings.TrimSpace(e.form.StartTime) == "" ||
		strings.TrimSpace(e.form.EndTime) == "" {
		return "", core.ErrMissingShift
	}

	project := e.form.Project
	if strings.TrimSpace(project) == "" {
		project = core.DefaultProject
	}

	id := e.targetID
	if e.state == EditingManual {
		patch := core.ManualPatch{
			Date:       &e.form.Date,
			StartTime:  &e.form.StartTime,
			EndTime:    &e.form.EndTime,
			BreakTime:  &e.form.BreakTime,
			TotalHours: &e.form.TotalHours,
			Project:    &project,
		}
		if err := e.store.UpdateManual(id, patch); err != nil {
			return "", err
		}
	} else {
		id = e.newID()
		record := core.ManualTimeRecord{
			ID:         id,
			Date:       e.form.Date,
			StartTime:  e.form.StartTime,
			EndTime:    e.form.EndTime,
			BreakTime:  e.form.BreakTime,
			TotalHours: e.form.TotalHours,
			Project:    project,
		}
		// New manual records go through a read-then-replace of the whole
		// collection rather than a plain append.
		_, manual := e.store.Snapshot()
		e.store.ReplaceManual(append(manual, record))
	}

	e.close()
	return id, nil
}

// Cancel discards the buffer and closes the editor unconditionally.
func (e *Editor) Cancel() {
	e.close()
}

func (e *Editor) close() {
	e.state = Closed
	e.targetID = ""
	e.form = Form{}
}

// FilterWage returns the wage records whose name contains the query,
// case-insensitively. An empty query matches everything.
func FilterWage(records []core.WageRecord, query string) []core.WageRecord {
	q := strings.ToLower(query)
	out := make([]core.WageRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterManual returns the manual records whose project or date contains
// the query, case-insensitively.
func FilterManual(records []core.ManualTimeRecord, query string) []core.ManualTimeRecord {
	q := strings.ToLower(query)
	out := make([]core.ManualTimeRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Project), q) ||
			strings.Contains(strings.ToLower(r.Date), q) {
			out = append(out, r)
		}
	}
	return out
}
