package audit

import (
	"errors"
	"strings"
	"time"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/pkg/errs"
)

// Action names what happened to the audited record.
type Action string

const (
	ActionCreate        Action = "crear"
	ActionMarkSpecial   Action = "marcar_especial"
	ActionRemoveSpecial Action = "remover_especial"
	ActionRefreshAge    Action = "actualizar_edad"
	ActionApprove       Action = "aprobar_entrega"
	ActionTransition    Action = "cambiar_estado"
	ActionExpire        Action = "vencer_entrega"
	ActionSeed          Action = "sembrar"
)

// Table names of the audited records.
const (
	TablePersonas   = "personas"
	TableDeliveries = "bitacora_entregas"
	TableTeams      = "equipos"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")

// Entry is one row of the audit log: who did what to which record, with the
// record rendered before and after the change. Before is nil for creations.
type Entry struct {
	id       kernel.UUID
	actor    *kernel.UUID
	action   Action
	table    string
	recordID kernel.UUID
	before   any
	after    any
	reason   string
	origin   Origin
	at       time.Time

	isConstructed bool
}

// Change describes a mutation to record.
type Change struct {
	Actor    *kernel.UUID
	Action   Action
	Table    string
	RecordID kernel.UUID
	Before   any
	After    any
	Reason   string
}

// NewEntry stamps a change at the given time with the request origin.
func NewEntry(c Change, origin Origin, at time.Time) (*Entry, error) {
	e := &Entry{
		id:            kernel.NewUUID(),
		actor:         c.Actor,
		before:        c.Before,
		after:         c.After,
		reason:        strings.TrimSpace(c.Reason),
		origin:        origin,
		at:            at,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setAction(c.Action),
		e.setTable(c.Table),
		e.setRecordID(c.RecordID),
	); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Actor() *kernel.UUID {
	return e.actor
}

func (e *Entry) Action() Action {
	return e.action
}

func (e *Entry) Table() string {
	return e.table
}

func (e *Entry) RecordID() kernel.UUID {
	return e.recordID
}

func (e *Entry) Before() any {
	return e.before
}

func (e *Entry) After() any {
	return e.after
}

func (e *Entry) Reason() string {
	return e.reason
}

func (e *Entry) Origin() Origin {
	return e.origin
}

func (e *Entry) At() time.Time {
	return e.at
}

func (e *Entry) setAction(a Action) error {
	if strings.TrimSpace(string(a)) == "" {
		return errs.NewValueIsRequiredError("audit action")
	}
	e.action = a
	return nil
}

func (e *Entry) setTable(table string) error {
	if strings.TrimSpace(table) == "" {
		return errs.NewValueIsRequiredError("audit table")
	}
	e.table = table
	return nil
}

func (e *Entry) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("audit record id", err)
	}
	e.recordID = id
	return nil
}
