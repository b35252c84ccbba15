package graph

import (
	"time"

	"accessor-check/accessor/describe"
)

// RSVP is an invitee's answer to an event.
type RSVP string

// Event uses Go-style accessor names and describes them explicitly.
type Event struct {
	NamedType
	description string
	location    string
	startTime   time.Time
	endTime     time.Time
	rsvp        RSVP
	invited     []NamedType
}

func (e *Event) Description() string { return e.description }
func (e *Event) SetDescription(v string) { e.description = v }
func (e *Event) Location() string { return e.location }
func (e *Event) SetLocation(v string) { e.location = v }
func (e *Event) StartTime() time.Time { return e.startTime }
func (e *Event) SetStartTime(v time.Time) { e.startTime = v }
func (e *Event) EndTime() time.Time { return e.endTime }
func (e *Event) SetEndTime(v time.Time) { e.endTime = v }
func (e *Event) RSVP() RSVP { return e.rsvp }
func (e *Event) SetRSVP(v RSVP) { e.rsvp = v }
func (e *Event) Invited() []NamedType { return e.invited }
func (e *Event) Invite(v NamedType) { e.invited = append(e.invited, v) }
func (e *Event) Uninvite(v NamedType) { e.invited = removeFirst(e.invited, v) }

// AccessorFields implements describe.Describer.
func (e *Event) AccessorFields() []describe.Field {
	return []describe.Field{
		describe.Scalar("description", e.Description, e.SetDescription),
		describe.Scalar("location", e.Location, e.SetLocation),
		describe.Scalar("startTime", e.StartTime, e.SetStartTime),
		describe.Scalar("endTime", e.EndTime, e.SetEndTime),
		describe.Scalar("rsvp", e.RSVP, e.SetRSVP).WithExample(RSVP("attending")),
		describe.Collection("invited", e.Invited, e.Invite, e.Uninvite),
	}
}
