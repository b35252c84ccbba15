package accessor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-check/accessor"
	"accessor-check/accessor/describe"
	"accessor-check/diagnostic"
)

// meetup follows Go naming instead of the Get/Set convention and describes
// its accessors itself.
type meetup struct {
	title    string
	capacity uint16
	speakers []string
	venue    privacy
}

func (m *meetup) Title() string { return m.title }
func (m *meetup) Rename(v string) { m.title = v }
func (m *meetup) Capacity() uint16 { return m.capacity }
func (m *meetup) Resize(v uint16) { m.capacity = v }
func (m *meetup) Speakers() []string { return m.speakers }
func (m *meetup) Invite(v string) { m.speakers = append(m.speakers, v) }
func (m *meetup) Uninvite(v string) { m.speakers = removeFirst(m.speakers, v) }
func (m *meetup) Venue() privacy { return m.venue }
func (m *meetup) MoveTo(v privacy) { m.venue = v }

func (m *meetup) AccessorFields() []describe.Field {
	return []describe.Field{
		describe.Scalar("title", m.Title, m.Rename),
		describe.Scalar("capacity", m.Capacity, m.Resize).WithExample(uint16(120)),
		describe.Collection("speakers", m.Speakers, m.Invite, m.Uninvite),
		describe.Scalar("venue", m.Venue, m.MoveTo),
	}
}

// brokenMeetup describes accessors that do not hold up.
type brokenMeetup struct {
	speakers []string
	when     chan int
}

func (b *brokenMeetup) AccessorFields() []describe.Field {
	return []describe.Field{
		describe.Scalar("title", func() string { return "fixed" }, func(string) {}),
		describe.Scalar[string]("summary", nil, func(string) {}),
		describe.Collection("speakers",
			func() []string { return b.speakers },
			func(v string) { b.speakers = append(b.speakers, v) },
			func(string) {}),
		describe.Collection("hosts",
			func() []string { return nil },
			func(string) { panic("closed") },
			func(string) {}),
		describe.Scalar("when", func() chan int { return b.when }, func(v chan int) { b.when = v }),
	}
}

func TestVerify_Describer(t *testing.T) {
	m := &meetup{}
	res := accessor.New().Verify(m)

	require.NoError(t, res.Error())
	assert.Equal(t, []string{
		"accessor_test.meetup.title",
		"accessor_test.meetup.capacity",
		"accessor_test.meetup.speakers",
		"accessor_test.meetup.venue",
	}, res.Checked)

	assert.Equal(t, uint16(120), m.capacity, "descriptor example is used")
	assert.Equal(t, privacy("test"), m.venue)
	assert.Empty(t, m.speakers)
}

func TestVerify_DescriberIgnoredField(t *testing.T) {
	v := accessor.New()
	v.AddIgnoredField("speakers")

	res := v.Verify(meetup{})
	require.NoError(t, res.Error())
	assert.Equal(t, []string{"accessor_test.meetup.speakers"}, res.Skipped)
}

func TestVerify_DescriberFailures(t *testing.T) {
	res := accessor.New().Verify(&brokenMeetup{})
	require.Len(t, res.Failures, 5, res.Error())

	codes := map[string]diagnostic.Code{}
	for _, f := range res.Failures {
		codes[f.Field] = f.Code
	}

	assert.Equal(t, map[string]diagnostic.Code{
		"title":    diagnostic.CodeValueMismatch,
		"summary":  diagnostic.CodeMethodNotFound,
		"speakers": diagnostic.CodeSizeMismatch,
		"hosts":    diagnostic.CodeInvocation,
		"when":     diagnostic.CodeNoExample,
	}, codes)

	assert.Contains(t, res.ByField("hosts")[0].Message, "panic: closed")
}

func TestVerify_DescriberFieldExampleOverride(t *testing.T) {
	m := &meetup{}
	v := accessor.New(accessor.WithFieldExample("capacity", uint16(7)))

	require.NoError(t, v.Verify(m).Error())
	assert.Equal(t, uint16(7), m.capacity)
}

// partialMeetup describes title but not notes.
type partialMeetup struct {
	meetup
	title string
	notes string
}

func (p *partialMeetup) AccessorFields() []describe.Field {
	return []describe.Field{
		describe.Scalar("title", func() string { return p.title }, func(v string) { p.title = v }),
	}
}

func TestVerify_DescriberMissingField(t *testing.T) {
	res := accessor.New().Verify(&partialMeetup{})

	require.Len(t, res.Failures, 1)
	assert.Equal(t, diagnostic.CodeMethodNotFound, res.Failures[0].Code)
	assert.Equal(t, "notes", res.Failures[0].Field)
	assert.Contains(t, res.Failures[0].Message, "field notes has no accessor descriptor")

	assert.Equal(t, []string{
		"accessor_test.partialMeetup.title",
		"accessor_test.partialMeetup.notes",
	}, res.Checked)
	assert.Equal(t, []string{"accessor_test.partialMeetup.meetup"}, res.Skipped)
}

func TestVerify_DescriberMissingFieldIgnored(t *testing.T) {
	v := accessor.New()
	v.AddIgnoredField("notes")

	res := v.Verify(&partialMeetup{})
	require.NoError(t, res.Error())
	assert.Equal(t, []string{
		"accessor_test.partialMeetup.meetup",
		"accessor_test.partialMeetup.notes",
	}, res.Skipped)
}
