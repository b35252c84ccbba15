package graph

import (
	"slices"
	"time"
)

// Type is the base of every object returned by the Graph API.
type Type struct {
	id           string
	metadataType string
}

func (t *Type) GetID() string { return t.id }
func (t *Type) SetID(id string) { t.id = id }
func (t *Type) GetMetadataType() string { return t.metadataType }
func (t *Type) SetMetadataType(v string) { t.metadataType = v }

// NamedType is a Type with a display name. Most references between objects
// (authors, recipients, owners) are NamedTypes.
type NamedType struct {
	Type
	name string
}

func (n *NamedType) GetName() string { return n.name }
func (n *NamedType) SetName(name string) { n.name = name }

// Category classifies pages and users.
type Category struct {
	id   string
	name string
}

func (c *Category) GetID() string { return c.id }
func (c *Category) SetID(id string) { c.id = id }
func (c *Category) GetName() string { return c.name }
func (c *Category) SetName(n string) { c.name = n }

// Property is a free-form key/value attached to a post.
type Property struct {
	name string
	text string
	href string
}

func (p *Property) GetName() string { return p.name }
func (p *Property) SetName(v string) { p.name = v }
func (p *Property) GetText() string { return p.text }
func (p *Property) SetText(v string) { p.text = v }
func (p *Property) GetHref() string { return p.href }
func (p *Property) SetHref(v string) { p.href = v }

// removeFirst drops the first element equal to v.
func removeFirst[T comparable](s []T, v T) []T {
	if i := slices.Index(s, v); i >= 0 {
		return slices.Delete(s, i, i+1)
	}

	return s
}

// Message is a single message of a conversation thread.
type Message struct {
	Type
	message     string
	from        NamedType
	createdTime time.Time
	unread      int
	unseen      bool
}

func (m *Message) GetMessage() string { return m.message }
func (m *Message) SetMessage(v string) { m.message = v }
func (m *Message) GetFrom() NamedType { return m.from }
func (m *Message) SetFrom(v NamedType) { m.from = v }
func (m *Message) GetCreatedTime() time.Time { return m.createdTime }
func (m *Message) SetCreatedTime(v time.Time) { m.createdTime = v }
func (m *Message) GetUnread() int { return m.unread }
func (m *Message) SetUnread(v int) { m.unread = v }
func (m *Message) IsUnseen() bool { return m.unseen }
func (m *Message) SetUnseen(v bool) { m.unseen = v }

// Thread is a conversation between users.
type Thread struct {
	Type
	snippet     string
	unreadCount int
	canReply    bool
	lastMessage Message
	messages    []Message
	to          []NamedType
}

func (t *Thread) GetSnippet() string { return t.snippet }
func (t *Thread) SetSnippet(v string) { t.snippet = v }
func (t *Thread) GetUnreadCount() int { return t.unreadCount }
func (t *Thread) SetUnreadCount(v int) { t.unreadCount = v }
func (t *Thread) IsCanReply() bool { return t.canReply }
func (t *Thread) SetCanReply(v bool) { t.canReply = v }
func (t *Thread) GetLastMessage() Message { return t.lastMessage }
func (t *Thread) SetLastMessage(v Message) { t.lastMessage = v }
func (t *Thread) GetMessages() []Message { return t.messages }
func (t *Thread) AddMessage(v Message) { t.messages = append(t.messages, v) }
func (t *Thread) RemoveMessage(v Message) { t.messages = removeFirst(t.messages, v) }
func (t *Thread) GetTo() []NamedType { return t.to }
func (t *Thread) AddTo(v NamedType) { t.to = append(t.to, v) }
func (t *Thread) RemoveTo(v NamedType) { t.to = removeFirst(t.to, v) }
