package accessor_test

import (
	"errors"
	"slices"
	"strings"
	"time"
)

type person struct {
	name   string
	age    int
	score  float64
	active bool
	joined time.Time
}

func (p *person) GetName() string { return p.name }
func (p *person) SetName(v string) { p.name = v }
func (p *person) GetAge() int { return p.age }
func (p *person) SetAge(v int) { p.age = v }
func (p *person) GetScore() float64 { return p.score }
func (p *person) SetScore(v float64) { p.score = v }
func (p *person) IsActive() bool { return p.active }
func (p *person) SetActive(v bool) { p.active = v }
func (p *person) GetJoined() time.Time { return p.joined }
func (p *person) SetJoined(v time.Time) { p.joined = v }

// renamed has its setter renamed away from the convention.
type renamed struct {
	name string
}

func (r *renamed) GetName() string { return r.name }
func (r *renamed) SetFullName(v string) { r.name = v }

// getFlag has a Get-prefixed boolean getter.
type getFlag struct {
	active bool
}

func (g *getFlag) GetActive() bool { return g.active }
func (g *getFlag) SetActive(v bool) { g.active = v }

type tagged struct {
	tags []string
}

func (t *tagged) GetTags() []string { return t.tags }
func (t *tagged) AddTag(v string) { t.tags = append(t.tags, v) }
func (t *tagged) RemoveTag(v string) { t.tags = removeFirst(t.tags, v) }

type threaded struct {
	commentList []string
}

func (t *threaded) GetCommentList() []string { return t.commentList }
func (t *threaded) AddComment(v string) { t.commentList = append(t.commentList, v) }
func (t *threaded) RemoveComment(v string) { t.commentList = removeFirst(t.commentList, v) }

type propertied struct {
	properties []int
}

func (p *propertied) GetProperties() []int { return p.properties }
func (p *propertied) AddProperty(v int) { p.properties = append(p.properties, v) }
func (p *propertied) RemoveProperty(v int) { p.properties = removeFirst(p.properties, v) }

// ambiguous satisfies both the exact and the singular adder rule.
type ambiguous struct {
	items []string
}

func (a *ambiguous) GetItems() []string { return a.items }
func (a *ambiguous) AddItem(v string) { a.items = append(a.items, v) }
func (a *ambiguous) AddItems(v string) { a.items = append(a.items, v) }
func (a *ambiguous) RemoveItem(v string) { a.items = removeFirst(a.items, v) }

// sticky ignores its setter.
type sticky struct {
	name string
}

func (s *sticky) GetName() string { return "constant" }
func (s *sticky) SetName(v string) { s.name = v }

type panicky struct {
	name string
}

func (p *panicky) GetName() string { return p.name }
func (p *panicky) SetName(v string) { panic("read-only") }

var errFrozen = errors.New("frozen")

type failing struct {
	name string
}

func (f *failing) GetName() string { return f.name }
func (f *failing) SetName(v string) error { return errFrozen }

// leaky never removes anything.
type leaky struct {
	tags []string
}

func (l *leaky) GetTags() []string { return l.tags }
func (l *leaky) AddTag(v string) { l.tags = append(l.tags, v) }
func (l *leaky) RemoveTag(v string) {}

type channelled struct {
	events chan int
}

func (c *channelled) GetEvents() chan int { return c.events }
func (c *channelled) SetEvents(v chan int) { c.events = v }

type serializable struct {
	serialVersionUID int64
	name             string
}

func (s *serializable) GetName() string { return s.name }
func (s *serializable) SetName(v string) { s.name = v }

type base struct {
	id string
}

func (b *base) GetID() string { return b.id }
func (b *base) SetID(v string) { b.id = v }

type derived struct {
	base
	_     int
	title string
}

func (d *derived) GetTitle() string { return d.title }
func (d *derived) SetTitle(v string) { d.title = v }

type privacy string

type post struct {
	privacy privacy
	payload []byte
}

func (p *post) GetPrivacy() privacy { return p.privacy }
func (p *post) SetPrivacy(v privacy) { p.privacy = v }
func (p *post) GetPayload() []byte { return p.payload }
func (p *post) SetPayload(v []byte) { p.payload = v }

// valueReceiver can only be verified through a pointer copy.
type valueReceiver struct {
	count int
}

func (v valueReceiver) GetCount() int { return v.count }
func (v *valueReceiver) SetCount(n int) { v.count = n }

type author struct {
	Handle string
}

type article struct {
	author  author
	authors []author
	cover   *author
}

func (a *article) GetAuthor() author { return a.author }
func (a *article) SetAuthor(v author) { a.author = v }
func (a *article) GetAuthors() []author { return a.authors }
func (a *article) AddAuthor(v author) { a.authors = append(a.authors, v) }
func (a *article) RemoveAuthor(v author) { a.authors = removeFirst(a.authors, v) }
func (a *article) GetCover() *author { return a.cover }
func (a *article) SetCover(v *author) { v.Handle = "mutated"; a.cover = v }

// legacy uses names no rule can derive.
type legacy struct {
	categories []string
	title      string
}

func (l *legacy) GetCategories() []string { return l.categories }
func (l *legacy) AddCategory(v string) { l.categories = append(l.categories, v) }
func (l *legacy) RemoveCategory(v string) { l.categories = removeFirst(l.categories, v) }
func (l *legacy) Title() string { return l.title }
func (l *legacy) Retitle(v string) { l.title = v }

// wrongSignatures has accessors that cannot be used as such.
type wrongSignatures struct {
	name  string
	count int
}

func (w *wrongSignatures) GetName() string { return w.name }
func (w *wrongSignatures) SetName(v []byte) { w.name = string(v) }
func (w *wrongSignatures) GetCount(scale int) int { return w.count * scale }
func (w *wrongSignatures) SetCount(v int) { w.count = v }

// variadicTags takes its tags as a variadic adder and remover.
type variadicTags struct {
	tags []string
}

func (v *variadicTags) GetTags() []string { return v.tags }
func (v *variadicTags) AddTag(tags ...string) { v.tags = append(v.tags, tags...) }
func (v *variadicTags) RemoveTag(tags ...string) { v.tags = nil }

// variadicName has a variadic setter.
type variadicName struct {
	name string
}

func (v *variadicName) GetName() string { return v.name }
func (v *variadicName) SetName(names ...string) { v.name = strings.Join(names, " ") }

func removeFirst[T comparable](s []T, v T) []T {
	if i := slices.Index(s, v); i >= 0 {
		return slices.Delete(s, i, i+1)
	}

	return s
}
