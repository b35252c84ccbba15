// Package broken holds types whose accessors break the naming conventions.
package broken

// Person renamed its name setter.
type Person struct {
	name string
	age  int
}

func (p *Person) GetName() string { return p.name }
func (p *Person) SetFullName(v string) { p.name = v }
func (p *Person) GetAge() int { return p.age }
func (p *Person) SetAge(v int) { p.age = v }

// Flagged exposes a Get getter for a bool.
type Flagged struct {
	enabled bool
}

func (f *Flagged) GetEnabled() bool { return f.enabled }
func (f *Flagged) SetEnabled(v bool) { f.enabled = v }

// Tagged matches two adder rules for the same field.
type Tagged struct {
	tags []string
}

func (t *Tagged) GetTags() []string { return t.tags }
func (t *Tagged) AddTag(v string) { t.tags = append(t.tags, v) }
func (t *Tagged) AddTags(v string) { t.tags = append(t.tags, v) }
func (t *Tagged) RemoveTag(v string) {}

// Counter has a setter of the wrong type and a getter that takes arguments.
type Counter struct {
	count int
	label string
}

func (c *Counter) GetCount() int { return c.count }
func (c *Counter) SetCount(v int64) { c.count = int(v) }
func (c *Counter) GetLabel(prefix string) string { return prefix + c.label }
func (c *Counter) SetLabel(v string) error {
	c.label = v
	return nil
}

// Spread takes its tags through a variadic adder.
type Spread struct {
	tags []string
}

func (s *Spread) GetTags() []string { return s.tags }
func (s *Spread) AddTag(tags ...string) { s.tags = append(s.tags, tags...) }
func (s *Spread) RemoveTag(tags ...string) { s.tags = nil }

// Legacy keeps a serialization marker and a cache that nothing should check.
type Legacy struct {
	serialVersionUID int64
	cachedAt         int64
	title            string
}

func (l *Legacy) GetTitle() string { return l.title }
func (l *Legacy) SetTitle(v string) { l.title = v }

// Described lists its own accessors.
type Described struct {
	secret string
}

func (d *Described) AccessorFields() []string { return []string{d.secret} }
