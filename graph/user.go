package graph

import (
	"time"
)

// User is a person on the network.
type User struct {
	NamedType
	firstName   string
	lastName    string
	username    string
	verified    bool
	birthday    string
	timezone    float64
	updatedTime time.Time
	categories  []Category
	emails      []string
}

func (u *User) GetFirstName() string { return u.firstName }
func (u *User) SetFirstName(v string) { u.firstName = v }
func (u *User) GetLastName() string { return u.lastName }
func (u *User) SetLastName(v string) { u.lastName = v }
func (u *User) GetUsername() string { return u.username }
func (u *User) SetUsername(v string) { u.username = v }
func (u *User) IsVerified() bool { return u.verified }
func (u *User) SetVerified(v bool) { u.verified = v }
func (u *User) GetBirthday() string { return u.birthday }
func (u *User) SetBirthday(v string) { u.birthday = v }
func (u *User) GetTimezone() float64 { return u.timezone }
func (u *User) SetTimezone(v float64) { u.timezone = v }
func (u *User) GetUpdatedTime() time.Time { return u.updatedTime }
func (u *User) SetUpdatedTime(v time.Time) { u.updatedTime = v }

// GetCategories returns the interests of the user. The irregular plural
// needs explicit adder and remover names in the accessor table.
func (u *User) GetCategories() []Category { return u.categories }
func (u *User) AddCategory(v Category) { u.categories = append(u.categories, v) }
func (u *User) RemoveCategory(v Category) { u.categories = removeFirst(u.categories, v) }

func (u *User) GetEmails() []string { return u.emails }
func (u *User) AddEmail(v string) { u.emails = append(u.emails, v) }
func (u *User) RemoveEmail(v string) { u.emails = removeFirst(u.emails, v) }

// Page is a public profile of a business, brand or community.
type Page struct {
	NamedType
	category string
	likes    int64
	username string
	canPost  bool
	website  string
	checkins uint32
	owners   []NamedType
}

func (p *Page) GetCategory() string { return p.category }
func (p *Page) SetCategory(v string) { p.category = v }
func (p *Page) GetLikes() int64 { return p.likes }
func (p *Page) SetLikes(v int64) { p.likes = v }
func (p *Page) GetUsername() string { return p.username }
func (p *Page) SetUsername(v string) { p.username = v }
func (p *Page) IsCanPost() bool { return p.canPost }
func (p *Page) SetCanPost(v bool) { p.canPost = v }
func (p *Page) GetWebsite() string { return p.website }
func (p *Page) SetWebsite(v string) { p.website = v }
func (p *Page) GetCheckins() uint32 { return p.checkins }
func (p *Page) SetCheckins(v uint32) { p.checkins = v }
func (p *Page) GetOwners() []NamedType { return p.owners }
func (p *Page) AddOwner(v NamedType) { p.owners = append(p.owners, v) }
func (p *Page) RemoveOwner(v NamedType) { p.owners = removeFirst(p.owners, v) }
