package graph

import (
	"time"
)

// Privacy is the audience of a post.
type Privacy string

const (
	PrivacyEveryone Privacy = "EVERYONE"
	PrivacyFriends  Privacy = "ALL_FRIENDS"
	PrivacySelf     Privacy = "SELF"
)

// Comment is a reply to a post or another comment.
type Comment struct {
	Type
	from        NamedType
	message     string
	likeCount   int64
	userLikes   bool
	canRemove   bool
	createdTime time.Time
}

func (c *Comment) GetFrom() NamedType { return c.from }
func (c *Comment) SetFrom(v NamedType) { c.from = v }
func (c *Comment) GetMessage() string { return c.message }
func (c *Comment) SetMessage(v string) { c.message = v }
func (c *Comment) GetLikeCount() int64 { return c.likeCount }
func (c *Comment) SetLikeCount(v int64) { c.likeCount = v }
func (c *Comment) IsUserLikes() bool { return c.userLikes }
func (c *Comment) SetUserLikes(v bool) { c.userLikes = v }
func (c *Comment) IsCanRemove() bool { return c.canRemove }
func (c *Comment) SetCanRemove(v bool) { c.canRemove = v }
func (c *Comment) GetCreatedTime() time.Time { return c.createdTime }
func (c *Comment) SetCreatedTime(v time.Time) { c.createdTime = v }

// Post is an entry in a feed.
type Post struct {
	Type
	from        NamedType
	message     string
	picture     string
	likesCount  int64
	published   bool
	hidden      bool
	privacy     Privacy
	createdTime time.Time
	tags        []string
	commentList []Comment
	properties  []Property
	to          []NamedType
}

func (p *Post) GetFrom() NamedType { return p.from }
func (p *Post) SetFrom(v NamedType) { p.from = v }
func (p *Post) GetMessage() string { return p.message }
func (p *Post) SetMessage(v string) { p.message = v }
func (p *Post) GetPicture() string { return p.picture }
func (p *Post) SetPicture(v string) { p.picture = v }
func (p *Post) GetLikesCount() int64 { return p.likesCount }
func (p *Post) SetLikesCount(v int64) { p.likesCount = v }
func (p *Post) IsPublished() bool { return p.published }
func (p *Post) SetPublished(v bool) { p.published = v }
func (p *Post) IsHidden() bool { return p.hidden }
func (p *Post) SetHidden(v bool) { p.hidden = v }
func (p *Post) GetPrivacy() Privacy { return p.privacy }
func (p *Post) SetPrivacy(v Privacy) { p.privacy = v }
func (p *Post) GetCreatedTime() time.Time { return p.createdTime }
func (p *Post) SetCreatedTime(v time.Time) { p.createdTime = v }

func (p *Post) GetTags() []string { return p.tags }
func (p *Post) AddTag(v string) { p.tags = append(p.tags, v) }
func (p *Post) RemoveTag(v string) { p.tags = removeFirst(p.tags, v) }

func (p *Post) GetCommentList() []Comment { return p.commentList }
func (p *Post) AddComment(v Comment) { p.commentList = append(p.commentList, v) }
func (p *Post) RemoveComment(v Comment) { p.commentList = removeFirst(p.commentList, v) }

func (p *Post) GetProperties() []Property { return p.properties }
func (p *Post) AddProperty(v Property) { p.properties = append(p.properties, v) }
func (p *Post) RemoveProperty(v Property) { p.properties = removeFirst(p.properties, v) }

func (p *Post) GetTo() []NamedType { return p.to }
func (p *Post) AddTo(v NamedType) { p.to = append(p.to, v) }
func (p *Post) RemoveTo(v NamedType) { p.to = removeFirst(p.to, v) }
