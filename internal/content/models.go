package content

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mongo collection names. They match the pluralised names the existing
// portfolio database already uses, so data created before the Go service
// is read unchanged.
const (
	CollectionHero          = "heroes"
	CollectionPortfolio     = "portfolios"
	CollectionArticles      = "articles"
	CollectionEducation     = "educations"
	CollectionExperience    = "experiences"
	CollectionOrganizations = "organizations"
	CollectionActivities    = "activities"
	CollectionSkills        = "skills"
)

// Collections lists every collection name in a stable order.
func Collections() []string {
	return []string{
		CollectionHero,
		CollectionPortfolio,
		CollectionArticles,
		CollectionEducation,
		CollectionExperience,
		CollectionOrganizations,
		CollectionActivities,
		CollectionSkills,
	}
}

// Meta holds the store-assigned identity and timestamps carried by every record.
// Values supplied by clients are discarded before a write.
type Meta struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" form:"-"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" form:"-"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" form:"-"`
}

// Metadata is promoted to every record that embeds Meta.
func (m *Meta) Metadata() *Meta { return m }

// Record is the capability set the generic stores and handlers need from a
// collection type. It is satisfied by the pointer of each record type below.
type Record[T any] interface {
	*T
	Metadata() *Meta
	// Apply copies every non-nil field of patch onto the receiver.
	Apply(patch *T)
	// SetFields returns the non-nil declared fields as a $set document.
	SetFields() bson.M
}

// Hero is the singleton banner shown at the top of the site.
type Hero struct {
	Meta        `bson:",inline"`
	PreTitle    *Text `json:"preTitle,omitempty" bson:"preTitle,omitempty" form:"preTitle"`
	Name        *Text `json:"name,omitempty" bson:"name,omitempty" form:"name"`
	Highlight   *Text `json:"highlight,omitempty" bson:"highlight,omitempty" form:"highlight"`
	Description *Text `json:"description,omitempty" bson:"description,omitempty" form:"description"`
	ImageData   *Text `json:"imageData,omitempty" bson:"imageData,omitempty" form:"imageData"`
}

func (h *Hero) Apply(p *Hero) {
	merge(&h.PreTitle, p.PreTitle)
	merge(&h.Name, p.Name)
	merge(&h.Highlight, p.Highlight)
	merge(&h.Description, p.Description)
	merge(&h.ImageData, p.ImageData)
}

func (h *Hero) SetFields() bson.M {
	m := bson.M{}
	set(m, "preTitle", h.PreTitle)
	set(m, "name", h.Name)
	set(m, "highlight", h.Highlight)
	set(m, "description", h.Description)
	set(m, "imageData", h.ImageData)
	return m
}

// Item is shared by the portfolio and articles collections.
type Item struct {
	Meta        `bson:",inline"`
	Title       *Text `json:"title,omitempty" bson:"title,omitempty" form:"title"`
	Description *Text `json:"description,omitempty" bson:"description,omitempty" form:"description"`
	Tags        *Tags `json:"tags,omitempty" bson:"tags,omitempty" form:"tags"`
	ImageData   *Text `json:"imageData,omitempty" bson:"imageData,omitempty" form:"imageData"`
}

func (it *Item) Apply(p *Item) {
	merge(&it.Title, p.Title)
	merge(&it.Description, p.Description)
	if p.Tags != nil {
		tags := slices.Clone(*p.Tags)
		if tags == nil {
			tags = Tags{}
		}
		it.Tags = &tags
	}
	merge(&it.ImageData, p.ImageData)
}

func (it *Item) SetFields() bson.M {
	m := bson.M{}
	set(m, "title", it.Title)
	set(m, "description", it.Description)
	set(m, "tags", it.Tags)
	set(m, "imageData", it.ImageData)
	return m
}

type Education struct {
	Meta   `bson:",inline"`
	Title  *Text `json:"title,omitempty" bson:"title,omitempty" form:"title"`
	Degree *Text `json:"degree,omitempty" bson:"degree,omitempty" form:"degree"`
	Years  *Text `json:"years,omitempty" bson:"years,omitempty" form:"years"`
}

func (e *Education) Apply(p *Education) {
	merge(&e.Title, p.Title)
	merge(&e.Degree, p.Degree)
	merge(&e.Years, p.Years)
}

func (e *Education) SetFields() bson.M {
	m := bson.M{}
	set(m, "title", e.Title)
	set(m, "degree", e.Degree)
	set(m, "years", e.Years)
	return m
}

type Experience struct {
	Meta    `bson:",inline"`
	Title   *Text `json:"title,omitempty" bson:"title,omitempty" form:"title"`
	Company *Text `json:"company,omitempty" bson:"company,omitempty" form:"company"`
}

func (e *Experience) Apply(p *Experience) {
	merge(&e.Title, p.Title)
	merge(&e.Company, p.Company)
}

func (e *Experience) SetFields() bson.M {
	m := bson.M{}
	set(m, "title", e.Title)
	set(m, "company", e.Company)
	return m
}

type Organization struct {
	Meta `bson:",inline"`
	Name *Text `json:"name,omitempty" bson:"name,omitempty" form:"name"`
	Role *Text `json:"role,omitempty" bson:"role,omitempty" form:"role"`
}

func (o *Organization) Apply(p *Organization) {
	merge(&o.Name, p.Name)
	merge(&o.Role, p.Role)
}

func (o *Organization) SetFields() bson.M {
	m := bson.M{}
	set(m, "name", o.Name)
	set(m, "role", o.Role)
	return m
}

type Activity struct {
	Meta        `bson:",inline"`
	Title       *Text `json:"title,omitempty" bson:"title,omitempty" form:"title"`
	Description *Text `json:"description,omitempty" bson:"description,omitempty" form:"description"`
}

func (a *Activity) Apply(p *Activity) {
	merge(&a.Title, p.Title)
	merge(&a.Description, p.Description)
}

func (a *Activity) SetFields() bson.M {
	m := bson.M{}
	set(m, "title", a.Title)
	set(m, "description", a.Description)
	return m
}

type Skill struct {
	Meta `bson:",inline"`
	Name *Text `json:"name,omitempty" bson:"name,omitempty" form:"name"`
}

func (s *Skill) Apply(p *Skill) {
	merge(&s.Name, p.Name)
}

func (s *Skill) SetFields() bson.M {
	m := bson.M{}
	set(m, "name", s.Name)
	return m
}

// merge replaces *dst with a copy of src when src is set.
func merge[V any](dst **V, src *V) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}

func set[V any](m bson.M, key string, v *V) {
	if v != nil {
		m[key] = *v
	}
}
