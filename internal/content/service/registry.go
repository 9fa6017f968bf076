package service

import (
	"context"
	"fmt"

	"github.com/portfolio-cms/portfolio-api/internal/content"
	"github.com/portfolio-cms/portfolio-api/internal/content/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// Registry holds one store per document kind. Handlers receive their store
// from here; nothing else is shared between requests.
type Registry struct {
	Hero          repository.Singleton[content.Hero]
	Portfolio     repository.Collection[content.Item]
	Articles      repository.Collection[content.Item]
	Education     repository.Collection[content.Education]
	Experience    repository.Collection[content.Experience]
	Organizations repository.Collection[content.Organization]
	Activities    repository.Collection[content.Activity]
	Skills        repository.Collection[content.Skill]

	backend string
	ping    func(ctx context.Context) error
}

// NewMemoryRegistry returns a Registry backed by in-memory repositories.
func NewMemoryRegistry() *Registry {
	return &Registry{
		Hero:          repository.NewMemoryRepo[content.Hero](),
		Portfolio:     repository.NewMemoryRepo[content.Item](),
		Articles:      repository.NewMemoryRepo[content.Item](),
		Education:     repository.NewMemoryRepo[content.Education](),
		Experience:    repository.NewMemoryRepo[content.Experience](),
		Organizations: repository.NewMemoryRepo[content.Organization](),
		Activities:    repository.NewMemoryRepo[content.Activity](),
		Skills:        repository.NewMemoryRepo[content.Skill](),
		backend:       "memory",
		ping:          func(context.Context) error { return nil },
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// NewMongoRegistry returns a Registry backed by collections of db and makes
// sure the listing indexes exist. Caller owns the client.
func NewMongoRegistry(ctx context.Context, db *mongo.Database) (*Registry, error) {
	portfolio := repository.NewMongoRepo[content.Item](db.Collection(content.CollectionPortfolio))
	articles := repository.NewMongoRepo[content.Item](db.Collection(content.CollectionArticles))
	education := repository.NewMongoRepo[content.Education](db.Collection(content.CollectionEducation))
	experience := repository.NewMongoRepo[content.Experience](db.Collection(content.CollectionExperience))
	organizations := repository.NewMongoRepo[content.Organization](db.Collection(content.CollectionOrganizations))
	activities := repository.NewMongoRepo[content.Activity](db.Collection(content.CollectionActivities))
	skills := repository.NewMongoRepo[content.Skill](db.Collection(content.CollectionSkills))

	for _, ix := range []indexer{portfolio, articles, education, experience, organizations, activities, skills} {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
	}

	return &Registry{
		Hero:          repository.NewMongoRepo[content.Hero](db.Collection(content.CollectionHero)),
		Portfolio:     portfolio,
		Articles:      articles,
		Education:     education,
		Experience:    experience,
		Organizations: organizations,
		Activities:    activities,
		Skills:        skills,
		backend:       "mongo",
		ping: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return fmt.Errorf("mongo ping: %w", err)
			}
			return nil
		},
	}, nil
}

// Backend names the storage in use ("memory" or "mongo").
func (r *Registry) Backend() string { return r.backend }

// Ping reports whether the backing store is reachable.
func (r *Registry) Ping(ctx context.Context) error { return r.ping(ctx) }
