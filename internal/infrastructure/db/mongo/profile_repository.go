package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/accessflow/accessflow/internal/core/domain"
)

const profilesCollection = "profiles"

type MongoProfileRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{db: db, coll: db.Collection(profilesCollection)}
}

type mongoProfileDoc struct {
	ID          int64  `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
}

func (r *MongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if _, err := r.FindByParams(ctx, domain.ProfileFilter{Name: profile.Name}); err == nil {
		return nil, domain.ErrProfileExists
	} else if err != domain.ErrNoMatch {
		return nil, err
	}

	id, err := nextID(ctx, r.db, profilesCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoProfileDoc{ID: id, Name: profile.Name, Description: profile.Description}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return r.FindByID(ctx, id)
}

func (r *MongoProfileRepository) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"_id": id}, domain.ErrProfileNotFound)
}

func (r *MongoProfileRepository) FindByParams(ctx context.Context, filter domain.ProfileFilter) (*domain.Profile, error) {
	query := bson.M{}
	if filter.ID != nil {
		query["_id"] = *filter.ID
	}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": "^" + filter.Name, "$options": "i"}
	}
	return r.findOne(ctx, query, domain.ErrNoMatch)
}

func (r *MongoProfileRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cur.Close(ctx)

	return decodeProfiles(ctx, cur)
}

func (r *MongoProfileRepository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	return decodeProfiles(ctx, cur)
}

func (r *MongoProfileRepository) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	doc := mongoProfileDoc{ID: profile.ID, Name: profile.Name, Description: profile.Description}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": profile.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.FindByID(ctx, profile.ID)
}

func (r *MongoProfileRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *MongoProfileRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}

func (r *MongoProfileRepository) findOne(ctx context.Context, query bson.M, notFound error) (*domain.Profile, error) {
	var doc mongoProfileDoc
	if err := r.coll.FindOne(ctx, query).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, notFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	p := domain.Profile{ID: doc.ID, Name: doc.Name, Description: doc.Description}
	return &p, nil
}

func decodeProfiles(ctx context.Context, cur *mongo.Cursor) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0)
	for cur.Next(ctx) {
		var doc mongoProfileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		profiles = append(profiles, domain.Profile{ID: doc.ID, Name: doc.Name, Description: doc.Description})
	}
	return profiles, cur.Err()
}
