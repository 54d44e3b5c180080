package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propertyai/agent-platform/internal/core/domain"
)

const draftsCollection = "drafts"

type DraftRepository struct {
	col *mongo.Collection
}

func NewDraftRepository(db *mongo.Database) *DraftRepository {
	return &DraftRepository{col: db.Collection(draftsCollection)}
}

func (r *DraftRepository) Create(ctx context.Context, d *domain.Draft) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, d)
	return err
}

func (r *DraftRepository) FindByID(ctx context.Context, id string) (*domain.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Draft
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindUnpublished returns the single unpublished draft for a (property,
// language) pair. The uniqueness invariant is maintained by the service:
// generation checks here before creating.
func (r *DraftRepository) FindUnpublished(ctx context.Context, propertyID, language string) (*domain.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"property_id": propertyID,
		"language":    language,
		"status":      bson.M{"$ne": domain.DraftPublished},
	}

	var d domain.Draft
	err := r.col.FindOne(ctx, filter).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DraftRepository) ListUnpublished(ctx context.Context, propertyID string) ([]*domain.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{
		"property_id": propertyID,
		"status":      bson.M{"$ne": domain.DraftPublished},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var drafts []*domain.Draft
	if err := cur.All(ctx, &drafts); err != nil {
		return nil, err
	}
	return drafts, nil
}

func (r *DraftRepository) Update(ctx context.Context, d *domain.Draft) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

// CountByAgent returns the total generated and published draft counts for
// the dashboard.
func (r *DraftRepository) CountByAgent(ctx context.Context, agentID string) (int64, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	generated, err := r.col.CountDocuments(ctx, bson.M{"agent_id": agentID})
	if err != nil {
		return 0, 0, err
	}
	published, err := r.col.CountDocuments(ctx, bson.M{
		"agent_id": agentID,
		"status":   domain.DraftPublished,
	})
	if err != nil {
		return 0, 0, err
	}
	return generated, published, nil
}

// EnsureIndexes creates the indexes the publishing queries rely on.
func (r *DraftRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "language", Value: 1}}},
		{Keys: bson.D{{Key: "agent_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
