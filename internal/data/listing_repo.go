package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
)

// listingDoc is the stored shape of a job listing. The logo is embedded as
// raw bytes; listings are small enough that a separate blob store is not
// worth the extra moving part.
type listingDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	ExternalPostID  string             `bson:"external_post_id"`
	YearsExperience string             `bson:"years_experience"`
	Description     string             `bson:"description"`
	Logo            []byte             `bson:"logo,omitempty"`
	CreatedBy       string             `bson:"created_by"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d *listingDoc) toModel() *model.Listing {
	return &model.Listing{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		ExternalPostID:  d.ExternalPostID,
		YearsExperience: d.YearsExperience,
		Description:     d.Description,
		Logo:            d.Logo,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ListingRepo provides document store operations for job listings.
type ListingRepo struct {
	coll         *mongo.Collection
	timeProvider TimeProvider
}

// NewListingRepo creates a new ListingRepo with real time provider.
func NewListingRepo(db *mongo.Database) *ListingRepo {
	return &ListingRepo{coll: db.Collection(CollectionJobs), timeProvider: &RealTimeProvider{}}
}

// NewListingRepoWithTimeProvider creates a new ListingRepo with a custom time provider (useful for tests).
func NewListingRepoWithTimeProvider(db *mongo.Database, tp TimeProvider) *ListingRepo {
	return &ListingRepo{coll: db.Collection(CollectionJobs), timeProvider: tp}
}

// Create inserts a new listing.
func (r *ListingRepo) Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error) {
	if req == nil {
		return nil, errors.New("create listing request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc := listingDoc{
		Title:           req.Title,
		ExternalPostID:  req.ExternalPostID,
		YearsExperience: req.YearsExperience,
		Description:     req.Description,
		Logo:            req.Logo,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       r.timeProvider.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toModel(), nil
}

// GetByID retrieves a listing by its store-generated id.
func (r *ListingRepo) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrListingNotFound
	}

	var doc listingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, apperrors.MapStoreError(err)
	}
	return doc.toModel(), nil
}

// List retrieves every listing in insertion order. ObjectIDs are
// time-prefixed, so sorting on _id preserves creation order.
func (r *ListingRepo) List(ctx context.Context) ([]*model.Listing, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}
	defer cursor.Close(ctx)

	listings := make([]*model.Listing, 0)
	for cursor.Next(ctx) {
		var doc listingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, apperrors.MapStoreError(err)
		}
		listings = append(listings, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.MapStoreError(err)
	}
	return listings, nil
}

// Delete removes a listing by id. Returns false when no record matched.
// Dependent applications are left in place.
func (r *ListingRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, apperrors.MapStoreError(err)
	}
	return res.DeletedCount > 0, nil
}
