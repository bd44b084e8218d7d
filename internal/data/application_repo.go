package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
)

// applicationDoc is the stored shape of an application. job_title is a
// denormalized copy of the listing title at submission time; job_id is not
// enforced as a reference, so deleting a listing orphans its applications.
type applicationDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	JobID          string             `bson:"job_id"`
	JobTitle       string             `bson:"job_title"`
	ApplicantName  string             `bson:"applicant_name"`
	ApplicantEmail string             `bson:"applicant_email"`
	Resume         []byte             `bson:"resume"`
	SubmittedAt    time.Time          `bson:"submitted_at"`
}

func (d *applicationDoc) toModel() *model.Application {
	return &model.Application{
		ID:             d.ID.Hex(),
		JobID:          d.JobID,
		JobTitle:       d.JobTitle,
		ApplicantName:  d.ApplicantName,
		ApplicantEmail: d.ApplicantEmail,
		Resume:         d.Resume,
		SubmittedAt:    d.SubmittedAt,
	}
}

// ApplicationRepo provides document store operations for applications.
type ApplicationRepo struct {
	coll         *mongo.Collection
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with real time provider.
func NewApplicationRepo(db *mongo.Database) *ApplicationRepo {
	return &ApplicationRepo{coll: db.Collection(CollectionApplications), timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a custom time provider (useful for tests).
func NewApplicationRepoWithTimeProvider(db *mongo.Database, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{coll: db.Collection(CollectionApplications), timeProvider: tp}
}

// Create inserts a new application with the denormalized listing title.
func (r *ApplicationRepo) Create(
	ctx context.Context,
	req *model.SubmitApplicationRequest,
	jobTitle string,
) (*model.Application, error) {
	if req == nil {
		return nil, errors.New("submit application request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc := applicationDoc{
		JobID:          req.JobID,
		JobTitle:       jobTitle,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		Resume:         req.Resume,
		SubmittedAt:    r.timeProvider.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, apperrors.MapStoreError(err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toModel(), nil
}

// CountByJobID counts applications submitted against a listing.
func (r *ApplicationRepo) CountByJobID(ctx context.Context, jobID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"job_id": jobID})
	if err != nil {
		return 0, apperrors.MapStoreError(err)
	}
	return count, nil
}
