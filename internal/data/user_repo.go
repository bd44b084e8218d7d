package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seekwell/jobboard/internal/domain/auth"
	"github.com/seekwell/jobboard/internal/domain/model"
	apperrors "github.com/seekwell/jobboard/internal/errors"
)

// userDoc is the stored shape of a user record.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash []byte             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *userDoc) toModel() *model.User {
	return &model.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         auth.Role(d.Role),
		CreatedAt:    d.CreatedAt,
	}
}

// UserRepo provides document store operations for user accounts.
type UserRepo struct {
	coll         *mongo.Collection
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection(CollectionUsers), timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *mongo.Database, tp TimeProvider) *UserRepo {
	return &UserRepo{coll: db.Collection(CollectionUsers), timeProvider: tp}
}

// EnsureIndexes creates the unique index on username. The application also
// pre-checks for duplicates to produce a friendly error, but the index is
// what makes concurrent registration of the same username impossible.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

// Create inserts a new user record with the given password hash.
func (r *UserRepo) Create(ctx context.Context, req *model.RegisterRequest, passwordHash []byte) (*model.User, error) {
	if req == nil {
		return nil, errors.New("register request is required")
	}
	if len(passwordHash) == 0 {
		return nil, errors.New("password hash is required")
	}

	doc := userDoc{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         string(req.Role),
		CreatedAt:    r.timeProvider.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameExists
		}
		return nil, apperrors.MapStoreError(err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toModel(), nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.MapStoreError(err)
	}
	return doc.toModel(), nil
}
