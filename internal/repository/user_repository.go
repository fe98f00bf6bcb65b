package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jobboard/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetResetCredential(ctx context.Context, id bson.ObjectID, token string, expires time.Time) error
	// ConsumeResetCredential atomically matches a live credential, swaps in
	// the new password hash and clears the credential. A second call with
	// the same token, or a call after expiry, matches nothing.
	ConsumeResetCredential(ctx context.Context, token string, passwordHash string, now time.Time) (*models.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) SetResetCredential(ctx context.Context, id bson.ObjectID, token string, expires time.Time) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "reset_password_token", Value: token},
			{Key: "reset_password_expires", Value: expires},
		}},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) ConsumeResetCredential(ctx context.Context, token string, passwordHash string, now time.Time) (*models.User, error) {
	filter := bson.D{
		{Key: "reset_password_token", Value: token},
		{Key: "reset_password_expires", Value: bson.D{{Key: "$gt", Value: now}}},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "password_hash", Value: passwordHash}}},
		{Key: "$unset", Value: bson.D{
			{Key: "reset_password_token", Value: ""},
			{Key: "reset_password_expires", Value: ""},
		}},
	}

	var u models.User
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
