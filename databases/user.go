package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitalcheck/vitalcheck-api/models"
)

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	InsertOne(ctx context.Context, user models.User) (*models.User, error)
	UpdateRole(ctx context.Context, id string, role models.Role) error
	Search(ctx context.Context, query string, limit int64) ([]models.User, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	user := &models.User{}
	if err := findOne(ctx, u.db.Collection(userName), bson.M{"_id": oid}, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	if err := findOne(ctx, u.db.Collection(userName), bson.M{"email": email}, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) InsertOne(ctx context.Context, user models.User) (*models.User, error) {
	user.CreatedAt = primitive.NewDateTimeFromTime(now())
	res, err := u.db.Collection(userName).InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = insertedID(res)
	return &user, nil
}

func (u *userDatabase) UpdateRole(ctx context.Context, id string, role models.Role) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return matchedOrNotFound(u.db.Collection(userName).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
	))
}

// Search matches patients whose name or email contains query, ignoring case
func (u *userDatabase) Search(ctx context.Context, query string, limit int64) ([]models.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"role": models.RolePatient,
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return findAll[models.User](ctx, u.db.Collection(userName), filter, opts)
}
