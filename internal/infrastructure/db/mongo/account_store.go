package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeassist/goals/internal/api/store"
)

const collectionAccounts = "accounts"

// AccountStore keeps one document per account with its goals embedded.
type AccountStore struct {
	db  *mongo.Database
	col *mongo.Collection
}

var _ store.Store = (*AccountStore)(nil)

func NewAccountStore(db *mongo.Database) *AccountStore {
	return &AccountStore{db: db, col: db.Collection(collectionAccounts)}
}

// EnsureIndexes creates the unique email index.
func (s *AccountStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *AccountStore) CreateAccount(ctx context.Context, a store.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.Email = normalizeEmail(a.Email)
	if a.Goals == nil {
		a.Goals = []store.Goal{}
	}
	if _, err := s.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (store.Account, error) {
	return s.findOne(ctx, bson.M{"email": normalizeEmail(email)})
}

func (s *AccountStore) FindByID(ctx context.Context, id string) (store.Account, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// AddGoal appends g to the account's embedded goals.
func (s *AccountStore) AddGoal(ctx context.Context, userID string, g store.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$push": bson.M{"goals": g},
			"$set":  bson.M{"updated_at": g.UpdatedAt},
		},
	)
	if err != nil {
		return fmt.Errorf("push goal: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrAccountNotFound
	}
	return nil
}

// SetGoalStatus updates one embedded goal through the positional operator.
func (s *AccountStore) SetGoalStatus(ctx context.Context, userID, goalID, status string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID, "goals.id": goalID},
		bson.M{"$set": bson.M{
			"goals.$.status":     status,
			"goals.$.updated_at": at,
		}},
	)
	if err != nil {
		return fmt.Errorf("set goal status: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// Tell a missing account apart from a missing goal.
	if _, err := s.FindByID(ctx, userID); err != nil {
		return err
	}
	return store.ErrGoalNotFound
}

func (s *AccountStore) UpdateProfile(ctx context.Context, userID string, upd store.ProfileUpdate, at time.Time) (store.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": at}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}

	var a store.Account
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.Account{}, store.ErrAccountNotFound
	}
	if err != nil {
		return store.Account{}, fmt.Errorf("update profile: %w", err)
	}
	return a, nil
}

func (s *AccountStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *AccountStore) findOne(ctx context.Context, filter bson.M) (store.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a store.Account
	err := s.col.FindOne(ctx, filter).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.Account{}, store.ErrAccountNotFound
	}
	if err != nil {
		return store.Account{}, fmt.Errorf("find account: %w", err)
	}
	if a.Goals == nil {
		a.Goals = []store.Goal{}
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
