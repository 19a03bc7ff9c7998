package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsroom/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByID returns a profile by the identity provider uid.
func (r *UserRepository) FindByID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertProfile creates the profile on first login and refreshes the email
// on later ones. Preference fields are left untouched so a re-login never
// wipes saved categories.
func (r *UserRepository) UpsertProfile(ctx context.Context, uid, email string) (*models.UserProfile, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{"email": email, "updated_at": now},
		"$setOnInsert": bson.M{
			"role":          models.RoleUser,
			"categories":    []string{},
			"starred_posts": []string{},
			"weekly_top5":   false,
			"created_at":    now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var u models.UserProfile
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": uid}, update, opts).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListSubscribed returns every profile with the weekly digest opt-in set.
func (r *UserRepository) ListSubscribed(ctx context.Context) ([]models.UserProfile, error) {
	cur, err := r.col.Find(ctx, bson.M{"weekly_top5": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.UserProfile
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePreferences stores the normalized category picks and the digest
// opt-in. Validation happens in the handler before this is called.
func (r *UserRepository) UpdatePreferences(ctx context.Context, uid string, categories []string, weeklyTop5 bool) error {
	res, err := r.col.UpdateByID(ctx, uid, bson.M{
		"$set": bson.M{
			"categories":  categories,
			"weekly_top5": weeklyTop5,
			"updated_at":  time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateStarredPosts replaces the user's favorites list wholesale, the same
// way the star toggle on the newsroom page writes it.
func (r *UserRepository) UpdateStarredPosts(ctx context.Context, uid string, starred []string) error {
	res, err := r.col.UpdateByID(ctx, uid, bson.M{
		"$set": bson.M{"starred_posts": starred, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
