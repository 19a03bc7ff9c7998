package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"newsroom/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Insert inserts a new post document.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return r.col.InsertOne(ctx, p)
}

// FindByID returns a post by its ObjectID hex. mongo.ErrNoDocuments is
// returned unwrapped so callers can branch on it.
func (r *PostRepository) FindByID(ctx context.Context, hexID string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll returns the full post collection, hidden included. The digest
// batch reads this once per run and treats the slice as an immutable
// snapshot.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

type ListPostsOptions struct {
	Page         int
	PageSize     int
	Categories   []string
	UpcomingOnly bool

	// Now is compared against event_date when UpcomingOnly is set.
	Now time.Time
}

// ListVisible returns non-hidden posts with filters and pagination,
// sorted by created_at desc.
//
// UpcomingOnly keeps posts whose event already passed out of the newsroom
// page; posts without an event date are kept either way.
func (r *PostRepository) ListVisible(ctx context.Context, opt ListPostsOptions) ([]models.Post, int64, error) {
	filter := bson.M{"hidden": bson.M{"$ne": true}}
	if len(opt.Categories) > 0 {
		filter["categories"] = bson.M{"$in": opt.Categories}
	}
	if opt.UpcomingOnly {
		filter["$or"] = bson.A{
			bson.M{"event_date": bson.M{"$exists": false}},
			bson.M{"event_date": nil},
			bson.M{"event_date": bson.M{"$gte": opt.Now}},
		}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page := opt.Page
	if page < 1 {
		page = 1
	}
	pageSize := opt.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var posts []models.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update replaces the admin-editable fields and bumps updated_at.
func (r *PostRepository) Update(ctx context.Context, hexID string, p *models.Post) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"title":          p.Title,
			"content":        p.Content,
			"categories":     p.Categories,
			"event_date":     p.EventDate,
			"event_end_date": p.EventEndDate,
			"location":       p.Location,
			"image_url":      p.ImageURL,
			"updated_at":     time.Now(),
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

// SetHidden flips only the hidden flag and updated_at. Hiding is the soft
// delete used by the admin screens; documents are never removed here.
func (r *PostRepository) SetHidden(ctx context.Context, hexID string, hidden bool) error {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"hidden": hidden, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
