package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/whats-cookin/backend/model"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, p *model.Post) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Likes == nil {
		p.Likes = map[string]bool{}
	}
	if p.Comments == nil {
		p.Comments = []string{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post in natural (insertion) order; the feed
// service reverses it for newest-first display.
func (r *PostRepository) FindAll(ctx context.Context) ([]model.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepository) FindByUser(ctx context.Context, userID bson.ObjectID) ([]model.Post, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]model.Post, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ReplaceLikes writes back the full like set and returns the updated post.
func (r *PostRepository) ReplaceLikes(ctx context.Context, id bson.ObjectID, likes map[string]bool) (*model.Post, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{"likes": likes, "updated_at": time.Now().UTC()},
	})
}

// PushComment appends a comment and returns the updated post.
func (r *PostRepository) PushComment(ctx context.Context, id bson.ObjectID, comment string) (*model.Post, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *PostRepository) findOneAndUpdate(ctx context.Context, id bson.ObjectID, update bson.M) (*model.Post, error) {
	var p model.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
