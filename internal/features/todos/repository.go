package todos

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "todos"

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the indexes backing per-task listing and the cascade
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "taskId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "completed", Value: 1}}},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, todo *Todo) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	todo.CreatedAt = now
	todo.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		todo.ID = oid
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Todo, error) {
	var todo Todo
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*Todo, error) {
	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	if patch.TaskID != nil {
		set["taskId"] = *patch.TaskID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var todo Todo
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &todo, nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteByTask removes every todo owned by the task. Zero is a valid result.
func (r *Repository) DeleteByTask(ctx context.Context, taskID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"taskId": taskID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *Repository) List(ctx context.Context, query ListQuery) ([]Todo, error) {
	filter := bson.M{"taskId": query.TaskID}
	if query.Completed != nil {
		filter["completed"] = *query.Completed
	}

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []Todo{}
	}
	return todos, nil
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *Repository) CountCompleted(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"completed": true})
}
