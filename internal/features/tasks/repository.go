package tasks

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "tasks"

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(CollectionName)}
}

// EnsureIndexes creates the indexes backing listing and dashboard counts
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "priority", Value: 1}}},
	})
	return err
}

func (r *Repository) Create(ctx context.Context, task *Task) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		task.ID = oid
	}
	return nil
}

// GetByID returns nil, nil when no task has the id
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Task, error) {
	var task Task
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *Repository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies the patch and returns the updated task, or nil, nil when
// no task has the id.
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*Task, error) {
	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		set["dueDate"] = *patch.DueDate
	}

	update := bson.M{"$set": set}
	if patch.ClearDueDate {
		update["$unset"] = bson.M{"dueDate": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task Task
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// Delete removes the task and reports how many documents were deleted
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}

	return r.find(ctx, query, options.Find().SetSort(newestFirst))
}

// Recent returns the limit most recently created tasks
func (r *Repository) Recent(ctx context.Context, limit int) ([]Task, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Task, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *Repository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// CountOpenByPriority counts tasks of the given priority that are not completed
func (r *Repository) CountOpenByPriority(ctx context.Context, priority Priority) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"priority": priority,
		"status":   bson.M{"$ne": StatusCompleted},
	})
}
