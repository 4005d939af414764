package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"todo-list/internal/errors"
)

const tasksCollection = "tasks"

// Repository defines the interface for document store operations
type Repository interface {
	CreateTask(ctx context.Context, task *TaskDocument) error
	GetTask(ctx context.Context, id string) (*TaskDocument, error)
	DeleteTask(ctx context.Context, id string) (*DeleteOutcome, error)
	Close(ctx context.Context) error
}

// MongoRepository implements the Repository interface against a MongoDB
// deployment. It is constructed explicitly and passed down; there is no
// package-level connection.
type MongoRepository struct {
	client       *mongo.Client
	tasks        *mongo.Collection
	queryTimeout time.Duration
}

// New connects to the document store and returns a repository with an
// explicit lifecycle. Callers own Close.
func New(ctx context.Context, uri string, database string, queryTimeout time.Duration) (*MongoRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.NewDatabaseError("connect", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.NewDatabaseError("ping", err)
	}

	return &MongoRepository{
		client:       client,
		tasks:        client.Database(database).Collection(tasksCollection),
		queryTimeout: queryTimeout,
	}, nil
}

// Close disconnects from the document store
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoRepository) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// CreateTask persists a new task, assigning its identifier and creation
// timestamp. The document's ID and DateCreated fields are filled in place.
func (r *MongoRepository) CreateTask(ctx context.Context, task *TaskDocument) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	if task.DateCreated.IsZero() {
		task.DateCreated = time.Now().UTC()
	}

	result, err := r.tasks.InsertOne(ctx, task)
	if err != nil {
		return HandleDatabaseError("insert task", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.NewDatabaseError("insert task", fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}
	task.ID = oid
	return nil
}

// GetTask retrieves a task by its wire identifier
func (r *MongoRepository) GetTask(ctx context.Context, id string) (*TaskDocument, error) {
	oid, err := ParseTaskID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var task TaskDocument
	if err := r.tasks.FindOne(ctx, bson.M{"_id": oid}).Decode(&task); err != nil {
		return nil, HandleNoDocumentsError(err, "Task", id)
	}
	return &task, nil
}

// DeleteTask removes a task if present. Deleting an unknown identifier is
// not an error; the outcome reports zero deleted documents.
func (r *MongoRepository) DeleteTask(ctx context.Context, id string) (*DeleteOutcome, error) {
	oid, err := ParseTaskID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.opContext(ctx)
	defer cancel()

	result, err := r.tasks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, HandleDatabaseError("delete task", err)
	}
	return &DeleteOutcome{DeletedCount: result.DeletedCount}, nil
}
