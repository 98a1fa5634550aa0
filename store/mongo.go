package store

import (
	"context"

	"fixit-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStorage implements IssueStorage on a MongoDB collection, for
// deployments that want reports to survive a restart. Same contract
// as MemoryStorage.
type MongoStorage struct {
	col *mongo.Collection
}

// NewMongoStorage wraps an issues collection.
func NewMongoStorage(col *mongo.Collection) *MongoStorage {
	return &MongoStorage{col: col}
}

func (m *MongoStorage) Insert(ctx context.Context, issue models.Issue) error {
	_, err := m.col.InsertOne(ctx, issue)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	return err
}

func (m *MongoStorage) Get(ctx context.Context, id string) (*models.Issue, error) {
	var issue models.Issue
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (m *MongoStorage) Update(ctx context.Context, issue models.Issue) error {
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": issue.ID}, issue)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) List(ctx context.Context) ([]models.Issue, error) {
	cursor, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}
