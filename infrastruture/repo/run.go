package repo

import (
	"context"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-paradox/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunRepo handles the persistence of finished runs.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// Save inserts or updates a run.
func (r *RunRepo) Save(ctx context.Context, run *dmn.Run) error {
	filter := bson.M{"_id": run.ID}
	update := bson.M{
		"$set": bson.M{
			"score":         run.Score,
			"duration":      run.Duration,
			"clonesSpawned": run.ClonesSpawned,
			"endedAt":       run.EndedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Top returns up to limit runs ordered by score, most recent first on ties.
func (r *RunRepo) Top(ctx context.Context, limit int64) ([]*dmn.Run, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "endedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer cursor.Close(ctx)

	runs := make([]*dmn.Run, 0)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, fmt.Errorf("decoding runs: %w", err)
	}
	return runs, nil
}
