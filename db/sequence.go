package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func sequenceFilter(name string) bson.M {
	return bson.M{"_id": name}
}

func sequenceUpdate() bson.M {
	return bson.M{"$inc": bson.M{"seq": int64(1)}}
}

func sequenceOptions() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
}

// NextSequence returns the next value of a named counter, starting at 1.
// The upserted $inc makes concurrent callers see distinct values, so
// product and order ids stay unique without any scan-then-increment.
func NextSequence(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := CounterCollection.FindOneAndUpdate(
		ctx,
		sequenceFilter(name),
		sequenceUpdate(),
		sequenceOptions(),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
