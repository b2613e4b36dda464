package db

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestSequenceFilter(t *testing.T) {
	for _, name := range []string{"productid", "orderid"} {
		filter := sequenceFilter(name)
		if len(filter) != 1 {
			t.Fatalf("filter for %q has %d keys, want 1", name, len(filter))
		}
		if got := filter["_id"]; got != name {
			t.Errorf("filter _id = %v, want %q", got, name)
		}
	}
}

func TestSequenceUpdate(t *testing.T) {
	update := sequenceUpdate()
	inc, ok := update["$inc"].(bson.M)
	if !ok {
		t.Fatalf("update has no $inc document: %v", update)
	}
	if len(update) != 1 {
		t.Errorf("update has %d operators, want only $inc", len(update))
	}
	if got := inc["seq"]; got != int64(1) {
		t.Errorf("$inc seq = %v (%T), want int64(1)", got, got)
	}
}

func TestSequenceOptions(t *testing.T) {
	opts := sequenceOptions()
	if opts.Upsert == nil || !*opts.Upsert {
		t.Error("upsert not set; a fresh counter would never be created")
	}
	if opts.ReturnDocument == nil || *opts.ReturnDocument != options.After {
		t.Error("ReturnDocument != After; callers would see the pre-increment value")
	}
}
