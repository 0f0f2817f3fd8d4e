package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/DiD92/wwyd/common/database"
	"github.com/DiD92/wwyd/core/domain/entity"
	"github.com/DiD92/wwyd/core/domain/repository"
)

func recordDoc(id primitive.ObjectID, publicID, hand string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "public_id", Value: publicID},
		{Key: "serial", Value: int64(3)},
		{Key: "hand_name", Value: hand},
		{Key: "notation", Value: "1112345678999m"},
		{Key: "shanten", Value: 0},
		{Key: "shape", Value: "regular"},
		{Key: "seed", Value: int64(42)},
		{Key: "created_at", Value: time.Unix(1700000000, 0).UTC()},
	}
}

func TestProblemRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "wwyd." + problemCollection

	mt.Run("save assigns an id", func(mt *mtest.T) {
		repo := NewProblemRepository(&database.MongoManager{Cli: mt.Client, Db: mt.DB})
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		rec := &entity.ProblemRecord{PublicID: "p-1", HandName: "Chinitsu"}
		require.NoError(mt, repo.Save(context.Background(), rec))
		assert.False(mt, rec.ID.IsZero())
	})

	mt.Run("save failure maps to ErrMongodb", func(mt *mtest.T) {
		repo := NewProblemRepository(&database.MongoManager{Cli: mt.Client, Db: mt.DB})
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key",
		}))

		err := repo.Save(context.Background(), &entity.ProblemRecord{PublicID: "p-1"})
		assert.ErrorIs(mt, err, repository.ErrMongodb)
	})

	mt.Run("find by public id", func(mt *mtest.T) {
		repo := NewProblemRepository(&database.MongoManager{Cli: mt.Client, Db: mt.DB})
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, recordDoc(id, "p-2", "Chinitsu")))

		rec, err := repo.FindByPublicID(context.Background(), "p-2")
		require.NoError(mt, err)
		assert.Equal(mt, id, rec.ID)
		assert.Equal(mt, "Chinitsu", rec.HandName)
		assert.Equal(mt, int64(42), rec.Seed)
	})

	mt.Run("missing problem", func(mt *mtest.T) {
		repo := NewProblemRepository(&database.MongoManager{Cli: mt.Client, Db: mt.DB})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByPublicID(context.Background(), "nope")
		assert.ErrorIs(mt, err, repository.ErrProblemNotFound)
	})

	mt.Run("find by hand", func(mt *mtest.T) {
		repo := NewProblemRepository(&database.MongoManager{Cli: mt.Client, Db: mt.DB})
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			recordDoc(primitive.NewObjectID(), "a", "Toitoi"),
			recordDoc(primitive.NewObjectID(), "b", "Toitoi"))
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)

		recs, err := repo.FindByHand(context.Background(), "Toitoi", 10)
		require.NoError(mt, err)
		require.Len(mt, recs, 2)
		assert.Equal(mt, "a", recs[0].PublicID)
		assert.Equal(mt, "b", recs[1].PublicID)
	})
}
