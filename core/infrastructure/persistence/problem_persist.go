package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DiD92/wwyd/common/database"
	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/core/domain/entity"
	"github.com/DiD92/wwyd/core/domain/repository"
)

const problemCollection = "problems"

type ProblemRepository struct {
	mongo *database.MongoManager
}

func NewProblemRepository(mongo *database.MongoManager) repository.ProblemRepository {
	return &ProblemRepository{mongo: mongo}
}

// Save 保存题目
func (r *ProblemRepository) Save(ctx context.Context, rec *entity.ProblemRecord) error {
	collection := r.mongo.Db.Collection(problemCollection)

	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if _, err := collection.InsertOne(ctx, rec); err != nil {
		log.Error("保存题目失败: %v", err)
		return repository.ErrMongodb
	}
	return nil
}

// FindByPublicID 根据对外 ID 查找题目
func (r *ProblemRepository) FindByPublicID(ctx context.Context, publicID string) (*entity.ProblemRecord, error) {
	collection := r.mongo.Db.Collection(problemCollection)

	var rec entity.ProblemRecord
	err := collection.FindOne(ctx, bson.M{"public_id": publicID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProblemNotFound
		}
		log.Error("查询题目失败: %v", err)
		return nil, repository.ErrMongodb
	}
	return &rec, nil
}

// FindByHand 按生成时间倒序
func (r *ProblemRepository) FindByHand(ctx context.Context, handName string, limit int) ([]*entity.ProblemRecord, error) {
	collection := r.mongo.Db.Collection(problemCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{"hand_name": handName}, opts)
	if err != nil {
		log.Error("查询手牌题目失败: %v", err)
		return nil, repository.ErrMongodb
	}
	defer cursor.Close(ctx)

	records := make([]*entity.ProblemRecord, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		log.Error("解析题目失败: %v", err)
		return nil, repository.ErrMongodb
	}
	return records, nil
}
