package physicians

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PhysicianMongoRepository struct {
	Collection *mongo.Collection
}

func NewPhysicianMongoRepository(client *mongo.Client, dbName string) PhysicianRepository {
	return &PhysicianMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionPhysicians),
	}
}

func (r *PhysicianMongoRepository) CreatePhysician(ctx context.Context, physician *models.Physician) (string, error) {
	physician.CreatedAt = time.Now()
	physician.UpdatedAt = physician.CreatedAt
	result, err := r.Collection.InsertOne(ctx, physician)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PhysicianMongoRepository) FindAll(ctx context.Context) ([]models.Physician, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var physicians []models.Physician
	if err := cursor.All(ctx, &physicians); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return physicians, nil
}

func (r *PhysicianMongoRepository) FindByID(ctx context.Context, physicianID string) (*models.Physician, error) {
	objectID, err := primitive.ObjectIDFromHex(physicianID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var physician models.Physician
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&physician)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &physician, nil
}

func (r *PhysicianMongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
