package reports

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(client *mongo.Client, dbName string) ReportRepository {
	return &ReportMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionReports),
	}
}

func (r *ReportMongoRepository) CreateReport(ctx context.Context, report *models.Report) (string, error) {
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	result, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReportMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userObjectID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, nil
}

// FindByFileNameAndUserID scopes the lookup to the owner so one user
// cannot fetch another's report by guessing filenames.
func (r *ReportMongoRepository) FindByFileNameAndUserID(ctx context.Context, filename, userID string) (*models.Report, error) {
	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var report models.Report
	err = r.Collection.FindOne(ctx, bson.M{"filename": filename, "userId": userObjectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}
