package demographics

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

type DemographicMongoRepository struct {
	Collection *mongo.Collection
}

func NewDemographicMongoRepository(client *mongo.Client, dbName string) DemographicRepository {
	return &DemographicMongoRepository{
		Collection: client.Database(dbName).Collection(constvars.MongoCollectionDemographics),
	}
}

func (r *DemographicMongoRepository) CreateDemographic(ctx context.Context, demographic *models.Demographic) (string, error) {
	demographic.CreatedAt = time.Now()
	demographic.UpdatedAt = demographic.CreatedAt
	result, err := r.Collection.InsertOne(ctx, demographic)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DemographicMongoRepository) FindByID(ctx context.Context, demographicID string) (*models.Demographic, error) {
	objectID, err := primitive.ObjectIDFromHex(demographicID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var demographic models.Demographic
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&demographic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &demographic, nil
}

func (r *DemographicMongoRepository) FindByUserName(ctx context.Context, userName string) (*models.Demographic, error) {
	var demographic models.Demographic
	err := r.Collection.FindOne(ctx, bson.M{"userName": userName}).Decode(&demographic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &demographic, nil
}

func (r *DemographicMongoRepository) UpdateDemographic(ctx context.Context, demographic *models.Demographic) error {
	demographic.UpdatedAt = time.Now()
	filter := bson.M{"_id": demographic.ID}
	update := bson.M{"$set": bson.M{
		"userName":           demographic.UserName,
		"firstName":          demographic.FirstName,
		"lastName":           demographic.LastName,
		"dob":                demographic.DateOfBirth,
		"gender":             demographic.Gender,
		"bloodGroup":         demographic.BloodGroup,
		"maritalStatus":      demographic.MaritalStatus,
		"height":             demographic.Height,
		"weight":             demographic.Weight,
		"occupation":         demographic.Occupation,
		"address":            demographic.Address,
		"city":               demographic.City,
		"state":              demographic.State,
		"zipCode":            demographic.ZipCode,
		"emergencyContact":   demographic.EmergencyContact,
		"profilePicturePath": demographic.ProfilePicturePath,
		"updatedAt":          demographic.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DemographicMongoRepository) UpdateUserName(ctx context.Context, oldUserName, newUserName string) error {
	filter := bson.M{"userName": oldUserName}
	update := bson.M{"$set": bson.M{
		"userName":  newUserName,
		"updatedAt": time.Now(),
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
