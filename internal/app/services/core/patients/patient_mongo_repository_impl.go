package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	return repo.findOne(ctx, bson.M{"_id": patientID})
}

func (repo *PatientMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return repo.findOne(ctx, bson.M{"correo": email})
}

func (repo *PatientMongoRepository) FindByEmailExcludingID(ctx context.Context, email string, excludedID primitive.ObjectID) (*models.Patient, error) {
	filter := bson.M{
		"correo": email,
		"_id":    bson.M{"$ne": excludedID},
	}
	return repo.findOne(ctx, filter)
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (primitive.ObjectID, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(nil)
	}
	return insertedID, nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patientID primitive.ObjectID, update *models.PatientUpdate) error {
	if update.IsEmpty() {
		return nil
	}
	_, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": patientID}, bson.M{"$set": update.ConvertToBsonM()})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}
