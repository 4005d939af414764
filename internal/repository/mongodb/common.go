package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"todo-list/internal/errors"
)

// ParseTaskID converts a wire identifier into an ObjectID. A malformed
// identifier is a validation failure, distinct from an unknown one.
func ParseTaskID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.NewValidationError("id must be a valid task id.", err)
	}
	return oid, nil
}

// HandleDatabaseError converts driver errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewDatabaseError(operation, err)
}

// HandleNoDocumentsError handles mongo.ErrNoDocuments consistently; any
// other error is a database failure.
func HandleNoDocumentsError(err error, resource string, id string) error {
	if err == mongo.ErrNoDocuments {
		return errors.NewNotFoundError(resource, id)
	}
	return HandleDatabaseError("find "+resource, err)
}
