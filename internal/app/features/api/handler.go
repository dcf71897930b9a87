// internal/app/features/api/handler.go
package api

import (
	uierrors "github.com/dalemusser/learnhub/internal/app/features/errors"
	"github.com/dalemusser/learnhub/internal/app/store/queries/resourcequeries"
	resourcestore "github.com/dalemusser/learnhub/internal/app/store/resources"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the REST resource endpoints (list/search, get, create,
// download increment).
//
// It is constructed once at startup in bootstrap, using the shared Mongo
// database handle and logger.
type Handler struct {
	Store  *resourcestore.Store
	Engine *resourcequeries.Engine
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Handler bound to the given Mongo database and
// logger.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	store := resourcestore.New(db)
	return &Handler{
		Store:  store,
		Engine: resourcequeries.New(store),
		Log:    logger,
		ErrLog: errLog,
	}
}
