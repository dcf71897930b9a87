// internal/app/features/library/handler.go
package library

import (
	uierrors "github.com/dalemusser/learnhub/internal/app/features/errors"
	resourcestore "github.com/dalemusser/learnhub/internal/app/store/resources"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the browsable library pages.
type Handler struct {
	Store  *resourcestore.Store
	Prefs  *Prefs
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a library Handler bound to the given Mongo database,
// preference store, and logger.
func NewHandler(db *mongo.Database, prefs *Prefs, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  resourcestore.New(db),
		Prefs:  prefs,
		Log:    logger,
		ErrLog: errLog,
	}
}
