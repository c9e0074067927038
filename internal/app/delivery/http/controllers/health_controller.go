package controllers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// DatabasePinger is satisfied by *mongo.Client.
type DatabasePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthController struct {
	Log            *zap.Logger
	Database       DatabasePinger
	InternalConfig *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, database DatabasePinger, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:            logger,
		Database:       database,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withRequestTimeout(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.Database.Ping(ctx, readpref.Primary()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMongoDBPing(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, nil)
}
