package controllers

import (
	"errors"
	"net/http"

	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const contextCaller = "caller"

// callerFrom returns the caller stored by AuthController.RequireCaller.
func callerFrom(c *gin.Context) (services.Caller, bool) {
	v, exists := c.Get(contextCaller)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Caller not found in context")
		return services.Caller{}, false
	}
	caller, ok := v.(services.Caller)
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid caller in context")
		return services.Caller{}, false
	}
	return caller, true
}

func paramID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// optionalID parses an id field from a request body; empty means uuid.Nil.
func optionalID(c *gin.Context, raw, what string) (uuid.UUID, bool) {
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuthFailure):
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
