package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"voyager/internal/models/request_models"
	"voyager/internal/services"
	"voyager/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// Dashboard godoc
// @Summary List the authenticated user's trips
// @Description Fetch all trips belonging to the current user, newest first
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router / [get]
func (t *TripController) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// CreateTrip godoc
// @Summary Create a trip with a generated itinerary
// @Description Generate a multi-day itinerary for a destination and persist it
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trip/new [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip itinerary created successfully!")
}

// GetTrip godoc
// @Summary View a trip's itinerary
// @Description Fetch a trip and its days, ordered by day number
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trip/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	trip, err := t.tripService.GetTripDetail(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// RegenerateDay godoc
// @Summary Regenerate a single day of a trip
// @Description Replace one day's content with freshly generated text
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param n path int true "Day number (1-indexed)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /trip/{id}/day/{n}/regenerate [post]
func (t *TripController) RegenerateDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	dayNum, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day number"})
		return
	}

	day, err := t.tripService.RegenerateDay(c.Request.Context(), tripID, userID, dayNum)
	if err != nil {
		// This endpoint keeps the bare JSON contract its clients poll:
		// {day, content} on success, {error} with a status otherwise.
		switch {
		case errors.Is(err, utils.ErrTripNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		case errors.Is(err, utils.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		case errors.Is(err, utils.ErrInvalidDayNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day number"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while regenerating the day"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"day":     day.DayNumber,
		"content": day.Content,
	})
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip and all of its itinerary days
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trip/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return uuid.Nil, false
	}
	return userID, true
}
