package handlers

import (
	"errors"
	"net/http"

	"eventdesk/internal/helpers"
	"eventdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func CreateEventHandler(repo models.EventsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		id, err := repo.CreateEvent(c.Request.Context(), &event)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event created", "id": id.Hex()})
	}
}

func ListEventsHandler(repo models.EventsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := repo.ListEvents(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		resp := make([]models.EventResponse, 0, len(events))
		for _, event := range events {
			resp = append(resp, event.AsResponse())
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetEventHandler(repo models.EventsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		event, err := repo.GetEventByID(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, event.AsResponse())
	}
}

func UpdateEventHandler(repo models.EventsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		err = repo.UpdateEvent(c.Request.Context(), id, &event)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event updated"})
	}
}

func DeleteEventHandler(repo models.EventsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		err = repo.DeleteEvent(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Event not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
	}
}
