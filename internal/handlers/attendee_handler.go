package handlers

import (
	"errors"
	"net/http"

	"eventdesk/internal/helpers"
	"eventdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func CreateAttendeeHandler(repo models.AttendeesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		id, err := repo.CreateAttendee(c.Request.Context(), &attendee)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attendee created", "id": id.Hex()})
	}
}

func ListAttendeesHandler(repo models.AttendeesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees, err := repo.ListAttendees(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		resp := make([]models.AttendeeResponse, 0, len(attendees))
		for _, attendee := range attendees {
			resp = append(resp, attendee.AsResponse())
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetAttendeeHandler(repo models.AttendeesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		attendee, err := repo.GetAttendeeByID(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Attendee not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, attendee.AsResponse())
	}
}

func UpdateAttendeeHandler(repo models.AttendeesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		var attendee models.Attendee
		if err := c.ShouldBindJSON(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&attendee); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		err = repo.UpdateAttendee(c.Request.Context(), id, &attendee)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Attendee not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attendee updated"})
	}
}

func DeleteAttendeeHandler(repo models.AttendeesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		err = repo.DeleteAttendee(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Attendee not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attendee deleted"})
	}
}
