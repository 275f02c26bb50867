package handlers

import (
	"errors"
	"net/http"

	"eventdesk/internal/helpers"
	"eventdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func CreateVenueHandler(repo models.VenuesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&venue); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		id, err := repo.CreateVenue(c.Request.Context(), &venue)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Venue created", "id": id.Hex()})
	}
}

func ListVenuesHandler(repo models.VenuesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		venues, err := repo.ListVenues(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		resp := make([]models.VenueResponse, 0, len(venues))
		for _, venue := range venues {
			resp = append(resp, venue.AsResponse())
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetVenueHandler(repo models.VenuesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		venue, err := repo.GetVenueByID(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Venue not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, venue.AsResponse())
	}
}

func UpdateVenueHandler(repo models.VenuesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		var venue models.Venue
		if err := c.ShouldBindJSON(&venue); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&venue); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		err = repo.UpdateVenue(c.Request.Context(), id, &venue)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Venue not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Venue updated"})
	}
}

func DeleteVenueHandler(repo models.VenuesRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		err = repo.DeleteVenue(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Venue not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
	}
}
