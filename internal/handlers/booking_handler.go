package handlers

import (
	"errors"
	"net/http"

	"eventdesk/internal/helpers"
	"eventdesk/internal/models"

	"github.com/gin-gonic/gin"
)

func CreateBookingHandler(repo models.BookingsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		id, err := repo.CreateBooking(c.Request.Context(), &booking)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking created", "id": id.Hex()})
	}
}

func ListBookingsHandler(repo models.BookingsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := repo.ListBookings(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}

		resp := make([]models.BookingResponse, 0, len(bookings))
		for _, booking := range bookings {
			resp = append(resp, booking.AsResponse())
		}
		c.JSON(http.StatusOK, resp)
	}
}

func GetBookingHandler(repo models.BookingsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		booking, err := repo.GetBookingByID(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, booking.AsResponse())
	}
}

func UpdateBookingHandler(repo models.BookingsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		var booking models.Booking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
			return
		}
		if err := models.Validate.Struct(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": helpers.FieldErrors(err)})
			return
		}

		err = repo.UpdateBooking(c.Request.Context(), id, &booking)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
	}
}

func DeleteBookingHandler(repo models.BookingsRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseObjectID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id format"})
			return
		}

		err = repo.DeleteBooking(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Booking not found"})
			return
		}
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
	}
}
