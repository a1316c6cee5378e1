package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"radam-backend/config"
	"radam-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingIsPublic(t *testing.T) {
	router, _ := setupRouter(t)
	service := createService(t, "Plumbing")

	resp := performJSON(router, http.MethodPost, "/bookings", map[string]interface{}{
		"name":       "Jane Doe",
		"phone":      "0712345678",
		"email":      "jane@example.com",
		"message":    "Need a quote",
		"service_id": service.ID,
	}, "")
	require.Equal(t, http.StatusCreated, resp.Code)

	body := decodeBody(t, resp)
	assert.Equal(t, "pending", body["status"])
	assert.NotContains(t, body, "service")

	var booking models.Booking
	require.NoError(t, config.DB.First(&booking, "email = ?", "jane@example.com").Error)
	require.NotNil(t, booking.ServiceID)
	assert.Equal(t, service.ID, *booking.ServiceID)
}

func TestCreateBookingGeneralInquiry(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/bookings", map[string]interface{}{
		"name":  "Jane Doe",
		"phone": "0712345678",
		"email": "jane@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, resp.Code)

	var booking models.Booking
	require.NoError(t, config.DB.First(&booking, "email = ?", "jane@example.com").Error)
	assert.Nil(t, booking.ServiceID)
}

func TestCreateBookingValidation(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/bookings", map[string]interface{}{
		"phone": "0712345678",
		"email": "jane@example.com",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeBody(t, resp)
	assert.Equal(t, []interface{}{"name"}, body["fields"])

	resp = performJSON(router, http.MethodPost, "/bookings", map[string]interface{}{
		"name":  "Jane",
		"phone": "not-a-phone",
		"email": "jane@example.com",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateBookingUnknownServiceFails(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/bookings", map[string]interface{}{
		"name":       "Jane",
		"phone":      "0712345678",
		"email":      "jane@example.com",
		"service_id": 999,
	}, "")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var count int64
	require.NoError(t, config.DB.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookingStatusTransitions(t *testing.T) {
	router, _ := setupRouter(t)
	token := adminToken(t)

	booking := models.Booking{
		Name: "Jane", Phone: "0712345678", Email: "jane@example.com",
		Status: models.BookingStatusPending,
	}
	require.NoError(t, config.DB.Create(&booking).Error)
	path := fmt.Sprintf("/bookings/%d", booking.ID)

	// status changes are admin-only
	resp := performJSON(router, http.MethodPut, path, map[string]string{"status": "confirmed"}, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performJSON(router, http.MethodPut, path, map[string]string{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "confirmed", decodeBody(t, resp)["status"])

	// confirmed never goes back to pending
	resp = performJSON(router, http.MethodPut, path, map[string]string{"status": "pending"}, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// unknown statuses are rejected outright
	resp = performJSON(router, http.MethodPut, path, map[string]string{"status": "archived"}, token)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// setting the current status again is a no-op
	resp = performJSON(router, http.MethodPut, path, map[string]string{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestListAndGetBookingsArePublic(t *testing.T) {
	router, _ := setupRouter(t)
	booking := models.Booking{Name: "Jane", Phone: "0712345678", Email: "jane@example.com"}
	require.NoError(t, config.DB.Create(&booking).Error)

	list := performJSON(router, http.MethodGet, "/bookings", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	require.Len(t, decodeList(t, list), 1)

	get := performJSON(router, http.MethodGet, fmt.Sprintf("/bookings/%d", booking.ID), nil, "")
	require.Equal(t, http.StatusOK, get.Code)

	missing := performJSON(router, http.MethodGet, "/bookings/999", nil, "")
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDeleteBooking(t *testing.T) {
	router, _ := setupRouter(t)
	token := adminToken(t)
	booking := models.Booking{Name: "Jane", Phone: "0712345678", Email: "jane@example.com"}
	require.NoError(t, config.DB.Create(&booking).Error)

	resp := performJSON(router, http.MethodDelete, fmt.Sprintf("/bookings/%d", booking.ID), nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performJSON(router, http.MethodDelete, fmt.Sprintf("/bookings/%d", booking.ID), nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performJSON(router, http.MethodDelete, fmt.Sprintf("/bookings/%d", booking.ID), nil, token)
	require.Equal(t, http.StatusNotFound, resp.Code)
}
