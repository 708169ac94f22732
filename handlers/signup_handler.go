// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mineeast-server/currency"
	"mineeast-server/db"
	"mineeast-server/models"
	"mineeast-server/rabbitmq"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var now = time.Now

// SignupHandler godoc
// @Summary      Join the waitlist
// @Description  Stores a waitlist signup and returns the new waitlist size.
// @Tags         waitlist
// @Accept       json
// @Produce      json
// @Param        signupRequest  body  SignupRequest  true  "Signup request payload"
// @Success      201 {object} SignupResponse "Signup successful"
// @Failure      400 {object} ErrorResponse  "Missing or invalid fields"
// @Failure      409 {object} ErrorResponse  "Email already registered"
// @Failure      500 {object} ErrorResponse  "Internal server error"
// @Router       /api/signup [post]
func SignupHandler(c echo.Context) error {
	logger := c.Logger()

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid signup request payload: ", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid signup request payload")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Country = strings.ToUpper(strings.TrimSpace(req.Country))
	if req.Email == "" {
		logger.Warn("Email is required.")
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}
	if err := c.Validate(&req); err != nil {
		logger.Warn("Signup validation failed: ", err)
		return err
	}

	country := req.Country
	if country == "" {
		country = currency.DefaultCountry
	}
	code := currency.USDCode
	if strings.TrimSpace(req.Currency) != "" {
		normalized, err := currency.Normalize(req.Currency)
		if err != nil {
			logger.Warn("Signup currency rejected: ", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Currency must be an ISO 4217 code")
		}
		code = normalized
	}

	signup := models.Signup{
		Email:    req.Email,
		Country:  &country,
		Currency: &code,
	}

	if err := db.Conn.Create(&signup).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Warn("This email is already registered.")
			return echo.NewHTTPError(http.StatusConflict, "Email already registered")
		}
		logger.Errorf("Failed to create signup: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store signup")
	}

	var total int64
	if err := db.Conn.Model(&models.Signup{}).Count(&total).Error; err != nil {
		logger.Errorf("Failed to count signups: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count signups")
	}

	if err := rabbitmq.Events.PublishSignup(c.Request().Context(), models.NewSignupEvent(signup, total)); err != nil {
		logger.Errorf("Signup %d stored but event was not published: %v", signup.ID, err)
	}

	logger.Infof("Waitlist signup #%d stored (country=%s, currency=%s)", total, country, code)
	return c.JSON(http.StatusCreated, SignupResponse{
		Message:      "Signup successful",
		SignupNumber: total,
		TotalSignups: total,
	})
}
