package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mayank7tyagi/FitJourney-App/utils"
)

// respondError converts any error into its HTTP shape. Internal detail is
// logged here and never written to the response body.
func respondError(c *gin.Context, err error) {
	appErr := utils.AsAppError(err)
	if appErr.Status >= http.StatusInternalServerError {
		logrus.WithError(appErr).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}
