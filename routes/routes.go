package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mayank7tyagi/FitJourney-App/config"
	"github.com/mayank7tyagi/FitJourney-App/controllers"
	"github.com/mayank7tyagi/FitJourney-App/middlewares"
	"github.com/mayank7tyagi/FitJourney-App/services"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

// SetupRouter wires services and controllers from the injected config and
// database. Uploader and mailer may be nil when AWS is not configured.
func SetupRouter(cfg *config.Config, db *gorm.DB, uploader *utils.S3Uploader, mailer *utils.Mailer) *gin.Engine {
	secret := []byte(cfg.JWTSecret)

	authSvc := services.NewAuthService(db, secret, mailer)
	userSvc := services.NewUserService(db, uploader)
	workoutSvc := services.NewWorkoutService(db)
	dashboardSvc := services.NewDashboardService(db)

	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	workoutCtrl := controllers.NewWorkoutController(workoutSvc, userSvc)
	dashboardCtrl := controllers.NewDashboardController(dashboardSvc, userSvc)

	r := gin.Default()

	user := r.Group("/api/user")
	{
		user.POST("/signup", authCtrl.SignUp)
		user.POST("/signin", authCtrl.SignIn)
		user.POST("/forgot-password", authCtrl.ForgotPassword)
		user.POST("/reset-password", authCtrl.ResetPassword)
	}

	protected := user.Group("")
	protected.Use(middlewares.AuthMiddleware(secret))
	{
		protected.GET("/dashboard", dashboardCtrl.GetDashboard)
		protected.GET("/workout", workoutCtrl.GetWorkoutsByDate)
		protected.POST("/workout", workoutCtrl.AddWorkout)
		protected.GET("/profile", userCtrl.GetProfile)
		protected.PUT("/avatar", userCtrl.UpdateAvatar)
	}

	return r
}
