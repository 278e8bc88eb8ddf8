package routes

import (
	"net/http"
	"time"

	"gymnexa/config"
	"gymnexa/handlers"
	"gymnexa/middleware"
	"gymnexa/services/gate"
	"gymnexa/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSessionRoutes registers session bootstrap and gate transitions.
func RegisterSessionRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api.POST("/session", hb.StartSessionHandler)

	s := api.Group("/session", auth)
	{
		s.GET("", hb.GetSessionHandler)
		s.POST("/screen/:screen", hb.SwitchScreenHandler)
		s.POST("/demo", hb.DemoHandler)
	}
}

// RegisterAuthRoutes registers sign-in and sign-out.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	a := api.Group("/auth", auth)
	{
		a.POST("/login", middleware.RequireScreen(gate.Login), hb.LoginHandler)
		a.POST("/google", middleware.RequireScreen(gate.Login, gate.Signup), hb.GoogleLoginHandler)
		a.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterWizardRoutes registers the signup and profile-completion wizards.
func RegisterWizardRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	signup := api.Group("/signup", auth, middleware.RequireScreen(gate.Signup))
	{
		signup.GET("", hb.GetSignupHandler)
		signup.PATCH("", hb.UpdateSignupHandler)
		signup.POST("/next", hb.NextSignupHandler)
		signup.POST("/back", hb.BackSignupHandler)
		signup.POST("/submit", hb.SubmitSignupHandler)
	}

	completion := api.Group("/completion", auth, middleware.RequireScreen(gate.ProfileCompletion), middleware.RequireSignedIn())
	{
		completion.GET("", hb.GetCompletionHandler)
		completion.PATCH("", hb.UpdateCompletionHandler)
		completion.POST("/next", hb.NextCompletionHandler)
		completion.POST("/back", hb.BackCompletionHandler)
		completion.POST("/submit", hb.SubmitCompletionHandler)
	}
}

// RegisterMainRoutes registers the main tabs: home, bookings, wod and profile.
func RegisterMainRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	tabs := api.Group("", auth, middleware.RequireScreen(gate.Main))
	{
		tabs.GET("/home", hb.HomeHandler)
		tabs.GET("/wod", hb.WodHandler)

		tabs.GET("/profile", hb.GetProfileHandler)
		tabs.POST("/profile/cancel", hb.CancelEditHandler)
		tabs.PATCH("/profile/form", hb.UpdateProfileFormHandler)

		tabs.GET("/bookings/grid", hb.GetGridHandler)
		tabs.POST("/bookings/grid/select", hb.SelectSlotHandler)
		tabs.POST("/bookings/grid/prev", hb.PrevDayHandler)
		tabs.POST("/bookings/grid/next", hb.NextDayHandler)
		tabs.POST("/bookings/grid/confirm", hb.ConfirmGridHandler)
	}

	member := tabs.Group("", middleware.RequireSignedIn())
	{
		member.POST("/profile/edit", hb.EditProfileHandler)
		member.POST("/profile/save", hb.SaveProfileHandler)
		member.POST("/profile/photo", hb.UploadPhotoHandler)
		member.POST("/profile/document", hb.UploadDocumentHandler)

		member.GET("/bookings", hb.ListBookingsHandler)
		member.POST("/bookings", hb.CreateBookingHandler)
		member.DELETE("/bookings/:id", hb.DeleteBookingHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.DisplayModeHeader, middleware.StandaloneHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.TokenHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(handlers.RequestLogger(), utils.ErrorHandler(), middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	r.Use(hb.Metrics.Middleware(), middleware.DeviceDetailsMiddleware())

	r.GET("/health", hb.HealthHandler)
	if hb.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: "Risorsa non trovata"})
	})

	api := r.Group("/api")
	api.GET("/slots", hb.SlotsHandler)

	auth := middleware.SessionAuthMiddleware(hb.Sessions)
	RegisterSessionRoutes(api, hb, auth)
	RegisterAuthRoutes(api, hb, auth)
	RegisterWizardRoutes(api, hb, auth)
	RegisterMainRoutes(api, hb, auth)
}
