package user

import (
	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		// Public auth surface, limited by source IP.
		users.POST("/signUp", middleware.RateLimitByIP(1, 3), handler.SignUp)
		users.POST("/signIn", middleware.RateLimitByIP(1, 5), handler.SignIn)
		users.POST("/forgetPassReq", middleware.RateLimitByIP(0.2, 2), handler.ForgetPassword)
		users.POST("/resetPass", middleware.RateLimitByIP(0.2, 2), handler.ResetPassword)

		users.GET("/:userId", middleware.RateLimitByIP(2, 10), handler.GetProfile)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.PUT("/updateAcc", middleware.RateLimitByUser(0.5, 2), handler.UpdateAccount)
			authed.PUT("/updatePass", middleware.RateLimitByUser(0.2, 2), handler.UpdatePassword)
			authed.DELETE("/", middleware.RateLimitByUser(0.1, 1), handler.DeleteAccount)
			authed.GET("/", middleware.RateLimitByUser(2, 10), handler.GetAccount)
			authed.GET("/accByRecoveryEmail", middleware.RateLimitByUser(1, 5), handler.GetByRecoveryEmail)
			authed.POST("/signOut", middleware.RateLimitByUser(1, 3), handler.SignOut)
		}
	}
}
