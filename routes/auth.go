package routes

import (
	"errors"
	"net/http"

	"ntreal/notes/database"
	"ntreal/notes/services"
	"ntreal/notes/utils/token"

	"github.com/gin-gonic/gin"
)

// sessionMaxAge matches the token expiration set on the auth service.
const sessionMaxAge = 24 * 60 * 60

func RegisterAccountRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface, userService services.UserServiceInterface) {
	group := router.Group("/accounts")
	{
		group.GET("/login/", func(c *gin.Context) { LoginForm(c) })
		group.POST("/login/", func(c *gin.Context) { Login(c, db, authService) })
		group.GET("/logout/", func(c *gin.Context) { Logout(c) })
		group.GET("/register/", func(c *gin.Context) { RegisterForm(c) })
		group.POST("/register/", func(c *gin.Context) { Register(c, db, userService) })
	}
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

func Login(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	tokenString, err := authService.Login(db, email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Title": "Log in",
				"Error": "Invalid email or password.",
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Title": "Log in", "Error": err.Error()})
		return
	}

	c.SetCookie(token.SessionCookieName, tokenString, sessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	c.SetCookie(token.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/accounts/login/")
}

func RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Title": "Sign up"})
}

func Register(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	displayName := c.PostForm("display_name")

	if _, err := userService.Register(db, email, password, displayName); err != nil {
		message := "Can't create account."
		if errors.Is(err, services.ErrResourceExists) {
			message = "An account with that email already exists."
		} else if errors.Is(err, services.ErrInvalidInput) {
			message = "Email and password are required."
		}
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Title": "Sign up",
			"Error": message,
		})
		return
	}

	c.Redirect(http.StatusFound, "/accounts/login/")
}
