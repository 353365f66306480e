package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"biketrak-api/models"
	"biketrak-api/repositories"
	"biketrak-api/services"
	"biketrak-api/utils"
)

const tokenLifetime = time.Hour

type AuthController struct {
	users        repositories.UserStore
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(users repositories.UserStore, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        users,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	email := models.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	// Pre-query for a friendly conflict; the unique index catches races.
	if _, err := ac.users.FindByEmail(c.Request.Context(), email); err == nil {
		utils.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		utils.SendServerError(c, "Server error")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := ac.users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			utils.SendError(c, http.StatusConflict, "Email already registered")
			return
		}
		log.Printf("Failed to create user: %v", err)
		utils.SendServerError(c, "Server error")
		return
	}
	log.Printf("User created: %s", user.ID.Hex())

	if ac.emailService != nil && ac.emailService.Enabled() {
		go func(email, username string) {
			if err := ac.emailService.SendWelcomeEmail(email, username); err != nil {
				log.Printf("Failed to send welcome email: %v", err)
			}
		}(user.Email, user.Username)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	email := models.NormalizeEmail(req.Email)

	// The same message covers unknown email and wrong password.
	user, err := ac.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("Failed to look up user: %v", err)
		utils.SendServerError(c, "Server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := ac.generateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		utils.SendServerError(c, "Server error")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

func (ac *AuthController) generateJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
