package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"travelhub/db"
	"travelhub/globals"
	"travelhub/middleware"
	"travelhub/models"
	"travelhub/rdx"
	"travelhub/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	var existing models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": input.Username}).Decode(&existing)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Username already taken")
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:       utils.GetUUID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         []string{"user"},
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	rdx.SetUsername(ctx, user.UserID, user.Username)
	utils.RespondSuccess(w, http.StatusCreated, map[string]string{
		"userid":   user.UserID,
		"username": user.Username,
	})
}

// POST /api/auth/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": input.Username}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := GenerateAccessToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	refresh, err := generateRefreshToken()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate refresh token")
		return
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{
			"refreshtoken": hashToken(refresh),
			"refreshexp":   time.Now().UTC().Add(refreshTokenTTL),
			"last_login":   time.Now().UTC(),
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}

	rdx.SetUsername(ctx, user.UserID, user.Username)
	utils.RespondSuccess(w, http.StatusOK, map[string]string{
		"token":        token,
		"refreshToken": refresh,
		"userid":       user.UserID,
	})
}

// POST /api/auth/token/refresh
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input struct {
		UserID       string `json:"userid"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": input.UserID}).Decode(&user)
	if err != nil || user.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(user.RefreshExpiry) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	token, err := GenerateAccessToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	utils.RespondSuccess(w, http.StatusOK, map[string]string{"token": token})
}

// GenerateAccessToken signs a short-lived JWT with the shared claims.
func GenerateAccessToken(user models.User) (string, error) {
	claims := middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
