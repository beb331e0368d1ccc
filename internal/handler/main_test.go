package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"piecon/backend/internal/auth"
	"piecon/backend/internal/config"
	"piecon/backend/internal/database"
	"piecon/backend/internal/models"
	"piecon/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest swaps the global DB for a fresh in-memory sqlite and returns
// a router with the same route table the server mounts.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Use(db))

	return testRouter()
}

func testRouter() *gin.Engine {
	router := gin.New()

	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("/me", GetMe)
	userRoutes.PUT("/me/password", ChangePassword)
	userRoutes.PUT("/me/email", ChangeEmail)

	apiV1.GET("/conventions/current", GetCurrentConvention)

	pieRoutes := apiV1.Group("/pies")
	pieRoutes.GET("", auth.OptionalAuthMiddleware(), ListPies)
	piesProtected := pieRoutes.Group("")
	piesProtected.Use(auth.AuthMiddleware())
	piesProtected.POST("", CreatePie)
	piesProtected.GET("/:id", GetPie)
	piesProtected.PUT("/:id", UpdatePie)

	gameRoutes := apiV1.Group("/games")
	gameRoutes.GET("", auth.OptionalAuthMiddleware(), ListGames)
	gamesProtected := gameRoutes.Group("")
	gamesProtected.Use(auth.AuthMiddleware())
	gamesProtected.POST("", CreateGame)
	gamesProtected.GET("/:id", GetGame)
	gamesProtected.PUT("/:id", UpdateGame)

	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
	adminRoutes.GET("/conventions", ListConventions)
	adminRoutes.POST("/conventions", CreateConvention)
	adminRoutes.PUT("/conventions/:id", UpdateConvention)
	adminRoutes.DELETE("/conventions/:id", DeleteConvention)
	adminRoutes.PUT("/games/:id/suppress", SuppressGame)

	return router
}

// createTestUser inserts a user and returns it with a valid token.
func createTestUser(t *testing.T, username, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

// seedConvention inserts a convention starting the given number of days
// from now, running three days. Negative offsets put it in the past.
func seedConvention(t *testing.T, romanNum, tagline string, days int) models.Convention {
	t.Helper()

	start := time.Now().AddDate(0, 0, days)
	con := models.Convention{
		RomanNum:  romanNum,
		Tagline:   tagline,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
	}
	require.NoError(t, database.DB.Create(&con).Error)
	return con
}

// doRequest performs a JSON request against the router. An empty token
// leaves the Authorization header off.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}
