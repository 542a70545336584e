package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/shareplate/shareplate-api/logmodule"
	"github.com/shareplate/shareplate-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Store
	store store.SharePlate

	// JWT signing secret
	jwtSecret []byte
}

// NewServer new instance of server
func NewServer(store store.SharePlate, jwtSecret []byte) *Server {
	return &Server{
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	// the front-end sends the token cookie cross-site, so credentials must
	// be allowed and the origin list fixed
	r.Use(cors.New(cors.Config{
		AllowOrigins:     viper.GetStringSlice("cors.origins"),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", s.liveness)
	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/jwt", s.requestJWT)
	apiRoute.POST("/logout", s.logout)

	foodRoute := apiRoute.Group("/foods")
	{
		foodRoute.GET("", s.listFoods)
		foodRoute.GET("/:id", s.getFood)
		foodRoute.GET("/my-foods/:email", s.authMiddleware(), s.myFoods)
		foodRoute.GET("/my-requested-foods/:email", s.authMiddleware(), s.myRequestedFoods)
		foodRoute.POST("", s.authMiddleware(), s.createFood)
	}

	apiRoute.POST("/requested-foods", s.authMiddleware(), s.createFoodRequest)
	apiRoute.DELETE("/delete-food/:id", s.authMiddleware(), s.deleteFood)
	apiRoute.PUT("/update-food/:id", s.authMiddleware(), s.updateFood)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) liveness(c *gin.Context) {
	c.String(http.StatusOK, "SharePlate server is running")
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
