// Package app wires the HTTP routes of the API
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ilyamazurenko/Dance-partner-app/app/auth"
	"github.com/ilyamazurenko/Dance-partner-app/app/matching"
	"github.com/ilyamazurenko/Dance-partner-app/app/profile"
	"github.com/ilyamazurenko/Dance-partner-app/app/root"
	"github.com/ilyamazurenko/Dance-partner-app/app/style"
	"github.com/ilyamazurenko/Dance-partner-app/app/user"
	"github.com/ilyamazurenko/Dance-partner-app/config"
	"github.com/ilyamazurenko/Dance-partner-app/internal"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/middleware"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxBodySize = 1 << 20

// NewRouter builds the engine serving every route. Background work started
// here, like rate limiter cleanup, stops when ctx is done.
func NewRouter(ctx context.Context, d *internal.Deps) (*gin.Engine, error) {
	conf := d.Config

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     conf.Host.CORS,
			AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "WWW-Authenticate"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetUint("userID"); v != 0 {
					fields = append(fields, zap.Uint("userID", v))
				}

				return fields
			},
		}),
		ginzap.RecoveryWithZap(zap.L(), true),
		middleware.BodySizeLimiter(maxBodySize),
	)

	if conf.Security.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: conf.Security.RateLimit,
			Burst:             conf.Security.RateLimit * 2,
		})
		go limiter.Run(ctx)

		router.Use(limiter.Handler())
	}

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	cacheFor, err := newCache(conf.Cache)
	if err != nil {
		return nil, err
	}

	jwt := middleware.NewAuthMiddleware(d.Auth)

	// GET /			-> Welcome message
	router.GET("/", root.Welcome)

	// HEAD|GET /heartbeat		-> Used to check if the server is alive
	router.HEAD("/heartbeat", root.Heartbeat)
	router.GET("/heartbeat", root.Heartbeat)

	u := router.Group("/users")
	{
		// POST /users			-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })

		// GET /users/me		-> Returns the authenticated user
		u.GET("/me", jwt, user.UserFetch)

		// DELETE /users/me		-> Deletes the authenticated user and their profile
		u.DELETE("/me", jwt, func(c *gin.Context) { user.UserDelete(c, d) })
	}

	// POST /auth/token		-> Exchanges form credentials for a bearer token
	router.POST("/auth/token", func(c *gin.Context) { auth.AuthToken(c, d) })

	p := router.Group("/profiles")
	{
		// GET /profiles/me		-> Returns the authenticated user's profile
		p.GET("/me", jwt, func(c *gin.Context) { profile.ProfileFetchMe(c, d) })

		// PUT /profiles/me		-> Creates or partially updates the authenticated user's profile
		p.PUT("/me", jwt, func(c *gin.Context) { profile.ProfileUpsertMe(c, d) })

		// GET /profiles/:id		-> Returns any profile by its ID
		p.GET("/:id", func(c *gin.Context) { profile.ProfileFetch(c, d) })
	}

	s := router.Group("/styles")
	{
		// POST /styles			-> Adds a dance style to the catalog
		s.POST("", func(c *gin.Context) { style.StyleCreate(c, d) })

		// GET /styles			-> Lists the catalog with skip/limit paging
		s.GET("", cacheFor(), func(c *gin.Context) { style.StyleList(c, d) })

		// GET /styles/:id		-> Returns a dance style by its ID
		s.GET("/:id", cacheFor(), func(c *gin.Context) { style.StyleFetch(c, d) })
	}

	// POST /matching/find-partners	-> Searches other users' profiles
	router.POST("/matching/find-partners", jwt, func(c *gin.Context) { matching.FindPartners(c, d) })

	return router, nil
}

// newCache returns a constructor for the response cache middleware backed
// by the configured store. With caching off it hands out a pass-through.
func newCache(conf config.CacheConfig) (func() gin.HandlerFunc, error) {
	var store persist.CacheStore

	switch conf.Type {
	case "none":
		return func() gin.HandlerFunc { return func(c *gin.Context) { c.Next() } }, nil
	case "memory":
		store = persist.NewMemoryStore(conf.TTL)
	case "redis":
		store = persist.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		}))
	default:
		return nil, fmt.Errorf("unsupported cache type %q", conf.Type)
	}

	return func() gin.HandlerFunc {
		return cache.CacheByRequestURI(store, conf.TTL)
	}, nil
}
