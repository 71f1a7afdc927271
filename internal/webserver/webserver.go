package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/app"
)

const (
	dbContextKey  = "arecamart_db"
	appContextKey = "arecamart_app"
)

// Claims is the JWT payload for operator, seller and buyer sessions.
type Claims struct {
	Username string `json:"usr"`
	Level    string `json:"lvl"`
	jwt.RegisteredClaims
}

var server *WebServer

type WebServer struct {
	root  *echo.Echo
	app   *app.Application
	pub   *echo.Group
	api   *echo.Group
	admin *echo.Group
}

// Init builds the echo server: a public /api group, a JWT-guarded /api
// group and a JWT+admin-role /admin group.
func Init(application *app.Application) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = NewJsoniterSerializer()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(dbContextKey, application.DB())
			c.Set(appContextKey, application)
			return next(c)
		}
	})

	jwtConfig := echojwt.Config{
		SigningKey: []byte(application.Config().Web.Secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
	}

	server = &WebServer{
		root: e,
		app:  application,
		pub:  e.Group("/api"),
		api:  e.Group("/api", echojwt.WithConfig(jwtConfig)),
		admin: e.Group("/admin",
			echojwt.WithConfig(jwtConfig),
			requireLevel("super", "admin")),
	}
	return server
}

// requireLevel rejects tokens whose level is not in the allowed set.
func requireLevel(levels ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := CurrentClaims(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}
			for _, lvl := range levels {
				if claims.Level == lvl {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// Start runs the HTTP listener.
func Start() error {
	cfg := server.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("web server listen %s", addr)
	return server.root.Start(addr)
}

// Shutdown is exposed for graceful stop from main.
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(dbContextKey).(*gorm.DB)
}

// GetApp returns the application context.
func GetApp(c echo.Context) *app.Application {
	return c.Get(appContextKey).(*app.Application)
}

// CurrentClaims returns the parsed JWT claims, or nil on public routes.
func CurrentClaims(c echo.Context) *Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUserID returns the authenticated account id, 0 when absent.
func CurrentUserID(c echo.Context) int64 {
	claims := CurrentClaims(c)
	if claims == nil {
		return 0
	}
	var id int64
	_, _ = fmt.Sscanf(claims.Subject, "%d", &id)
	return id
}

// GenerateToken issues a signed session token for an account.
func GenerateToken(secret string, uid int64, username, level string, ttl time.Duration) (string, error) {
	claims := Claims{
		Username: username,
		Level:    level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", uid),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Public route helpers

func PubGET(path string, h echo.HandlerFunc) {
	server.pub.GET(path, h)
}

func PubPOST(path string, h echo.HandlerFunc) {
	server.pub.POST(path, h)
}

// Authenticated /api route helpers

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiPATCH(path string, h echo.HandlerFunc) {
	server.api.PATCH(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// Admin /admin route helpers

func AdminGET(path string, h echo.HandlerFunc) {
	server.admin.GET(path, h)
}

func AdminPOST(path string, h echo.HandlerFunc) {
	server.admin.POST(path, h)
}

func AdminPUT(path string, h echo.HandlerFunc) {
	server.admin.PUT(path, h)
}

func AdminPATCH(path string, h echo.HandlerFunc) {
	server.admin.PATCH(path, h)
}

func AdminDELETE(path string, h echo.HandlerFunc) {
	server.admin.DELETE(path, h)
}
