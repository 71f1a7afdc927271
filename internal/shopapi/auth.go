package shopapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

const tokenTTL = 24 * time.Hour

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login authenticates an account against sys_opr and issues a session
// token. The OTP flow of the storefront is delegated to the external
// identity provider; this is the password fallback.
func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", nil)
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username and password are required", nil)
	}

	var opr domain.SysOpr
	if err := GetDB(c).Where("username = ?", payload.Username).First(&opr).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
	}
	if !strings.EqualFold(opr.Status, common.ENABLED) {
		return fail(c, http.StatusForbidden, "ACCOUNT_DISABLED", "Account is disabled", nil)
	}
	hashed := common.Sha256HashWithSalt(payload.Password, common.GetSecretSalt())
	if hashed != opr.Password {
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
	}

	secret := webserver.GetApp(c).Config().Web.Secret
	token, err := webserver.GenerateToken(secret, opr.ID, opr.Username, opr.Level, tokenTTL)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err.Error())
	}

	GetDB(c).Model(&domain.SysOpr{}).Where("id = ?", opr.ID).Update("last_login", time.Now())

	return ok(c, map[string]interface{}{
		"token": token,
		"level": opr.Level,
		"name":  opr.Realname,
	})
}
