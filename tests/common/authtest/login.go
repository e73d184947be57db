//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"campsite-booking/internal/handler/dto/request"
	resdto "campsite-booking/internal/handler/dto/response"
	"campsite-booking/tests/common/dbtest"
	"campsite-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &resp)
	require.NotEmpty(t, resp.Token, "login response is missing a token")

	return resp.Token
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, username string, isAdmin bool) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, username, isAdmin)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
