//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/handler/api"
	resdto "points-rewards/internal/handler/dto/response"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase"
	"points-rewards/internal/usecase/shared"
	"points-rewards/tests/common/builder"
	"points-rewards/tests/common/httptest"
	usecasemock "points-rewards/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	s.router.GET("/api/auth/me", fakeAuth, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: registered account is embedded", func() {
		view := builder.NewAccountBuilder().BuildView()
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p shared.Principal) (*usecase.CurrentUser, error) {
				return &usecase.CurrentUser{Principal: p, Permissions: p.Role.Permissions(), Account: view}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "manager")

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(callerID, body.ID)
		s.Equal("manager", body.Role)
		s.Equal([]string{"read", "write", "manage_benefits"}, body.Permissions)
		s.Require().NotNil(body.Account)
		s.Equal(view.Email, body.Account.Email)
	})

	s.Run("success: identity without an account", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(&usecase.CurrentUser{
				Principal:   shared.Principal{ID: callerID, Role: account.RoleViewer},
				Permissions: account.RoleViewer.Permissions(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "viewer")

		var body resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Account)
		s.Equal([]string{"read"}, body.Permissions)
	})

	s.Run("error: inactive account", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, errs.Unauthenticated(nil, "account is inactive")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "user")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, errs.CodeAuthentication)
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, errs.CodeAuthentication)
	})
}
