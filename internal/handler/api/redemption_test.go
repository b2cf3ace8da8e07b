//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"points-rewards/internal/handler/api"
	reqdto "points-rewards/internal/handler/dto/request"
	resdto "points-rewards/internal/handler/dto/response"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/queries"
	"points-rewards/tests/common/builder"
	"points-rewards/tests/common/httptest"
	"points-rewards/tests/common/testutil"
	commandsmock "points-rewards/tests/mock/commands"
	queriesmock "points-rewards/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	mockQueries  *queriesmock.MockRedemptionQueries
	handler      *api.RedemptionHandler
}

func (s *RedemptionHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRedemptionQueries(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api/canjes", fakeAuth)
	g.POST("", s.handler.Create)
	g.GET("", s.handler.List)
	g.GET("/usuario/:user_id", s.handler.ListByUser)
	g.GET("/:id", s.handler.Get)
	g.PATCH("/:id/estado", s.handler.UpdateStatus)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

type testCaseRedemption struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestCreate() {
	url := "/api/canjes"
	b := builder.NewRedemptionBuilder()
	reqBody := b.BuildCreateRequest()
	returnView := b.BuildView()

	matchesRequest := gomock.Cond(func(x any) bool {
		in, ok := x.(commands.CreateRedemptionInput)
		return ok &&
			in.UserID == reqBody.UserID &&
			in.BenefitID == reqBody.BenefitID &&
			in.Points == reqBody.Points &&
			in.RedeemedAt.Equal(reqBody.RedeemedAt.Time) &&
			in.UseAt.Equal(reqBody.UseAt.Time)
	})

	s.Run("success: returns 201 with the remaining balance", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), matchesRequest).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user")

		var body resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("ACTIVO", body.Status)
		s.Equal(returnView.RemainingPoints, body.RemainingPoints)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/canjes/" + returnView.ID.String()})
	})

	s.Run("success: datetimes without an offset are read as UTC", func() {
		benefitID := uuid.New()
		payload := map[string]any{
			"user_id":         42,
			"beneficio_id":    benefitID.String(),
			"puntos_utilizar": 100,
			"fecha_canje":     "2025-01-24T10:00:00",
			"fecha_uso":       "2025-02-01T10:00:00",
			"observaciones":   "Canje para vacaciones",
		}
		wantRedeemed := time.Date(2025, 1, 24, 10, 0, 0, 0, time.UTC)
		wantUse := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
			in, ok := x.(commands.CreateRedemptionInput)
			return ok &&
				in.BenefitID == benefitID &&
				in.RedeemedAt.Equal(wantRedeemed) &&
				in.UseAt.Equal(wantUse)
		})).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, "user")

		var body resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []testCaseRedemption{
			{name: "missing user_id", mutate: testutil.Field("user_id", nil), expectCode: http.StatusBadRequest},
			{name: "negative user_id", mutate: testutil.Field("user_id", -1), expectCode: http.StatusBadRequest},
			{name: "missing beneficio_id", mutate: testutil.Field("beneficio_id", nil), expectCode: http.StatusBadRequest},
			{name: "malformed beneficio_id", mutate: testutil.Field("beneficio_id", "nope"), expectCode: http.StatusBadRequest},
			{name: "missing fecha_canje", mutate: testutil.Field("fecha_canje", nil), expectCode: http.StatusBadRequest},
			{name: "missing fecha_uso", mutate: testutil.Field("fecha_uso", nil), expectCode: http.StatusBadRequest},
			{name: "malformed fecha_canje", mutate: testutil.Field("fecha_canje", "24/01/2025"), expectCode: http.StatusBadRequest},
			{name: "observaciones too long", mutate: testutil.Field("observaciones", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "user")
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, errs.CodeValidation)
			})
		}
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, errs.CodeAuthentication)
	})

	s.Run("error: use case failures keep their code and details", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{
				name:       "account missing",
				err:        notFound("account"),
				wantStatus: http.StatusNotFound,
				wantCode:   errs.CodeNotFound,
			},
			{
				name: "insufficient points",
				err: errs.Validation(nil, "insufficient points", map[string]any{
					"available": 100, "required": 350,
				}),
				wantStatus: http.StatusBadRequest,
				wantCode:   errs.CodeValidation,
			},
			{
				name:       "infrastructure failure is not leaked",
				err:        errs.Infrastructure(nil, "failed to debit points: connection reset"),
				wantStatus: http.StatusInternalServerError,
				wantCode:   errs.CodeInfrastructure,
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user")
				body := httptest.AssertErrorCode(s.T(), rec, tc.wantStatus, tc.wantCode)
				if tc.wantStatus == http.StatusInternalServerError {
					s.Equal("Internal server error", body.Message)
					s.Empty(body.Details)
				}
			})
		}

		s.Run("details are forwarded unchanged", func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(nil, errs.Validation(nil, "insufficient points", map[string]any{"available": 100, "required": 350})).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "user")
			body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "insufficient points")
			s.Equal(float64(100), body.Details["available"])
			s.Equal(float64(350), body.Details["required"])
		})
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestGet() {
	view := builder.NewRedemptionBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canjes/"+view.ID.String(), nil, "viewer")

		var body resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.BenefitName, body.BenefitName)
		s.Equal(view.Points, body.Points)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canjes/not-a-uuid", nil, "viewer")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, errs.CodeValidation)
	})

	s.Run("error: 404 when absent", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, notFound("redemption")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canjes/"+id.String(), nil, "viewer")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, errs.CodeNotFound)
	})
}

// ================================================================================
// TestListByUser
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestListByUser() {
	view := builder.NewRedemptionBuilder().BuildView()

	s.Run("success: pagination and status are passed through", func() {
		page := queries.NewPageResult([]queries.RedemptionView{*view}, 21, queries.Pagination{Page: 2, Size: 10})
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), int64(42), "cancelado", queries.Pagination{Page: 2, Size: 10}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/canjes/usuario/42?page=2&size=10&estado=cancelado", nil, "viewer")

		var body resdto.RedemptionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal(int64(21), body.Total)
		s.Equal(2, body.Page)
		s.Equal(3, body.TotalPages)
	})

	s.Run("success: defaults and an empty list render as []", func() {
		page := queries.NewPageResult[queries.RedemptionView](nil, 0, queries.NewPagination(0, 0))
		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), int64(42), "", queries.Pagination{Page: 1, Size: queries.DefaultPageSize}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canjes/usuario/42", nil, "viewer")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"canjes":[]`)
	})

	s.Run("error: 400 on invalid user_id or size", func() {
		for _, path := range []string{
			"/api/canjes/usuario/abc",
			"/api/canjes/usuario/0",
			"/api/canjes/usuario/42?size=101",
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "viewer")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, errs.CodeValidation)
		}
	})

	s.Run("error: 400 for an unknown estado filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canjes/usuario/7?estado=PENDIENTE", nil, "viewer")

		body := httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, errs.CodeValidation)
		s.ElementsMatch([]any{"ACTIVO", "USADO", "CANCELADO", "VENCIDO"}, body.Details["valid_values"])
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestList() {
	benefitID := uuid.New()

	s.Run("success: filters are mapped", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Cond(func(x any) bool {
			f, ok := x.(queries.RedemptionFilter)
			return ok && f.UserID != nil && *f.UserID == 42 &&
				f.BenefitID != nil && *f.BenefitID == benefitID && f.Status == "USADO"
		}), queries.NewPagination(1, 10)).
			Return(queries.NewPageResult[queries.RedemptionView](nil, 0, queries.NewPagination(1, 10)), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/canjes?user_id=42&beneficio_id="+benefitID.String()+"&estado=USADO", nil, "admin")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed beneficio_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/canjes?beneficio_id=x", nil, "admin")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, errs.CodeValidation)
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewRedemptionBuilder().WithStatus("CANCELADO").BuildView()
	url := "/api/canjes/" + view.ID.String() + "/estado"

	s.Run("success: English alias is accepted", func() {
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), view.ID, commands.UpdateRedemptionStatusInput{Status: "cancelled", Notes: "no longer needed"}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"estado": "cancelled", "observaciones": "no longer needed"}, "user")

		var body resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELADO", body.Status)
	})

	s.Run("error: 400 lists valid values for an unknown status", func() {
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), view.ID, commands.UpdateRedemptionStatusInput{Status: "PENDIENTE"}).
			Return(nil, errs.Validation(nil, "invalid redemption status", map[string]any{
				"valid_values": []string{"ACTIVO", "USADO", "CANCELADO", "VENCIDO"},
			})).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"estado": "PENDIENTE"}, "user")

		body := httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, errs.CodeValidation)
		s.ElementsMatch([]any{"ACTIVO", "USADO", "CANCELADO", "VENCIDO"}, body.Details["valid_values"])
	})

	s.Run("error: 404 for an unknown id takes precedence over the status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			Return(nil, notFound("redemption")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"estado": "PENDIENTE"}, "user")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, errs.CodeNotFound)
	})

	s.Run("error: 400 when estado is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "user")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, errs.CodeValidation)
	})

	s.Run("error: 404 when the redemption is absent", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), view.ID, gomock.Any()).
			Return(nil, notFound("redemption")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"estado": "USADO"}, "user")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, errs.CodeNotFound)
	})
}
