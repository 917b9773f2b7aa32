//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"charmforge/internal/handler/api"
	resdto "charmforge/internal/handler/dto/response"
	"charmforge/internal/pkg/config"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/commands"
	"charmforge/internal/usecase/queries"
	"charmforge/tests/common/builder"
	"charmforge/tests/common/httptest"
	"charmforge/tests/common/testutil"
	commandsmock "charmforge/tests/mock/commands"
	queriesmock "charmforge/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DesignHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDesignCommands
	mockQueries  *queriesmock.MockDesignQueries
	handler      *api.DesignHandler
}

func (s *DesignHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDesignCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDesignQueries(s.mockCtrl)
	s.handler = api.NewDesignHandler(s.mockCommands, s.mockQueries, config.NewTestConfig().Checkout)

	// Designs accept guest submissions; auth only attaches an owner
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		c.Next()
	}

	s.router.POST("/designs", optionalAuth, s.handler.CreateDesign)
	s.router.GET("/designs/:id", s.handler.GetDesign)
	s.router.GET("/designs/:id/preview", s.handler.PreviewDesign)
}

func (s *DesignHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDesignHandlerSuite(t *testing.T) {
	suite.Run(t, new(DesignHandlerTestSuite))
}

type testCaseDesign struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateDesign
// ================================================================================

func (s *DesignHandlerTestSuite) TestCreateDesign() {
	url := "/designs"

	reqBody := builder.NewDesignBuilder().BuildDTO()
	returnView := builder.NewDesignBuilder().BuildReadModel()

	s.Run("success: returns 201 Created for valid guest request", func() {
		s.mockCommands.EXPECT().CreateDesign(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.DesignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TotalCents, response.TotalCents)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("success: attaches owner for authenticated request", func() {
		s.mockCommands.EXPECT().CreateDesign(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		missing := []testCaseDesign{
			{name: "missing field: bracelet_slug (required)", mutate: testutil.Field("bracelet_slug", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: placements (required)", mutate: testutil.Field("placements", nil), expectCode: http.StatusBadRequest},
		}

		placement := []testCaseDesign{
			{
				name:       "placement missing charm_id",
				mutate:     testutil.Field("placements", []map[string]any{{"t": 0.25, "quantity": 1}}),
				expectCode: http.StatusBadRequest,
			},
			{
				name:       "placement missing quantity",
				mutate:     testutil.Field("placements", []map[string]any{{"charm_id": uuid.New().String(), "t": 0.25}}),
				expectCode: http.StatusBadRequest,
			},
		}

		for _, group := range [][]testCaseDesign{missing, placement} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				})
			}
		}
	})

	s.Run("error: aggregated violations pick status by kind", func() {
		testCases := []struct {
			name           string
			verrs          commands.ValidationErrors
			expectedStatus int
		}{
			{
				name: "field bounds only",
				verrs: commands.ValidationErrors{
					{Placement: 0, Field: "t", Kind: commands.KindBounds, Message: "t out of range"},
					{Placement: 0, Field: "quantity", Kind: commands.KindBounds, Message: "quantity out of range"},
				},
				expectedStatus: http.StatusBadRequest,
			},
			{
				name: "insufficient stock outranks bounds",
				verrs: commands.ValidationErrors{
					{Placement: 1, Field: "t", Kind: commands.KindBounds, Message: "t out of range"},
					{Placement: -1, Field: "quantity", Kind: commands.KindStock, Message: "insufficient charm stock"},
				},
				expectedStatus: http.StatusConflict,
			},
			{
				name: "placement limit",
				verrs: commands.ValidationErrors{
					{Placement: -1, Field: "quantity", Kind: commands.KindLimit, Message: "placement limit exceeded for charm"},
				},
				expectedStatus: http.StatusConflict,
			},
			{
				name: "unknown charm",
				verrs: commands.ValidationErrors{
					{Placement: -1, Field: "charm_id", Kind: commands.KindUnknownCharm, Message: "unknown charm referenced by placement"},
				},
				expectedStatus: http.StatusNotFound,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateDesign(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.verrs).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Design validation failed")
			})
		}
	})

	s.Run("error: violation detail lists every rejected field", func() {
		verrs := commands.ValidationErrors{
			{Placement: 0, Field: "t", Kind: commands.KindBounds, Message: "t out of range"},
			{Placement: 2, Field: "rotation_deg", Kind: commands.KindBounds, Message: "rotation out of range"},
		}
		s.mockCommands.EXPECT().CreateDesign(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, verrs).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusBadRequest, rec.Code)

		var body struct {
			Detail []resdto.ViolationResponse `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Require().Len(body.Detail, 2)
		s.Equal(0, body.Detail[0].Placement)
		s.Equal("t", body.Detail[0].Field)
		s.Equal(string(commands.KindBounds), body.Detail[0].Kind)
		s.Equal(2, body.Detail[1].Placement)
		s.Equal("rotation_deg", body.Detail[1].Field)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "bracelet not found",
				commandsError:  errs.ErrBraceletNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Bracelet not found",
			},
			{
				name:           "bracelet inactive",
				commandsError:  errs.ErrBraceletInactive,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Bracelet is not available",
			},
			{
				name:           "domain validation error",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateDesign(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetDesign
// ================================================================================

func (s *DesignHandlerTestSuite) TestGetDesign() {
	designID := uuid.New()
	url := "/designs/" + designID.String()

	returnView := builder.NewDesignBuilder().BuildReadModel()
	returnView.ID = designID

	s.Run("success: returns 200 OK with DesignResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), designID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DesignResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(designID, response.ID)
		s.Equal(returnView.BraceletSlug, response.BraceletSlug)
		s.Equal(returnView.SubtotalCents, response.SubtotalCents)
		s.Equal(returnView.DiscountCents, response.DiscountCents)
		s.Equal(returnView.TotalCents, response.TotalCents)
		s.NotEmpty(response.TotalFormatted)
		s.Len(response.Placements, len(returnView.Placements))
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/designs/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "design not found",
				queriesError:   errs.ErrDesignNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Design not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), designID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestPreviewDesign
// ================================================================================

func (s *DesignHandlerTestSuite) TestPreviewDesign() {
	designID := uuid.New()
	url := "/designs/" + designID.String() + "/preview"

	charmID := uuid.New()
	preview := &queries.DesignPreview{
		DesignID:  designID,
		ViewBoxPx: 720,
		PxPerMm:   4,
		Placements: []queries.PlacementPreview{
			{CharmID: charmID, X: 180, Y: 0, AngleDeg: 90, ZIndex: 0, Quantity: 1},
		},
	}

	s.Run("success: returns 200 OK with resolved positions", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), designID).
			Return(preview, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DesignPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(designID, response.DesignID)
		s.Equal(preview.ViewBoxPx, response.ViewBoxPx)
		s.Require().Len(response.Placements, 1)
		s.Equal(charmID, response.Placements[0].CharmID)
		s.InDelta(180, response.Placements[0].X, 1e-9)
		s.InDelta(90, response.Placements[0].AngleDeg, 1e-9)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/designs/invalid-uuid/preview", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing design", func() {
		s.mockQueries.EXPECT().Preview(gomock.Any(), designID).
			Return(nil, errs.ErrDesignNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Design not found")
	})
}
