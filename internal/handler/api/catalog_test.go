//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"charmforge/internal/domain/user"
	"charmforge/internal/handler/api"
	reqdto "charmforge/internal/handler/dto/request"
	resdto "charmforge/internal/handler/dto/response"
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

const (
	adminToken    = "admin-token"
	customerToken = "customer-token"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	// Public routes resolve a role when a token is present; admin routes
	// require one
	optionalAuth := func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer " + adminToken:
			c.Set("user_id", uuid.New())
			c.Set("user_role", user.RoleAdmin)
		case "Bearer " + customerToken:
			c.Set("user_id", uuid.New())
			c.Set("user_role", user.RoleCustomer)
		}
		c.Next()
	}
	requireAdmin := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/bracelets", optionalAuth, s.handler.ListBracelets)
	s.router.GET("/bracelets/:slug", s.handler.GetBracelet)
	s.router.GET("/charms", optionalAuth, s.handler.ListCharms)
	s.router.POST("/admin/bracelets", requireAdmin, s.handler.CreateBracelet)
	s.router.PATCH("/admin/bracelets/:id", requireAdmin, s.handler.UpdateBracelet)
	s.router.POST("/admin/charms", requireAdmin, s.handler.CreateCharm)
	s.router.PATCH("/admin/charms/:id", requireAdmin, s.handler.UpdateCharm)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

type testCaseCatalog struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestListBracelets
// ================================================================================

func (s *CatalogHandlerTestSuite) TestListBracelets() {
	url := "/bracelets"

	views := []*queries.BraceletView{
		{ID: uuid.New(), Slug: "classic-chain", Name: "Classic Chain", LengthMm: 180, BasePriceCents: 3000, IsActive: true},
	}

	s.Run("success: anonymous sees active bracelets only", func() {
		s.mockQueries.EXPECT().ListBracelets(gomock.Any(), false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, "")

		var response []resdto.BraceletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("classic-chain", response[0].Slug)
	})

	s.Run("success: customer cannot request inactive bracelets", func() {
		s.mockQueries.EXPECT().ListBracelets(gomock.Any(), false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, customerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: admin may include inactive bracelets", func() {
		s.mockQueries.EXPECT().ListBracelets(gomock.Any(), true).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on read store failure", func() {
		s.mockQueries.EXPECT().ListBracelets(gomock.Any(), false).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestGetBracelet
// ================================================================================

func (s *CatalogHandlerTestSuite) TestGetBracelet() {
	url := "/bracelets/classic-chain"

	view := &queries.BraceletView{
		ID:             uuid.New(),
		Slug:           "classic-chain",
		Name:           "Classic Chain",
		PathD:          "M 0 0 L 180 0",
		LengthMm:       180,
		BasePriceCents: 3000,
		IsActive:       true,
	}

	s.Run("success: returns 200 OK with BraceletResponse", func() {
		s.mockQueries.EXPECT().GetBraceletBySlug(gomock.Any(), "classic-chain").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BraceletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Slug, response.Slug)
		s.Equal(view.PathD, response.PathD)
		s.Equal(view.BasePriceCents, response.BasePriceCents)
	})

	s.Run("error: 404 Not Found for unknown slug", func() {
		s.mockQueries.EXPECT().GetBraceletBySlug(gomock.Any(), "classic-chain").
			Return(nil, errs.ErrBraceletNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Bracelet not found")
	})
}

// ================================================================================
// TestListCharms
// ================================================================================

func (s *CatalogHandlerTestSuite) TestListCharms() {
	url := "/charms"

	snapshot := builder.NewCharmBuilder().BuildSnapshot()
	views := []*queries.CharmView{
		{ID: snapshot.ID, Sku: snapshot.Sku, Name: snapshot.Name, PriceCents: snapshot.PriceCents, Stock: snapshot.Stock, IsActive: true},
	}

	s.Run("success: anonymous sees active charms only", func() {
		s.mockQueries.EXPECT().ListCharms(gomock.Any(), false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, "")

		var response []resdto.CharmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(snapshot.Sku, response[0].Sku)
	})

	s.Run("success: admin may include inactive charms", func() {
		s.mockQueries.EXPECT().ListCharms(gomock.Any(), true).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?include_inactive=true", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestCreateBracelet
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreateBracelet() {
	url := "/admin/bracelets"

	reqBody := reqdto.CreateBraceletRequest{
		Slug:           "classic-chain",
		Name:           "Classic Chain",
		PathD:          "M 0 0 L 180 0",
		LengthMm:       180,
		BasePriceCents: 3000,
		IsActive:       true,
	}
	createdID := uuid.New()

	s.Run("success: returns 201 Created with new id", func() {
		s.mockCommands.EXPECT().CreateBracelet(gomock.Any(), reqBody).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseCatalog{
			{name: "missing field: slug (required)", mutate: testutil.Field("slug", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: path_d (required)", mutate: testutil.Field("path_d", nil), expectCode: http.StatusBadRequest},
			{name: "length_mm invalid (0)", mutate: testutil.Field("length_mm", 0), expectCode: http.StatusBadRequest},
			{name: "base_price_cents invalid (negative)", mutate: testutil.Field("base_price_cents", -1), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slug already taken",
				commandsError:  commands.ErrBraceletSlugTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Bracelet slug already taken",
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
				s.mockCommands.EXPECT().CreateBracelet(gomock.Any(), reqBody).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateBracelet
// ================================================================================

func (s *CatalogHandlerTestSuite) TestUpdateBracelet() {
	braceletID := uuid.New()
	url := "/admin/bracelets/" + braceletID.String()

	newName := "Figaro Chain"
	reqBody := reqdto.UpdateBraceletRequest{Name: &newName}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateBracelet(gomock.Any(), braceletID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/bracelets/invalid-uuid", reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing bracelet", func() {
		s.mockCommands.EXPECT().UpdateBracelet(gomock.Any(), braceletID, gomock.Any()).
			Return(errs.ErrBraceletNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestCreateCharm
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreateCharm() {
	url := "/admin/charms"

	reqBody := reqdto.CreateCharmRequest{
		Sku:            "CHM-STAR",
		Name:           "Star",
		PriceCents:     500,
		WidthMm:        8,
		HeightMm:       6,
		MaxPerBracelet: 10,
		Stock:          25,
		IsActive:       true,
	}
	createdID := uuid.New()

	s.Run("success: returns 201 Created with new id", func() {
		s.mockCommands.EXPECT().CreateCharm(gomock.Any(), reqBody).
			Return(createdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(createdID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseCatalog{
			{name: "missing field: sku (required)", mutate: testutil.Field("sku", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "width_mm invalid (0)", mutate: testutil.Field("width_mm", 0), expectCode: http.StatusBadRequest},
			{name: "height_mm invalid (0)", mutate: testutil.Field("height_mm", 0), expectCode: http.StatusBadRequest},
			{name: "max_per_bracelet invalid (0)", mutate: testutil.Field("max_per_bracelet", 0), expectCode: http.StatusBadRequest},
			{name: "stock invalid (negative)", mutate: testutil.Field("stock", -1), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict when sku already taken", func() {
		s.mockCommands.EXPECT().CreateCharm(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrCharmSkuTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Charm sku already taken")
	})
}

// ================================================================================
// TestUpdateCharm
// ================================================================================

func (s *CatalogHandlerTestSuite) TestUpdateCharm() {
	charmID := uuid.New()
	url := "/admin/charms/" + charmID.String()

	newStock := int32(40)
	reqBody := reqdto.UpdateCharmRequest{Stock: &newStock}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateCharm(gomock.Any(), charmID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/charms/invalid-uuid", reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing charm", func() {
		s.mockCommands.EXPECT().UpdateCharm(gomock.Any(), charmID, gomock.Any()).
			Return(errs.ErrCharmNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
