//go:build e2e

package design_test

import (
	"context"
	"net/http"
	"testing"

	"charmforge/internal/domain/user"
	"charmforge/internal/handler/dto/request"
	"charmforge/internal/handler/dto/response"
	"charmforge/tests/common/authtest"
	"charmforge/tests/common/httptest"
	"charmforge/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	designsURL        = "/api/designs"
	checkoutURL       = "/api/checkout"
	finalizeURL       = "/api/checkout/finalize"
	braceletsURL      = "/api/bracelets"
	charmsURL         = "/api/charms"
	adminBraceletsURL = "/api/admin/bracelets"
	adminCharmsURL    = "/api/admin/charms"
)

type DesignSuite struct {
	e2e.SharedSuite
}

func (s *DesignSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDesignSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DesignSuite))
}

// looks up a seeded charm by sku
func (s *DesignSuite) charmID(t *testing.T, sku string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := s.DB.QueryRow(context.Background(), "SELECT id FROM charms WHERE sku = $1", sku).Scan(&id)
	require.NoError(t, err, "seeded charm %s not found", sku)
	return id
}

func (s *DesignSuite) createDesign(t *testing.T, placements ...request.PlacementRequest) response.DesignResponse {
	t.Helper()
	reqBody := request.CreateDesignRequest{
		BraceletSlug: "classic-chain",
		Currency:     "EUR",
		Placements:   placements,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, designsURL, reqBody, "")
	var created response.DesignResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

// =============================================================================
// TestCreateDesign - Design creation and pricing API tests
// =============================================================================

func (s *DesignSuite) TestCreateDesign() {
	s.Run("Normal case: guest creates a design with stored totals", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")

		created := s.createDesign(t, request.PlacementRequest{CharmID: starID, T: 0.25, Quantity: 4})

		require.Equal(t, int64(5000), created.SubtotalCents, "base 3000 plus 4 charms at 500")
		require.Equal(t, int64(0), created.DiscountCents, "4 charms earn no discount")
		require.Equal(t, int64(5000), created.TotalCents)
		require.Equal(t, "draft", created.Status)
		require.Equal(t, "classic-chain", created.BraceletSlug)
		require.Len(t, created.Placements, 1)
	})

	s.Run("Normal case: five charms earn the 5 percent tier", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")

		created := s.createDesign(t, request.PlacementRequest{CharmID: starID, T: 0.5, Quantity: 5})

		require.Equal(t, int64(5500), created.SubtotalCents)
		require.Equal(t, int64(275), created.DiscountCents)
		require.Equal(t, int64(5225), created.TotalCents)
	})

	s.Run("Normal case: ten charms earn the 10 percent tier", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")

		created := s.createDesign(t, request.PlacementRequest{CharmID: starID, T: 0.1, Quantity: 10})

		require.Equal(t, int64(8000), created.SubtotalCents)
		require.Equal(t, int64(800), created.DiscountCents)
		require.Equal(t, int64(7200), created.TotalCents)
	})

	s.Run("Normal case: authenticated user owns the design", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "designer@example.com", string(user.RoleCustomer))
		starID := s.charmID(t, "CHM-STAR")

		reqBody := request.CreateDesignRequest{
			BraceletSlug: "classic-chain",
			Placements:   []request.PlacementRequest{{CharmID: starID, T: 0.25, Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, designsURL, reqBody, token)

		var created response.DesignResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		var ownerID *uuid.UUID
		err := s.DB.QueryRow(context.Background(), "SELECT user_id FROM designs WHERE id = $1", created.ID).Scan(&ownerID)
		require.NoError(t, err)
		require.NotNil(t, ownerID, "design should be linked to the logged-in user")
	})

	s.Run("Error case: every violation is reported in one response", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")

		reqBody := request.CreateDesignRequest{
			BraceletSlug: "classic-chain",
			Placements: []request.PlacementRequest{
				{CharmID: starID, T: 1.5, OffsetMm: 99, Quantity: 1},
				{CharmID: starID, T: 0.5, Quantity: 1},
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, designsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Design validation failed")

		var body struct {
			Detail []response.ViolationResponse `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Detail, 2, "t and offset_mm violations for the first placement")
		require.Equal(t, 0, body.Detail[0].Placement)
		require.Equal(t, 0, body.Detail[1].Placement)

		var count int
		err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM designs").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "nothing may persist on validation failure")
	})

	s.Run("Error case: unknown charm is rejected with 404", func() {
		t := s.T()

		reqBody := request.CreateDesignRequest{
			BraceletSlug: "classic-chain",
			Placements:   []request.PlacementRequest{{CharmID: uuid.New(), T: 0.5, Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, designsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Design validation failed")
	})

	s.Run("Error case: out-of-stock charm is rejected with 409", func() {
		t := s.T()
		heartID := s.charmID(t, "CHM-HEART") // seeded with zero stock

		reqBody := request.CreateDesignRequest{
			BraceletSlug: "classic-chain",
			Placements:   []request.PlacementRequest{{CharmID: heartID, T: 0.5, Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, designsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Design validation failed")
	})

	s.Run("Error case: unknown bracelet slug returns 404", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")

		reqBody := request.CreateDesignRequest{
			BraceletSlug: "no-such-bracelet",
			Placements:   []request.PlacementRequest{{CharmID: starID, T: 0.5, Quantity: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, designsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Bracelet not found")
	})
}

// =============================================================================
// TestGetDesign / TestPreviewDesign - Read side tests
// =============================================================================

func (s *DesignSuite) TestGetDesign() {
	s.Run("Normal case: stored design is returned with totals", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")
		created := s.createDesign(t, request.PlacementRequest{CharmID: starID, T: 0.75, Quantity: 2})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, designsURL+"/"+created.ID.String(), nil, "")

		var fetched response.DesignResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, created.TotalCents, fetched.TotalCents)
		require.Len(t, fetched.Placements, 1)
		require.Equal(t, starID, fetched.Placements[0].CharmID)
	})

	s.Run("Error case: unknown design returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, designsURL+"/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Design not found")
	})
}

func (s *DesignSuite) TestPreviewDesign() {
	s.Run("Normal case: placements resolve to path coordinates", func() {
		t := s.T()
		starID := s.charmID(t, "CHM-STAR")
		created := s.createDesign(t, request.PlacementRequest{CharmID: starID, T: 0.5, Quantity: 1})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, designsURL+"/"+created.ID.String()+"/preview", nil, "")

		var preview response.DesignPreviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &preview)
		require.Equal(t, created.ID, preview.DesignID)
		require.Len(t, preview.Placements, 1)
		// classic-chain is a straight 180mm segment, so t=0.5 sits halfway
		require.InDelta(t, 90, preview.Placements[0].X, 1e-6)
		require.InDelta(t, 0, preview.Placements[0].Y, 1e-6)
	})

	s.Run("Error case: unknown design returns 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, designsURL+"/"+uuid.NewString()+"/preview", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Design not found")
	})
}

// =============================================================================
// TestCheckout - Checkout failure paths reachable without a live gateway
// =============================================================================

func (s *DesignSuite) TestCheckout() {
	s.Run("Error case: unknown design cannot be checked out", func() {
		t := s.T()
		reqBody := request.CheckoutRequest{DesignID: uuid.New()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Design not found")
	})

	s.Run("Error case: unknown payment reference cannot be finalized", func() {
		t := s.T()
		reqBody := request.FinalizeOrderRequest{PaymentReference: uuid.NewString()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, finalizeURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})

	s.Run("Error case: missing design_id is a binding error", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, map[string]any{}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

// =============================================================================
// TestCatalogAdmin - Admin catalog management tests
// =============================================================================

func (s *DesignSuite) TestCatalogAdmin() {
	newBracelet := request.CreateBraceletRequest{
		Slug:           "figaro-chain",
		Name:           "Figaro Chain",
		PathD:          "M 0 0 L 200 0",
		LengthMm:       200,
		BasePriceCents: 5200,
		IsActive:       true,
	}

	s.Run("Normal case: admin creates and updates catalog entries", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminBraceletsURL, newBracelet, token)
		var created response.CreatedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.ID)

		newPrice := int64(5500)
		patch := request.UpdateBraceletRequest{BasePriceCents: &newPrice}
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminBraceletsURL+"/"+created.ID.String(), patch, token)
		httptest.AssertSuccessResponse(t, w, http.StatusNoContent, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, braceletsURL+"/figaro-chain", nil, "")
		var fetched response.BraceletResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		require.Equal(t, newPrice, fetched.BasePriceCents)
	})

	s.Run("Error case: duplicate slug is rejected with 409", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		dup := newBracelet
		dup.Slug = "classic-chain" // already seeded
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminBraceletsURL, dup, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Bracelet slug already taken")
	})

	s.Run("Error case: customers cannot manage the catalog", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminBraceletsURL, newBracelet, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminBraceletsURL, newBracelet, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: inactive charms are hidden from customers", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		moonID := s.charmID(t, "CHM-MOON")

		inactive := false
		patch := request.UpdateCharmRequest{IsActive: &inactive}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminCharmsURL+"/"+moonID.String(), patch, token)
		httptest.AssertSuccessResponse(t, w, http.StatusNoContent, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, charmsURL, nil, "")
		var public []response.CharmResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &public)
		for _, c := range public {
			require.NotEqual(t, "CHM-MOON", c.Sku, "inactive charm leaked to the public list")
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, charmsURL+"?include_inactive=true", nil, token)
		var full []response.CharmResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &full)
		require.Greater(t, len(full), len(public), "admin list should include the inactive charm")
	})
}
