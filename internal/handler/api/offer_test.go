package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"daycare-waitlist/internal/domain/offer"
	"daycare-waitlist/internal/handler/api"
	resdto "daycare-waitlist/internal/handler/dto/response"
	"daycare-waitlist/internal/pkg/errs"
	"daycare-waitlist/internal/testutil"
	"daycare-waitlist/internal/usecase/commands"
	commandsmock "daycare-waitlist/internal/usecase/mocks/commands"
	queriesmock "daycare-waitlist/internal/usecase/mocks/queries"
	"daycare-waitlist/internal/usecase/queries"
	"daycare-waitlist/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	mockMatching *queriesmock.MockMatchingQueries
}

func (s *OfferHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.mockMatching = queriesmock.NewMockMatchingQueries(s.mockCtrl)

	h := api.NewOfferHandler(s.mockCommands, s.mockQueries, s.mockMatching)
	s.router.POST("/offers", h.Create)
	s.router.GET("/offers", h.List)
	s.router.PATCH("/offers/:id", h.Respond)
	s.router.GET("/providers/:id/candidates", h.Candidates)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func pendingOfferView(in commands.CreateOfferInput) *queries.OfferView {
	return &queries.OfferView{
		ID:               uuid.New(),
		ChildID:          in.ChildID,
		ChildName:        "Ada",
		ChildAge:         3,
		ChildLocation:    "12 Elm Street",
		ProviderID:       in.ProviderID,
		ProviderName:     "Sunny Days",
		ProviderLocation: "123 Main St",
		PlacementID:      in.PlacementID,
		Status:           offer.StatusPending.String(),
		CreatedAt:        testutil.BaseTime,
	}
}

func (s *OfferHandlerTestSuite) TestCreate() {
	in := commands.CreateOfferInput{ChildID: uuid.New(), ProviderID: uuid.New(), PlacementID: uuid.New()}
	body := map[string]any{
		"childId":     in.ChildID.String(),
		"providerId":  in.ProviderID.String(),
		"placementId": in.PlacementID.String(),
	}

	s.Run("success: 201 with the pending offer", func() {
		view := pendingOfferView(in)
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), in).Return(view, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", body, "")

		var res resdto.OfferResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID.String(), res.ID)
		s.Equal(in.ChildID.String(), res.ChildID)
		s.Equal(in.PlacementID.String(), res.PlacementID)
		s.Equal("Ada", res.ChildName)
		s.Equal(3, res.ChildAge)
		s.Equal("12 Elm Street", res.ChildLocation)
		s.Equal("Sunny Days", res.ProviderName)
		s.Equal("123 Main St", res.ProviderLocation)
		s.Equal("pending", res.Status)
		s.Nil(res.RespondedAt)
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing childId", mutate: testutil.Field("childId", nil)},
			{name: "missing placementId", mutate: testutil.Field("placementId", nil)},
			{name: "childId not a uuid", mutate: testutil.Field("childId", "not-a-uuid")},
			{name: "providerId wrong type", mutate: testutil.Field("providerId", 42)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := testutil.DtoMap(s.T(), body, tc.mutate)
				rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", req, "")
				testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps the failure taxonomy to statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"child not found", errs.Mark(errs.New("waitlist entry missing"), errs.ErrNotFound), http.StatusNotFound, "Resource not found"},
			{"capacity exhausted", errs.Mark(errs.New("placement is full"), errs.ErrCapacityExhausted), http.StatusConflict, "No capacity left"},
			{"duplicate pending", errs.Mark(errs.New("already offered"), errs.ErrDuplicatePending), http.StatusConflict, "pending offer already exists"},
			{"placement of another provider", errs.Mark(errs.New("placement mismatch"), errs.ErrValidation), http.StatusBadRequest, "Invalid request"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOffer(gomock.Any(), in).Return(nil, tc.err).Times(1)
				rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, "/offers", body, "")
				testutil.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OfferHandlerTestSuite) TestRespond() {
	offerID := uuid.New()
	url := "/offers/" + offerID.String()

	s.Run("success: accept", func() {
		responded := testutil.BaseTime.Add(time.Hour)
		view := &queries.OfferView{ID: offerID, Status: "accepted", CreatedAt: testutil.BaseTime, RespondedAt: &responded}
		s.mockCommands.EXPECT().RespondToOffer(gomock.Any(), offerID, offer.DecisionAccept).Return(view, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"decision": "accept"}, "")

		var res resdto.OfferResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("accepted", res.Status)
		s.Require().NotNil(res.RespondedAt)
		s.True(responded.Equal(*res.RespondedAt))
	})

	s.Run("success: status spelling is accepted as a decision", func() {
		view := &queries.OfferView{ID: offerID, Status: "declined"}
		s.mockCommands.EXPECT().RespondToOffer(gomock.Any(), offerID, offer.DecisionDecline).Return(view, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"decision": "declined"}, "")
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown decision", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"decision": "maybe"}, "")
		testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Decision must be accept or decline")
	})

	s.Run("error: 400 on invalid offer id", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPatch, "/offers/123", map[string]any{"decision": "accept"}, "")
		testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 409 when the offer is no longer pending", func() {
		err := errs.Mark(errs.New("offer already settled"), errs.ErrInvalidTransition)
		s.mockCommands.EXPECT().RespondToOffer(gomock.Any(), offerID, offer.DecisionAccept).Return(nil, err).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"decision": "accept"}, "")
		testutil.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer pending")
	})

	s.Run("error: 500 on consistency violation", func() {
		err := errs.Mark(errs.New("available count would go negative"), errs.ErrConsistencyViolation)
		s.mockCommands.EXPECT().RespondToOffer(gomock.Any(), offerID, offer.DecisionAccept).Return(nil, err).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"decision": "accept"}, "")
		testutil.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "negative")
	})
}

func (s *OfferHandlerTestSuite) TestList() {
	s.Run("success: passes filters through", func() {
		providerID := uuid.New()
		status := offer.StatusPending
		expected := shared.OfferFilter{ProviderID: &providerID, Status: &status}
		s.mockQueries.EXPECT().List(gomock.Any(), expected).
			Return([]queries.OfferView{{ID: uuid.New(), ProviderID: providerID, Status: "pending"}}, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?providerId="+providerID.String()+"&status=pending", nil, "")

		var res []resdto.OfferResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(providerID.String(), res[0].ProviderID)
	})

	s.Run("success: empty list renders as []", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), shared.OfferFilter{}).Return(nil, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on bad filters", func() {
		for _, q := range []string{"?status=expired", "?childId=abc", "?providerId=1"} {
			rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/offers"+q, nil, "")
			testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
		}
	})
}

func (s *OfferHandlerTestSuite) TestCandidates() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/candidates"

	s.Run("success: keeps ranking order", func() {
		first, second := uuid.New(), uuid.New()
		views := []queries.CandidateView{
			{ChildID: first, ChildName: "A", Age: 3, Distance: 0},
			{ChildID: second, ChildName: "B", Age: 3, Distance: 0, ExistingOffer: strPtr("declined")},
		}
		s.mockMatching.EXPECT().RankCandidates(gomock.Any(), providerID).Return(views, nil).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res []resdto.CandidateResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal(first.String(), res[0].ChildID)
		s.Nil(res[0].ExistingOffer)
		s.Equal(second.String(), res[1].ChildID)
		s.Require().NotNil(res[1].ExistingOffer)
		s.Equal("declined", *res[1].ExistingOffer)
	})

	s.Run("error: 404 for unknown provider", func() {
		err := errs.Mark(errs.New("provider missing"), errs.ErrNotFound)
		s.mockMatching.EXPECT().RankCandidates(gomock.Any(), providerID).Return(nil, err).Times(1)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		testutil.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}
