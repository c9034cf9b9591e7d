//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gearbook/internal/domain/reservation"
	"gearbook/internal/handler/api"
	resdto "gearbook/internal/handler/dto/response"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/usecase/queries"
	"gearbook/tests/common/builder"
	"gearbook/tests/common/httptest"
	"gearbook/tests/common/testutil"
	commandsmock "gearbook/tests/mock/commands"
	queriesmock "gearbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.PATCH("/reservations/:id/status", s.handler.Transition)
	s.router.GET("/equipment/:id/reservations", s.handler.ListByEquipment)
	s.router.GET("/users/:id/reservations", s.handler.ListByUser)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		missing := []struct {
			name  string
			field string
		}{
			{name: "missing equipment_id", field: "equipment_id"},
			{name: "missing user_id", field: "user_id"},
			{name: "missing start_time", field: "start_time"},
			{name: "missing end_time", field: "end_time"},
			{name: "missing purpose", field: "purpose"},
		}

		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "equipment not found",
				commandsError:  errs.Mark(errs.New("equipment lookup failed"), errs.ErrEquipmentNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Equipment not found",
			},
			{
				name:           "requester not found",
				commandsError:  errs.Mark(errs.New("requester lookup failed"), errs.ErrUserNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "reservation conflict",
				commandsError:  errs.Mark(errs.New("window overlaps an active reservation"), errs.ErrReservationConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Reservation conflict",
			},
			{
				name:           "domain validation",
				commandsError:  errs.Mark(errs.New("bad input"), errs.ErrDomainValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("store exploded"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	returnView := builder.NewReservationBuilder().WithID(reservationID).BuildView()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(returnView.Purpose, response.Purpose)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservationID).
			Return(nil, errs.Mark(errs.New("no such reservation"), errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with all reservations", func() {
		first := builder.NewReservationBuilder().BuildView()
		second := builder.NewReservationBuilder().AsApproved().BuildView()

		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ReservationView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(first.ID, response[0].ID)
		s.Equal(second.ID, response[1].ID)
	})
}

// ================================================================================
// TestTransition
// ================================================================================

func (s *ReservationHandlerTestSuite) TestTransition() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/status"

	returnView := builder.NewReservationBuilder().WithID(reservationID).AsApproved().BuildView()

	s.Run("success: returns 200 OK after approval", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), reservationID, reservation.StatusApproved, gomock.Any()).
			Return(returnView, nil).Times(1)

		body := map[string]any{"status": "approved"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("error: 400 Bad Request when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 Unprocessable Entity on illegal transition", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), reservationID, reservation.StatusCompleted, gomock.Any()).
			Return(nil, errs.Mark(errs.New("completed is terminal"), errs.ErrIllegalTransition)).Times(1)

		body := map[string]any{"status": "completed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Illegal status transition")
	})
}

// ================================================================================
// TestListByEquipment / TestListByUser
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListByEquipment() {
	equipmentID := uuid.New()
	url := "/equipment/" + equipmentID.String() + "/reservations"

	s.Run("success: returns 200 OK", func() {
		view := builder.NewReservationBuilder().WithEquipmentID(equipmentID).BuildView()
		s.mockQueries.EXPECT().ListByEquipment(gomock.Any(), equipmentID).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(equipmentID, response[0].EquipmentID)
	})
}

func (s *ReservationHandlerTestSuite) TestListByUser() {
	userID := uuid.New()
	url := "/users/" + userID.String() + "/reservations"

	s.Run("success: returns 200 OK", func() {
		view := builder.NewReservationBuilder().WithUserID(userID).BuildView()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []*resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(userID, response[0].UserID)
	})
}
