//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"gearbook/internal/domain/equipment"
	"gearbook/internal/domain/scheduling"
	"gearbook/internal/handler/api"
	resdto "gearbook/internal/handler/dto/response"
	"gearbook/internal/pkg/errs"
	"gearbook/internal/usecase/queries"
	"gearbook/tests/common/builder"
	"gearbook/tests/common/httptest"
	commandsmock "gearbook/tests/mock/commands"
	queriesmock "gearbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EquipmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEquipmentCommands
	mockQueries  *queriesmock.MockEquipmentQueries
	handler      *api.EquipmentHandler
}

func (s *EquipmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEquipmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEquipmentQueries(s.mockCtrl)
	s.handler = api.NewEquipmentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/equipment", s.handler.List)
	s.router.GET("/equipment/:id", s.handler.Get)
	s.router.PATCH("/equipment/:id/status", s.handler.OverrideStatus)
}

func (s *EquipmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEquipmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EquipmentHandlerTestSuite))
}

func (s *EquipmentHandlerTestSuite) TestList() {
	view := builder.NewEquipmentBuilder().BuildView()

	s.Run("success: plain list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.EquipmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment", nil)

		var response []*resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.ID, response[0].ID)
	})

	s.Run("success: free-text search takes precedence", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "microscope").
			Return([]*queries.EquipmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment?query=microscope", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: status filter", func() {
		s.mockQueries.EXPECT().FilterByStatus(gomock.Any(), equipment.StatusAvailable).
			Return([]*queries.EquipmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment?status=available", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment?status=broken", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("success: category filter", func() {
		s.mockQueries.EXPECT().FilterByCategory(gomock.Any(), "laboratory").
			Return([]*queries.EquipmentView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/equipment?category=laboratory", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *EquipmentHandlerTestSuite) TestGet() {
	equipmentID := uuid.New()
	url := "/equipment/" + equipmentID.String()

	s.Run("success: returns 200 OK", func() {
		view := builder.NewEquipmentBuilder().WithID(equipmentID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), equipmentID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(equipmentID, response.ID)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), equipmentID).
			Return(nil, errs.Mark(errs.New("no such equipment"), errs.ErrEquipmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})
}

func (s *EquipmentHandlerTestSuite) TestOverrideStatus() {
	equipmentID := uuid.New()
	url := "/equipment/" + equipmentID.String() + "/status"

	s.Run("success: returns 200 OK", func() {
		view := builder.NewEquipmentBuilder().WithID(equipmentID).AsReserved().BuildView()
		s.mockCommands.EXPECT().OverrideStatus(gomock.Any(), equipmentID, equipment.StatusReserved).
			Return(view, nil).Times(1)

		body := map[string]any{"status": "reserved"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)

		var response resdto.EquipmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("reserved", response.Status)
	})

	s.Run("error: 409 Conflict carries conflicting reservation ids", func() {
		conflictingID := uuid.New()
		conflictErr := errs.Mark(
			&scheduling.ConflictError{EquipmentID: equipmentID, ConflictingIDs: []uuid.UUID{conflictingID}},
			errs.ErrReservationConflict,
		)
		s.mockCommands.EXPECT().OverrideStatus(gomock.Any(), equipmentID, equipment.StatusAvailable).
			Return(nil, conflictErr).Times(1)

		body := map[string]any{"status": "available"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation conflict")

		var envelope struct {
			Detail struct {
				ConflictingIDs []uuid.UUID `json:"conflicting_ids"`
			} `json:"detail"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &envelope)
		s.Equal([]uuid.UUID{conflictingID}, envelope.Detail.ConflictingIDs)
	})

	s.Run("error: 400 Bad Request when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
