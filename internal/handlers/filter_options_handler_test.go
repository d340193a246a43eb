package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-insights/internal/models"
	"sales-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type FilterOptionsHandlerTestSuite struct {
	suite.Suite
	echo           *echo.Echo
	ctrl           *gomock.Controller
	optionsService *service_mocks.MockFilterOptionsServiceInterface
	handler        *FilterOptionsHandler
}

func TestFilterOptionsHandlerSuite(t *testing.T) {
	suite.Run(t, new(FilterOptionsHandlerTestSuite))
}

func (s *FilterOptionsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.optionsService = service_mocks.NewMockFilterOptionsServiceInterface(s.ctrl)
	s.handler = NewFilterOptionsHandler(s.optionsService)
}

func (s *FilterOptionsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FilterOptionsHandlerTestSuite) request() (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/api/filter-options", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return rec, c
}

func (s *FilterOptionsHandlerTestSuite) TestGetFilterOptions_ReturnsSnapshot() {
	s.optionsService.EXPECT().
		Options(gomock.Any()).
		Return(&models.FilterOptions{
			Regions:           []string{"North", "South"},
			Genders:           []string{"Female", "Male"},
			AgeRange:          models.AgeRange{Min: 23, Max: 61},
			ProductCategories: []string{"Electronics"},
			Tags:              []string{"Gift", "Premium"},
			PaymentMethods:    []string{"Cash", "UPI"},
		}, nil).
		Times(1)

	rec, c := s.request()
	s.NoError(s.handler.GetFilterOptions(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Regions  []string `json:"regions"`
		Genders  []string `json:"genders"`
		AgeRange struct {
			Min int `json:"min"`
			Max int `json:"max"`
		} `json:"age_range"`
		ProductCategories []string `json:"product_categories"`
		Tags              []string `json:"tags"`
		PaymentMethods    []string `json:"payment_methods"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal([]string{"North", "South"}, body.Regions)
	s.Equal(23, body.AgeRange.Min)
	s.Equal(61, body.AgeRange.Max)
	s.Equal([]string{"Gift", "Premium"}, body.Tags)
}

func (s *FilterOptionsHandlerTestSuite) TestGetFilterOptions_EmptyLists_EncodeAsArrays() {
	s.optionsService.EXPECT().
		Options(gomock.Any()).
		Return(&models.FilterOptions{
			Regions:           []string{},
			Genders:           []string{},
			AgeRange:          models.AgeRange{Min: 0, Max: 100},
			ProductCategories: []string{},
			Tags:              []string{},
			PaymentMethods:    []string{},
		}, nil).
		Times(1)

	rec, c := s.request()
	s.NoError(s.handler.GetFilterOptions(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"regions":[]`)
	s.NotContains(rec.Body.String(), "null")
}

func (s *FilterOptionsHandlerTestSuite) TestGetFilterOptions_ServiceFailure_Returns500Generic() {
	s.optionsService.EXPECT().
		Options(gomock.Any()).
		Return(nil, errors.New("pq: relation does not exist")).
		Times(1)

	rec, c := s.request()
	s.NoError(s.handler.GetFilterOptions(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "relation")
}
