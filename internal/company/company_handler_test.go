package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"
	companyerrors "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/errors"
	companyMock "github.com/AYA-EBRAHIM18/Job-Search-App/internal/company/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupCompanyRouter(handler *company.Handler, actorID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Set("role", "Company_HR")
	})
	r.POST("/companies/addCompany", handler.Add)
	r.DELETE("/companies/:companyId", handler.Delete)
	r.GET("/companies/searchCompany", handler.Search)
	return r
}

func TestHandler_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)
	actorID := uuid.NewString()
	router := setupCompanyRouter(handler, actorID)

	reqBody := company.AddCompanyRequest{
		CompanyName:       "Acme",
		Description:       "Widgets",
		Industry:          "Manufacturing",
		Address:           "Cairo",
		NumberOfEmployees: "11-20",
		CompanyEmail:      "hr@acme.example",
	}

	t.Run("Created", func(t *testing.T) {
		mockService.EXPECT().
			Add(gomock.Any(), actorID, reqBody).
			Return(company.CompanyResponse{ID: uuid.NewString(), CompanyName: "Acme"}, nil)

		body, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/companies/addCompany", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, "Acme", res["data"].(map[string]any)["company_name"])
	})

	t.Run("Duplicate is 409 with error envelope", func(t *testing.T) {
		mockService.EXPECT().
			Add(gomock.Any(), actorID, gomock.Any()).
			Return(company.CompanyResponse{}, companyerrors.ErrCompanyExists)

		body, _ := json.Marshal(reqBody)
		req := httptest.NewRequest(http.MethodPost, "/companies/addCompany", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, false, res["ok"])
	})

	t.Run("Binding failure never reaches the service", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/companies/addCompany", bytes.NewBufferString(`{"company_name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)
	actorID := uuid.NewString()
	router := setupCompanyRouter(handler, actorID)

	companyID := uuid.NewString()

	t.Run("Owner deletes", func(t *testing.T) {
		mockService.EXPECT().
			Delete(gomock.Any(), actorID, companyID).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/companies/"+companyID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Non-owner gets 403", func(t *testing.T) {
		mockService.EXPECT().
			Delete(gomock.Any(), actorID, companyID).
			Return(companyerrors.ErrNotCompanyOwner)

		req := httptest.NewRequest(http.MethodDelete, "/companies/"+companyID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)
	router := setupCompanyRouter(handler, uuid.NewString())

	t.Run("Zero matches is 404", func(t *testing.T) {
		mockService.EXPECT().
			Search(gomock.Any(), "ghost").
			Return(nil, companyerrors.ErrNoCompaniesFound)

		req := httptest.NewRequest(http.MethodGet, "/companies/searchCompany?name=ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
