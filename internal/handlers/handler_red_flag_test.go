package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/apperrors"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/core/domain"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/dto"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/handlers"
)

type RedFlagHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRedFlagService
	token       string
}

func (suite *RedFlagHandlerTestSuite) SetupTest() {
	router, v1 := newTestRouter(suite.T())
	suite.router = router
	suite.mockService = new(MockRedFlagService)
	suite.token = generateTestToken(suite.T(), uuid.NewString())
	handlers.RegisterRedFlagRoutes(v1, suite.mockService)
}

func (suite *RedFlagHandlerTestSuite) do(method, url string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader([]byte(body)))
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RedFlagHandlerTestSuite) TestScan_Success() {
	flags := []domain.RedFlag{{
		FlagID:        "f1",
		ClientID:      "c1",
		TransactionID: "t1",
		FlagType:      domain.FlagLargeCash,
		Severity:      domain.SeverityMedium,
		Metadata:      map[string]any{"amount": "15000"},
	}}
	summary := &domain.ScanSummary{ClientID: "c1", TransactionsScanned: 10, FlagsCreated: 1}
	suite.mockService.On("ScanForRedFlags", mock.Anything, domain.TransactionScope{ClientID: "c1", SheetID: "s1"}).
		Return(flags, summary, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/red-flags/scan", `{"clientID":"c1","sheetID":"s1"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ScanRedFlagsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Flags, 1)
	suite.Equal("large_cash", resp.Flags[0].FlagType)
	suite.Equal("15000", resp.Flags[0].Metadata["amount"])
	suite.Equal(10, resp.Summary.TransactionsScanned)
}

func (suite *RedFlagHandlerTestSuite) TestScan_DateRange() {
	summary := &domain.ScanSummary{ClientID: "c1"}
	suite.mockService.On("ScanForRedFlags", mock.Anything, mock.MatchedBy(func(s domain.TransactionScope) bool {
		return s.ClientID == "c1" && s.From != nil && s.To != nil && s.From.Before(*s.To)
	})).Return([]domain.RedFlag{}, summary, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/red-flags/scan",
		`{"clientID":"c1","from":"2024-04-01T00:00:00Z","to":"2025-03-31T00:00:00Z"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *RedFlagHandlerTestSuite) TestScan_InvertedRange() {
	w := suite.do(http.MethodPost, "/api/v1/red-flags/scan",
		`{"clientID":"c1","from":"2025-04-01T00:00:00Z","to":"2024-03-31T00:00:00Z"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ScanForRedFlags", mock.Anything, mock.Anything)
}

func (suite *RedFlagHandlerTestSuite) TestScan_MissingClient() {
	w := suite.do(http.MethodPost, "/api/v1/red-flags/scan", `{"clientID":"   "}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RedFlagHandlerTestSuite) TestScanAll() {
	summaries := []domain.ScanSummary{
		{ClientID: "c1", FlagsCreated: 2},
		{ClientID: "c2", Error: "failed to fetch transactions: timeout"},
	}
	suite.mockService.On("ScanAllClients", mock.Anything, mock.Anything).Return(summaries, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/red-flags/scan-all", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ScanAllClientsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(summaries, resp.Summaries)
}

func (suite *RedFlagHandlerTestSuite) TestList_WithFilters() {
	createdAt := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	flags := []domain.RedFlag{{FlagID: "f1", ClientID: "c1", CreatedAt: createdAt}}
	suite.mockService.On("ListRedFlags", mock.Anything, "c1",
		mock.MatchedBy(func(r *bool) bool { return r != nil && !*r }),
		25,
		mock.MatchedBy(func(tok *string) bool { return tok != nil && *tok == "abc" }),
	).Return(flags, "next-page", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/red-flags?clientID=c1&resolved=false&limit=25&nextToken=abc", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListRedFlagsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Flags, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *RedFlagHandlerTestSuite) TestList_BadToken() {
	suite.mockService.On("ListRedFlags", mock.Anything, "c1", (*bool)(nil), 0, mock.Anything).
		Return(nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("bad base64"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/red-flags?clientID=c1&nextToken=not-a-token", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RedFlagHandlerTestSuite) TestList_MissingClient() {
	w := suite.do(http.MethodGet, "/api/v1/red-flags", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RedFlagHandlerTestSuite) TestResolve() {
	note := "Verified with vendor"
	now := time.Now().UTC()
	flag := &domain.RedFlag{FlagID: "f1", Resolved: true, ResolutionNote: &note, ResolvedAt: &now}
	suite.mockService.On("ResolveRedFlag", mock.Anything, "f1", note).Return(flag, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/red-flags/f1/resolve", `{"note":"Verified with vendor"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RedFlagResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Resolved)
	suite.Equal(note, *resp.ResolutionNote)
}

func (suite *RedFlagHandlerTestSuite) TestResolve_NotFound() {
	suite.mockService.On("ResolveRedFlag", mock.Anything, "ghost", "note").
		Return(nil, fmt.Errorf("red flag ghost: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/red-flags/ghost/resolve", `{"note":"note"}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RedFlagHandlerTestSuite) TestResolve_EmptyNote() {
	w := suite.do(http.MethodPost, "/api/v1/red-flags/f1/resolve", `{"note":""}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestRedFlagHandler(t *testing.T) {
	suite.Run(t, new(RedFlagHandlerTestSuite))
}
