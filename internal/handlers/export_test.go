package handlers

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"

	"family-ledger/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/xuri/excelize/v2"
)

func (s *TransactionHandlerTestSuite) TestExportTransactions_XLSXByDefault() {
	first := s.instance("2024-03-10")
	second := s.instance("2024-03-12")

	s.mockService.EXPECT().
		ListInstances(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.InstanceFilter) ([]models.TransactionInstance, int64, error) {
			s.Equal(s.userID, filter.OwnerID)
			s.Equal(models.FlowExpense, filter.Flow)
			s.Equal(maxExportRows, filter.Limit)
			s.Equal(0, filter.Offset)
			return []models.TransactionInstance{*first, *second}, 2, nil
		})

	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/export?flow=expense&offset=40", nil, &s.userID)

	s.NoError(s.handler.ExportTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(mimeXLSX, rec.Header().Get("Content-Type"))
	s.Contains(rec.Header().Get("Content-Disposition"), ".xlsx")
	s.Equal("2", rec.Header().Get("X-Total-Count"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal(exportHeaders, rows[0])
	s.Equal("2024-03-10", rows[1][0])
	s.Equal("42.50", rows[1][5])
	s.Equal(first.Description, rows[1][3])
	s.Equal("2024-03-12", rows[2][0])
}

func (s *TransactionHandlerTestSuite) TestExportTransactions_CSV() {
	inst := s.instance("2024-04-01")

	s.mockService.EXPECT().
		ListInstances(gomock.Any(), gomock.Any()).
		Return([]models.TransactionInstance{*inst}, int64(1), nil)

	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/export?format=CSV", nil, &s.userID)

	s.NoError(s.handler.ExportTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(mimeCSV, rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(exportHeaders, records[0])
	s.Equal([]string{"2024-04-01", "expense", "single"}, records[1][:3])
	s.Equal("true", records[1][6])
	s.Empty(records[1][9])
}

func (s *TransactionHandlerTestSuite) TestExportTransactions_Rejections() {
	testCases := []struct {
		name   string
		target string
	}{
		{"unknown format", "/api/v1/transactions/export?format=pdf"},
		{"invalid filter", "/api/v1/transactions/export?from=03/01/2024"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newContext(s.echo, http.MethodGet, tc.target, nil, &s.userID)

			s.NoError(s.handler.ExportTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_003", decodeError(s.T(), rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestExportTransactions_Unauthenticated() {
	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/transactions/export", nil, nil)

	s.NoError(s.handler.ExportTransactions(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
