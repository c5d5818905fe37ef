package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"family-ledger/internal/errors"
	"family-ledger/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheetName = "Transactions"
	maxExportRows   = 5000

	exportFormatXLSX = "xlsx"
	exportFormatCSV  = "csv"

	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
)

var exportHeaders = []string{"Date", "Flow", "Kind", "Description", "Payment method", "Amount", "Processed", "Category", "Subcategory", "Parent"}

// ExportTransactions streams the filtered transactions as a spreadsheet
// @Summary Export transactions
// @Description Accepts the list filters. Pagination parameters are ignored; at most 5000 rows are written.
// @Tags Transactions
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx (default) or csv" Enums(xlsx, csv)
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid filter or format"
// @Router /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	format := strings.ToLower(c.QueryParam("format"))
	if format == "" {
		format = exportFormatXLSX
	}
	if format != exportFormatXLSX && format != exportFormatCSV {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("format must be xlsx or csv"))
	}

	filter, err := parseInstanceFilter(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	filter.OwnerID = userID
	filter.Limit = maxExportRows
	filter.Offset = 0

	instances, total, err := h.instanceService.ListInstances(c.Request().Context(), filter)
	if err != nil {
		return SendDomainError(c, err)
	}

	rows := exportRows(instances)
	filename := fmt.Sprintf("transactions_%s.%s", time.Now().UTC().Format("20060102"), format)

	res := c.Response()
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	if format == exportFormatCSV {
		res.Header().Set(echo.HeaderContentType, mimeCSV)
		res.WriteHeader(http.StatusOK)
		return writeCSV(res, rows)
	}

	f, err := buildWorkbook(rows)
	if err != nil {
		return SendError(c, errors.SystemInternalError)
	}
	defer f.Close()

	res.Header().Set(echo.HeaderContentType, mimeXLSX)
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}

func exportRows(instances []models.TransactionInstance) [][]string {
	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		subcategory := ""
		if inst.SubcategoryID != nil {
			subcategory = inst.SubcategoryID.String()
		}
		parent := ""
		if inst.Origin.ParentID != nil {
			parent = inst.Origin.ParentID.String()
		}

		rows = append(rows, []string{
			inst.Date.String(),
			string(inst.Flow),
			string(inst.Origin.Kind),
			inst.Description,
			inst.PaymentMethod,
			inst.Amount.StringFixed(2),
			strconv.FormatBool(inst.IsProcessed),
			inst.CategoryID.String(),
			subcategory,
			parent,
		})
	}
	return rows
}

func writeCSV(w *echo.Response, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeaders); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func buildWorkbook(rows [][]string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := setSheetRow(f, 1, exportHeaders); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setSheetRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(exportSheetName, "A", "C", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheetName, "D", "D", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheetName, "H", "J", 38); err != nil {
		return nil, err
	}

	return f, nil
}

func setSheetRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(exportSheetName, cell, &cells)
}
