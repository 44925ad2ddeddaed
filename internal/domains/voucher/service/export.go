package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	userModel "ecommerce-backend/internal/domains/user/model"
	"ecommerce-backend/internal/domains/voucher/model"
)

const (
	exportSheet       = "Issuance"
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportIssuance xuất danh sách phát voucher ra xlsx và upload lên storage
func (s *voucherService) ExportIssuance(ctx context.Context, id int64) (*model.ExportResult, error) {
	if _, err := s.findVoucher(ctx, id); err != nil {
		return nil, err
	}

	issuances, err := s.repo.FindIssuancesByVoucher(ctx, id)
	if err != nil {
		return nil, err
	}

	customers := map[int64]userModel.User{}
	if len(issuances) > 0 {
		customers, err = s.recipients(ctx, issuances)
		if err != nil {
			return nil, err
		}
	}

	f, err := buildIssuanceWorkbook(issuances, customers)
	if err != nil {
		return nil, fmt.Errorf("build issuance workbook: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write issuance workbook: %w", err)
	}

	key := fmt.Sprintf("%s/%d/%s.xlsx", s.exportPrefix, id, s.now().In(s.loc).Format("20060102-150405"))
	size := int64(buf.Len())
	url, err := s.storage.Upload(ctx, key, &buf, size, exportContentType)
	if err != nil {
		return nil, fmt.Errorf("upload issuance export: %w", err)
	}

	log.Info().Int64("voucher_id", id).Str("key", key).Int("rows", len(issuances)).Msg("[VoucherService] Issuance exported")

	return &model.ExportResult{
		VoucherID: id,
		ObjectKey: key,
		URL:       url,
		Rows:      len(issuances),
	}, nil
}

func buildIssuanceWorkbook(issuances []model.VoucherCustomer, customers map[int64]userModel.User) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Customer ID", "Customer Name", "Email", "Code", "Status"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(exportSheet, "A1", "F1", headerStyle)
	}

	for i, vc := range issuances {
		customer := customers[vc.CustomerID]
		values := []interface{}{vc.ID, vc.CustomerID, customer.FullName, customer.Email, vc.Code, string(vc.Status)}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}
