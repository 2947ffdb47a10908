package xlsexport

import (
	"bytes"

	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName        = "Job"
	DescriptionLabel = "Description"
)

var jobHeaders = []string{"Field", "Value"}

func ExportJobDescription(fields *jobdescmodels.FieldSet, description string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, jobHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err = f.SetColWidth(sheet, "A", "A", 30); err != nil {
		return nil, err
	}
	if err = f.SetColWidth(sheet, "B", "B", 100); err != nil {
		return nil, err
	}

	defs := fields.Profile().Fields
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(jobHeaders), row+len(defs)+1); err != nil {
		return nil, errors.Wrap(err, "ошибка оформления таблицы в xlsx")
	}
	for _, def := range defs {
		row++
		if err = writeColumn(f, sheet, 1, row, string(def.Name)); err != nil {
			return nil, err
		}
		if err = writeColumn(f, sheet, 2, row, fields.Value(def.Name)); err != nil {
			return nil, err
		}
	}
	row++
	if err = writeColumn(f, sheet, 1, row, DescriptionLabel); err != nil {
		return nil, err
	}
	if err = writeColumn(f, sheet, 2, row, description); err != nil {
		return nil, err
	}
	if err = f.SetSheetName(sheet, SheetName); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}
