package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/db/model"

	"github.com/xuri/excelize/v2"
)

// fakeUsecase records calls and returns canned results.
type fakeUsecase struct {
	insertedCount int64
	records       []model.DailyRecord
	err           error

	jsonReq *entity.ReferenceJSONRequest
}

func (f *fakeUsecase) IngestReferenceBatch(rows []entity.TableRow) (int64, error) {
	return f.insertedCount, f.err
}

func (f *fakeUsecase) IngestReferenceJSON(req entity.ReferenceJSONRequest) (int64, error) {
	f.jsonReq = &req
	if req.Items == nil {
		return 0, entity.ErrSchemaAbsence
	}
	return f.insertedCount, f.err
}

func (f *fakeUsecase) ListReferenceItems() ([]model.ReferenceItem, error) {
	return nil, f.err
}

func (f *fakeUsecase) ReconcileDailyBatch(rows []entity.TableRow, now time.Time) ([]model.DailyRecord, error) {
	return f.records, f.err
}

func (f *fakeUsecase) ListDailyRecords() ([]model.DailyRecord, error) {
	return f.records, f.err
}

func (f *fakeUsecase) DailySummary() (*entity.DailySummary, error) {
	return &entity.DailySummary{}, f.err
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func multipartWorkbook(t *testing.T, headers []interface{}) (*bytes.Buffer, string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetRow("Sheet1", "A1", &headers); err != nil {
		t.Fatalf("failed to write header row: %v", err)
	}
	wb, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "upload.xlsx")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(wb.Bytes()); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	return body, writer.FormDataContentType()
}

func TestUploadDailyMissingFile(t *testing.T) {
	h := NewInventoryHandler(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/daily/upload", nil)
	rec := httptest.NewRecorder()
	h.UploadDaily(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if resp := decodeResponse(t, rec); resp.Status != "error" {
		t.Errorf("expected error status, got %+v", resp)
	}
}

func TestUploadDailyReturnsEnrichedBatch(t *testing.T) {
	h := NewInventoryHandler(&fakeUsecase{
		records: []model.DailyRecord{{Item: "Bolt"}},
	})

	body, contentType := multipartWorkbook(t, []interface{}{"Item", "On-hand"})
	req := httptest.NewRequest(http.MethodPost, "/api/daily/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadDaily(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "success" || resp.Data == nil {
		t.Errorf("expected success with data, got %+v", resp)
	}
}

func TestIngestReferenceJSONRejectsMissingItems(t *testing.T) {
	h := NewInventoryHandler(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/reference/json", strings.NewReader(`{"unitCosts":[5]}`))
	rec := httptest.NewRecorder()
	h.IngestReferenceJSON(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestIngestReferenceJSONReportsInsertedCount(t *testing.T) {
	fake := &fakeUsecase{insertedCount: 2}
	h := NewInventoryHandler(fake)

	req := httptest.NewRequest(http.MethodPost, "/api/reference/json", strings.NewReader(`{"items":["A","B"],"unitCosts":[5]}`))
	rec := httptest.NewRecorder()
	h.IngestReferenceJSON(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if fake.jsonReq == nil || len(fake.jsonReq.Items) != 2 {
		t.Fatalf("expected request to reach the usecase, got %+v", fake.jsonReq)
	}
}

func TestUploadReferenceStorageFailure(t *testing.T) {
	h := NewInventoryHandler(&fakeUsecase{
		err: &entity.StorageError{Op: "reference bulk insert", Err: errors.New("db down")},
	})

	body, contentType := multipartWorkbook(t, []interface{}{"Item", "Unit cost"})
	req := httptest.NewRequest(http.MethodPost, "/api/reference/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadReference(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestUploadReferenceMalformedValue(t *testing.T) {
	h := NewInventoryHandler(&fakeUsecase{
		err: &entity.MalformedValueError{Column: "Unit cost", Value: "abc"},
	})

	body, contentType := multipartWorkbook(t, []interface{}{"Item", "Unit cost"})
	req := httptest.NewRequest(http.MethodPost, "/api/reference/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.UploadReference(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
