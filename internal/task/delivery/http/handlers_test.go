package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-extraction/internal/extractor"
	"task-extraction/internal/model"
	"task-extraction/internal/task"
	taskHTTP "task-extraction/internal/task/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	extractOutput task.ExtractOutput
	extractErr    error
	extractInput  task.ExtractInput

	ingestOutput task.IngestOutput
	ingestErr    error
	ingestInput  task.IngestInput

	listOutput task.ListOutput
	listErr    error
	listInput  task.ListInput
}

func (m *mockUseCase) Extract(ctx context.Context, sc model.Scope, input task.ExtractInput) (task.ExtractOutput, error) {
	m.extractInput = input
	return m.extractOutput, m.extractErr
}

func (m *mockUseCase) Ingest(ctx context.Context, sc model.Scope, input task.IngestInput) (task.IngestOutput, error) {
	m.ingestInput = input
	return m.ingestOutput, m.ingestErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.listInput = input
	return m.listOutput, m.listErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T, muc *mockUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := taskHTTP.New(&mockLogger{}, muc)

	engine := gin.New()
	engine.POST("/tasks/extract", h.Extract)
	engine.POST("/tasks/ingest", h.Ingest)
	engine.GET("/tasks", h.List)
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return env
}

// ── Extract ────────────────────────────────────────────────────────────────

func TestExtract_Success(t *testing.T) {
	due := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	muc := &mockUseCase{
		extractOutput: task.ExtractOutput{
			Tasks: []extractor.ExtractedTask{
				{Title: "Rückruf bei Kunde vereinbaren", Priority: extractor.PriorityHigh, DueAt: &due},
				{Title: "Unterlagen senden", Priority: extractor.PriorityMedium},
			},
		},
	}
	engine := newTestEngine(t, muc)

	w := doJSON(engine, http.MethodPost, "/tasks/extract", map[string]any{
		"next_step": "Rückruf bei Kunde vereinbaren\nUnterlagen senden",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if muc.extractInput.NextStep != "Rückruf bei Kunde vereinbaren\nUnterlagen senden" {
		t.Errorf("forwarded NextStep = %q", muc.extractInput.NextStep)
	}

	env := decodeEnvelope(t, w)
	if env.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", env.ErrorCode)
	}

	var data struct {
		Tasks []struct {
			Title    string `json:"title"`
			Priority string `json:"priority"`
			DueAt    string `json:"due_at"`
		} `json:"tasks"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count != 2 || len(data.Tasks) != 2 {
		t.Fatalf("count = %d, tasks = %d, want 2/2", data.Count, len(data.Tasks))
	}
	if data.Tasks[0].Priority != "high" || data.Tasks[0].DueAt == "" {
		t.Errorf("first task = %+v", data.Tasks[0])
	}
	if data.Tasks[1].DueAt != "" {
		t.Errorf("second task due_at = %q, want omitted", data.Tasks[1].DueAt)
	}
}

func TestExtract_MissingBody(t *testing.T) {
	engine := newTestEngine(t, &mockUseCase{})

	w := doJSON(engine, http.MethodPost, "/tasks/extract", map[string]any{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestExtract_EmptyInputError(t *testing.T) {
	muc := &mockUseCase{extractErr: task.ErrEmptyInput}
	engine := newTestEngine(t, muc)

	w := doJSON(engine, http.MethodPost, "/tasks/extract", map[string]any{
		"next_step": "   ",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Message != "next step text is empty" {
		t.Errorf("message = %q", env.Message)
	}
}

// ── Ingest ─────────────────────────────────────────────────────────────────

func TestIngest_Success(t *testing.T) {
	muc := &mockUseCase{
		ingestOutput: task.IngestOutput{
			Tasks: []task.IngestedTask{
				{
					ID:          "task-1",
					Fingerprint: "a1b2c3d4e5f60718",
					Title:       "Angebot erstellen und senden",
					Priority:    extractor.PriorityHigh,
					SourceType:  extractor.SourceCall,
					SourceID:    "call-42",
				},
				{
					ID:          "task-2",
					Fingerprint: "ffeeddccbbaa0099",
					Title:       "Nachfassen per Mail",
					Priority:    extractor.PriorityMedium,
					SourceType:  extractor.SourceCall,
					SourceID:    "call-42",
					Duplicate:   true,
				},
			},
			CreatedCount: 1,
			SkippedCount: 1,
		},
	}
	engine := newTestEngine(t, muc)

	w := doJSON(engine, http.MethodPost, "/tasks/ingest", map[string]any{
		"source_type": "call",
		"source_id":   "call-42",
		"summary": map[string]any{
			"next_step": "Angebot erstellen und senden\nNachfassen per Mail",
			"outcome":   "Kunde interessiert",
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if muc.ingestInput.SourceType != extractor.SourceCall || muc.ingestInput.SourceID != "call-42" {
		t.Errorf("forwarded input = %+v", muc.ingestInput)
	}
	if muc.ingestInput.Outcome != "Kunde interessiert" {
		t.Errorf("forwarded Outcome = %q", muc.ingestInput.Outcome)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Tasks []struct {
			Fingerprint string `json:"fingerprint"`
			Duplicate   bool   `json:"duplicate"`
		} `json:"tasks"`
		CreatedCount int `json:"created_count"`
		SkippedCount int `json:"skipped_count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.CreatedCount != 1 || data.SkippedCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", data.CreatedCount, data.SkippedCount)
	}
	if !data.Tasks[1].Duplicate {
		t.Errorf("second task should be flagged duplicate")
	}
}

func TestIngest_InvalidSourceType(t *testing.T) {
	engine := newTestEngine(t, &mockUseCase{})

	w := doJSON(engine, http.MethodPost, "/tasks/ingest", map[string]any{
		"source_type": "email",
		"source_id":   "x-1",
		"summary":     map[string]any{"next_step": "Unterlagen senden"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestIngest_UseCaseError(t *testing.T) {
	muc := &mockUseCase{ingestErr: task.ErrMissingSourceID}
	engine := newTestEngine(t, muc)

	w := doJSON(engine, http.MethodPost, "/tasks/ingest", map[string]any{
		"source_type": "manual",
		"source_id":   "k",
		"summary":     map[string]any{"next_step": "Unterlagen senden"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Message != "source id is required" {
		t.Errorf("message = %q", env.Message)
	}
}

// ── List ───────────────────────────────────────────────────────────────────

func TestList_Filters(t *testing.T) {
	muc := &mockUseCase{
		listOutput: task.ListOutput{
			Tasks: []task.IngestedTask{
				{ID: "task-1", Title: "Termin vereinbaren", Priority: extractor.PriorityHigh},
			},
			Total:  1,
			Limit:  10,
			Offset: 0,
		},
	}
	engine := newTestEngine(t, muc)

	req, _ := http.NewRequest(http.MethodGet, "/tasks?source_type=call&priority=high&limit=10", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if muc.listInput.SourceType != extractor.SourceCall {
		t.Errorf("forwarded SourceType = %q", muc.listInput.SourceType)
	}
	if muc.listInput.Priority != extractor.PriorityHigh {
		t.Errorf("forwarded Priority = %q", muc.listInput.Priority)
	}
	if muc.listInput.Limit != 10 {
		t.Errorf("forwarded Limit = %d", muc.listInput.Limit)
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Tasks []struct {
			Title string `json:"title"`
		} `json:"tasks"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Total != 1 || len(data.Tasks) != 1 {
		t.Fatalf("total = %d, tasks = %d, want 1/1", data.Total, len(data.Tasks))
	}
}

func TestList_InvalidPriority(t *testing.T) {
	engine := newTestEngine(t, &mockUseCase{})

	req, _ := http.NewRequest(http.MethodGet, "/tasks?priority=urgent", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestList_InternalError(t *testing.T) {
	muc := &mockUseCase{listErr: context.DeadlineExceeded}
	engine := newTestEngine(t, muc)

	req, _ := http.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
