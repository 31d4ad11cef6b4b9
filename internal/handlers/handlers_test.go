package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sqssvc "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"

	"github.com/mdigital/sales-api/internal/articles"
	"github.com/mdigital/sales-api/internal/aws"
	"github.com/mdigital/sales-api/internal/customers"
	"github.com/mdigital/sales-api/internal/entities"
	"github.com/mdigital/sales-api/internal/payments"
	"github.com/mdigital/sales-api/internal/store"
	"github.com/mdigital/sales-api/internal/transactions"
)

// mockSQS records sent messages in place of the real queue.
type mockSQS struct {
	mu   sync.Mutex
	sent []*sqssvc.SendMessageInput
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqssvc.SendMessageInput, optFns ...func(*sqssvc.Options)) (*sqssvc.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, params)
	return &sqssvc.SendMessageOutput{}, nil
}

type env struct {
	router    *gin.Engine
	sqs       *mockSQS
	articles  *store.Memory[entities.Article]
	customers *store.Memory[entities.Customer]
	payments  *store.Memory[entities.Payment]
}

// newEnv builds a router over fresh in-memory stores, one per test.
func newEnv() *env {
	gin.SetMode(gin.TestMode)

	articleStore := store.NewMemory[entities.Article]()
	customerStore := store.NewMemory[entities.Customer]()
	paymentStore := store.NewMemory[entities.Payment]()
	transactionStore := store.NewMemory[entities.Transaction]()

	mock := &mockSQS{}
	cfg := HandlerConfig{
		Articles:     articles.NewService(articleStore),
		Customers:    customers.NewService(customerStore),
		Payments:     payments.NewService(paymentStore),
		Transactions: transactions.NewService(transactionStore, paymentStore, customerStore, articleStore),
		Publisher:    aws.NewPublisher(mock, "https://sqs.test/queue"),
	}

	r := gin.New()
	r.Use(RequestID())
	RegisterRoutes(r, cfg)

	return &env{
		router:    r,
		sqs:       mock,
		articles:  articleStore,
		customers: customerStore,
		payments:  paymentStore,
	}
}

func (e *env) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) seedArticles(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, a := range []entities.Article{
		{ID: 1, Name: "Article 1", Price: 10.99, Quantity: 20},
		{ID: 2, Name: "Article 2", Price: 20.99, Quantity: 30},
	} {
		if err := e.articles.Insert(ctx, a.ID, a); err != nil {
			t.Fatalf("seed article %d: %v", a.ID, err)
		}
	}
}

func TestGetArticles_SeededListing(t *testing.T) {
	e := newEnv()
	e.seedArticles(t)

	w := e.do(t, http.MethodGet, "/articles", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []entities.Article
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestGetArticles_EmptyListIsJSONArray(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodGet, "/articles", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", w.Body.String())
	}
}

func TestGetArticle_FoundAndMissing(t *testing.T) {
	e := newEnv()
	e.seedArticles(t)

	w := e.do(t, http.MethodGet, "/articles/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got entities.Article
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != 1 || got.Price != 10.99 {
		t.Fatalf("unexpected article: %+v", got)
	}

	if w := e.do(t, http.MethodGet, "/articles/99", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetArticle_NonNumericID(t *testing.T) {
	e := newEnv()

	if w := e.do(t, http.MethodGet, "/articles/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateArticle_CreatedAndDuplicate(t *testing.T) {
	e := newEnv()
	e.seedArticles(t)

	w := e.do(t, http.MethodPost, "/articles", `{"id":3,"name":"New Article","price":9.99,"quantity":10}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/articles/3" {
		t.Fatalf("unexpected Location header: %q", loc)
	}

	w = e.do(t, http.MethodPost, "/articles", `{"id":1,"name":"New Article","price":9.99,"quantity":10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate id, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "duplicate_id") {
		t.Fatalf("expected duplicate_id reason, got %q", w.Body.String())
	}
}

func TestUpdateArticle_MismatchHasNoBody(t *testing.T) {
	e := newEnv()
	e.seedArticles(t)

	w := e.do(t, http.MethodPut, "/articles/1", `{"id":2,"name":"Updated Article","price":19.99,"quantity":5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", w.Body.String())
	}
}

func TestUpdateArticle_NoContentAndNotFound(t *testing.T) {
	e := newEnv()
	e.seedArticles(t)

	w := e.do(t, http.MethodPut, "/articles/2", `{"id":2,"name":"Updated Article","price":19.99,"quantity":5}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = e.do(t, http.MethodPut, "/articles/3", `{"id":3,"name":"Updated Article","price":19.99,"quantity":5}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteArticle_Twice(t *testing.T) {
	e := newEnv()
	e.seedArticles(t)

	if w := e.do(t, http.MethodDelete, "/articles/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/articles/1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestCreateCustomer_Duplicate(t *testing.T) {
	e := newEnv()

	if w := e.do(t, http.MethodPost, "/customers", `{"id":1,"name":"John Doe"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/customers", `{"id":1,"name":"Jane Doe"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreatePayment_AmountDecides(t *testing.T) {
	e := newEnv()

	future := time.Now().AddDate(0, 0, 1).Format(time.RFC3339)
	w := e.do(t, http.MethodPost, "/payments", `{"date":"`+future+`","amount":-100}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_amount") {
		t.Fatalf("expected invalid_amount reason, got %q", w.Body.String())
	}

	now := time.Now().Format(time.RFC3339)
	w = e.do(t, http.MethodPost, "/payments", `{"date":"`+now+`","amount":400}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created entities.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", created.ID)
	}
}

func TestUpdatePayment_Rejections(t *testing.T) {
	e := newEnv()

	now := time.Now().Format(time.RFC3339)

	// mismatch: 400 without body
	w := e.do(t, http.MethodPut, "/payments/1", `{"id":2,"date":"`+now+`","amount":250}`)
	if w.Code != http.StatusBadRequest || w.Body.Len() != 0 {
		t.Fatalf("expected bare 400, got %d %q", w.Code, w.Body.String())
	}

	// invalid amount on an existing-or-not id: 400 with reason
	w = e.do(t, http.MethodPut, "/payments/2", `{"id":2,"date":"`+now+`","amount":-100}`)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "invalid_amount") {
		t.Fatalf("expected invalid_amount 400, got %d %q", w.Code, w.Body.String())
	}

	// valid payload, missing row: 404
	w = e.do(t, http.MethodPut, "/payments/10", `{"id":10,"date":"`+now+`","amount":250}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateTransaction_MissingArticles(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPost, "/transactions", `{"paymentId":1,"customerId":1,"articles":null}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing_articles") {
		t.Fatalf("expected missing_articles reason, got %q", w.Body.String())
	}
}

func TestCreateTransaction_PublishesEvent(t *testing.T) {
	e := newEnv()

	req := httptest.NewRequest(http.MethodPost, "/transactions",
		strings.NewReader(`{"paymentId":1,"customerId":1,"articles":[{"articleId":1,"articleQty":2}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "corr-123")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created entities.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", created.ID)
	}

	if len(e.sqs.sent) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(e.sqs.sent))
	}
	msg := e.sqs.sent[0]
	if !strings.Contains(*msg.MessageBody, `"transaction_id":1`) {
		t.Fatalf("unexpected event body: %q", *msg.MessageBody)
	}
	corr := msg.MessageAttributes["correlation_id"]
	if corr.StringValue == nil || *corr.StringValue != "corr-123" {
		t.Fatalf("expected correlation id attribute, got %+v", corr)
	}
}

func TestUpdateTransaction_DanglingReferencesAccepted(t *testing.T) {
	e := newEnv()

	// seed via the API: payment and customer 1, then the transaction
	now := time.Now().Format(time.RFC3339)
	if w := e.do(t, http.MethodPost, "/payments", `{"date":"`+now+`","amount":100}`); w.Code != http.StatusCreated {
		t.Fatalf("seed payment: %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/customers", `{"id":1,"name":"John Doe"}`); w.Code != http.StatusCreated {
		t.Fatalf("seed customer: %d", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/transactions", `{"paymentId":1,"customerId":1,"articles":[]}`); w.Code != http.StatusCreated {
		t.Fatalf("seed transaction: %d", w.Code)
	}

	// payment 2 and customer 2 do not exist; the default policy accepts this
	w := e.do(t, http.MethodPut, "/transactions/1", `{"paymentId":2,"customerId":2,"articles":[{"articleId":2,"articleQty":3}]}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateTransaction_Missing(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodPut, "/transactions/1", `{"paymentId":2,"customerId":2,"articles":[{"articleId":2,"articleQty":3}]}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	e := newEnv()

	w := e.do(t, http.MethodGet, "/articles", "")
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected generated X-Request-Id header")
	}
}
