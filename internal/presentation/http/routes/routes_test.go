package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaddesk/leaddesk-api/internal/application/service"
	"github.com/leaddesk/leaddesk-api/internal/config"
	"github.com/leaddesk/leaddesk-api/internal/domain/entity"
	"github.com/leaddesk/leaddesk-api/internal/domain/enum"
	"github.com/leaddesk/leaddesk-api/internal/domain/repository"
	"github.com/leaddesk/leaddesk-api/internal/presentation/http/handler"
	"github.com/leaddesk/leaddesk-api/pkg/pagination"
	"github.com/leaddesk/leaddesk-api/pkg/utils"
)

type memLeadRepo struct {
	leads        []*entity.Lead
	feedbacks    []*entity.Feedback
	interactions []*entity.Interaction
	nextID       uint
}

func (r *memLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	for _, l := range r.leads {
		if l.Phone == lead.Phone {
			return repository.ErrDuplicateKey
		}
	}
	r.nextID++
	lead.ID = r.nextID
	lead.FriendlyID = fmt.Sprintf("LEAD-%04d", lead.ID)
	lead.CreatedAt = time.Now()
	r.leads = append(r.leads, lead)
	return nil
}

func (r *memLeadRepo) GetByFriendlyID(_ context.Context, friendlyID string) (*entity.Lead, error) {
	for _, l := range r.leads {
		if l.FriendlyID == friendlyID {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memLeadRepo) GetByPhone(_ context.Context, phone string) (*entity.Lead, error) {
	for _, l := range r.leads {
		if l.Phone == phone {
			return l, nil
		}
	}
	return nil, nil
}

func (r *memLeadRepo) GetDetail(ctx context.Context, friendlyID string) (*entity.Lead, error) {
	return r.GetByFriendlyID(ctx, friendlyID)
}

func (r *memLeadRepo) MarkRevisit(ctx context.Context, friendlyID, interactionType, content string) (*entity.Lead, error) {
	lead, err := r.GetByFriendlyID(ctx, friendlyID)
	if err != nil || lead == nil {
		return lead, err
	}
	lead.Status = enum.LeadStatusRevisit
	r.interactions = append(r.interactions, &entity.Interaction{
		LeadID: lead.ID, Type: interactionType, Content: content,
	})
	return lead, nil
}

func (r *memLeadRepo) Recent(_ context.Context, limit int) ([]repository.LeadSummary, error) {
	var out []repository.LeadSummary
	for i := len(r.leads) - 1; i >= 0 && len(out) < limit; i-- {
		l := r.leads[i]
		out = append(out, repository.LeadSummary{
			FriendlyID: l.FriendlyID, CustomerName: l.CustomerName,
			Phone: l.Phone, Source: l.Source, Status: l.Status, CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}

func (r *memLeadRepo) List(_ context.Context, _ *pagination.PaginationParams) ([]entity.Lead, int64, error) {
	out := make([]entity.Lead, 0, len(r.leads))
	for i := len(r.leads) - 1; i >= 0; i-- {
		out = append(out, *r.leads[i])
	}
	return out, int64(len(out)), nil
}

func (r *memLeadRepo) Search(_ context.Context, query, paddedCode string, limit int) ([]repository.LeadSearchRow, error) {
	q := strings.ToLower(query)
	var out []repository.LeadSearchRow
	for _, l := range r.leads {
		if len(out) >= limit {
			break
		}
		matched := strings.Contains(strings.ToLower(l.FriendlyID), q) ||
			strings.Contains(strings.ToLower(l.CustomerName), q) ||
			strings.Contains(l.Phone, query)
		if !matched && paddedCode != "" {
			matched = strings.Contains(l.FriendlyID, paddedCode)
		}
		if matched {
			hasFeedback := false
			for _, f := range r.feedbacks {
				if f.LeadID == l.ID {
					hasFeedback = true
					break
				}
			}
			out = append(out, repository.LeadSearchRow{
				FriendlyID: l.FriendlyID, CustomerName: l.CustomerName,
				Phone: l.Phone, HasFeedback: hasFeedback,
			})
		}
	}
	return out, nil
}

func (r *memLeadRepo) Stats(_ context.Context) (*repository.LeadStats, error) {
	stats := &repository.LeadStats{}
	for _, l := range r.leads {
		if l.Status == enum.LeadStatusRevisit {
			stats.RevisitCount++
		} else {
			stats.VisitCount++
		}
	}
	stats.TotalVisitsRevisits = stats.VisitCount + stats.RevisitCount
	stats.PendingCount = stats.TotalVisitsRevisits
	return stats, nil
}

func (r *memLeadRepo) CreateFeedback(_ context.Context, feedback *entity.Feedback) error {
	r.feedbacks = append(r.feedbacks, feedback)
	return nil
}

func (r *memLeadRepo) DeleteCascade(_ context.Context, leadID uint) error {
	var leads []*entity.Lead
	for _, l := range r.leads {
		if l.ID != leadID {
			leads = append(leads, l)
		}
	}
	r.leads = leads
	return nil
}

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	user.ID = uuid.New()
	r.users = append(r.users, user)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

type memPartnerRepo struct {
	partners []*entity.ChannelPartner
}

func (r *memPartnerRepo) Create(_ context.Context, partner *entity.ChannelPartner) error {
	partner.ID = uint(len(r.partners) + 1)
	r.partners = append(r.partners, partner)
	return nil
}

func (r *memPartnerRepo) GetByPhone(_ context.Context, phone string) (*entity.ChannelPartner, error) {
	for _, p := range r.partners {
		if p.Phone == phone {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPartnerRepo) List(_ context.Context) ([]entity.ChannelPartner, error) {
	out := make([]entity.ChannelPartner, 0, len(r.partners))
	for _, p := range r.partners {
		out = append(out, *p)
	}
	return out, nil
}

type memIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func (r *memIdempotencyRepo) Create(_ context.Context, key *entity.IdempotencyKey) error {
	if r.keys == nil {
		r.keys = make(map[string]*entity.IdempotencyKey)
	}
	r.keys[key.Key] = key
	return nil
}

func (r *memIdempotencyRepo) GetByKey(_ context.Context, key string, _ uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.keys[key], nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:   config.AppConfig{Name: "leaddesk-api-test"},
		Admin: config.AdminConfig{Email: "admin@leaddesk.test", Password: "super-secret"},
		RateLimit: config.RateLimitConfig{
			Requests: 1000,
			Duration: 1,
		},
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	leadService := service.NewLeadService(&memLeadRepo{})
	partnerService := service.NewChannelPartnerService(&memPartnerRepo{})
	authService := service.NewAuthService(&memUserRepo{}, jwtManager, cfg.Admin)

	handlers := &Handlers{
		Auth:           handler.NewAuthHandler(authService),
		Lead:           handler.NewLeadHandler(leadService),
		Admin:          handler.NewAdminHandler(leadService, authService),
		ChannelPartner: handler.NewChannelPartnerHandler(partnerService),
	}

	router := gin.New()
	Setup(router, handlers, &Deps{
		Config:          cfg,
		JWTManager:      jwtManager,
		IdempotencyRepo: &memIdempotencyRepo{},
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@leaddesk.test",
		"password": "super-secret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	return data["access_token"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/leads/recent", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAdmin(t, router)

	// Create a receptionist and log in as them
	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]string{
		"first_name": "Priya",
		"last_name":  "Nair",
		"email":      "priya@leaddesk.test",
		"password":   "reception123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "priya@leaddesk.test",
		"password": "reception123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	receptionToken := decodeBody(t, w)["data"].(map[string]interface{})["access_token"].(string)

	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/leads", receptionToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Receptionist can still use lead routes
	w = doRequest(t, router, http.MethodGet, "/api/v1/leads/recent", receptionToken, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMe(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAdmin(t, router)

	// Bootstrap admin profile comes from the token, not a user row
	w := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", adminToken, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "admin@leaddesk.test", data["email"])
	assert.Equal(t, "admin", data["role"])

	// Receptionist profile is the stored account
	w = doRequest(t, router, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]string{
		"first_name": "Priya",
		"last_name":  "Nair",
		"email":      "priya@leaddesk.test",
		"password":   "reception123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "priya@leaddesk.test",
		"password": "reception123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	receptionToken := decodeBody(t, w)["data"].(map[string]interface{})["access_token"].(string)

	w = doRequest(t, router, http.MethodGet, "/api/v1/auth/me", receptionToken, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "priya@leaddesk.test", data["email"])
	assert.Equal(t, "receptionist", data["role"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/auth/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLeadLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	// Intake
	w := doRequest(t, router, http.MethodPost, "/api/v1/leads", token, map[string]interface{}{
		"first_name": "Asha",
		"last_name":  "Rao",
		"phone":      "9999999999",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "LEAD-0001", data["friendly_id"])
	assert.Equal(t, "VISIT", data["status"])
	assert.Equal(t, "WALK_IN", data["source"])

	// Duplicate phone is rejected and names the existing lead
	w = doRequest(t, router, http.MethodPost, "/api/v1/leads", token, map[string]interface{}{
		"first_name": "Ravi",
		"last_name":  "Shah",
		"phone":      "9999999999",
	}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "LEAD-0001")

	// Revisit
	w = doRequest(t, router, http.MethodPost, "/api/v1/leads/LEAD-0001/revisit", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "REVISIT", data["status"])

	// Search before feedback
	w = doRequest(t, router, http.MethodGet, "/api/v1/leads/search?q=Asha", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].(map[string]interface{})["has_feedback"].(bool))

	// Feedback
	w = doRequest(t, router, http.MethodPost, "/api/v1/leads/LEAD-0001/feedback", token, map[string]interface{}{
		"onboarding": 5, "staff": 4, "project_shared": 5,
		"explanation": 4, "overall": 5, "comment": "Great visit",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Search after feedback
	w = doRequest(t, router, http.MethodGet, "/api/v1/leads/search?q=Asha", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows = decodeBody(t, w)["data"].([]interface{})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].(map[string]interface{})["has_feedback"].(bool))

	// Numeric query is padded to match the friendly ID
	w = doRequest(t, router, http.MethodGet, "/api/v1/leads/search?q=1", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows = decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, rows, 1)

	// Admin delete cascades
	w = doRequest(t, router, http.MethodDelete, "/api/v1/admin/leads/LEAD-0001", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/leads/LEAD-0001", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeadIntakeIdempotency(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	headers := map[string]string{"Idempotency-Key": "intake-abc-123"}
	body := map[string]interface{}{
		"first_name": "Asha",
		"last_name":  "Rao",
		"phone":      "9999999901",
	}

	w := doRequest(t, router, http.MethodPost, "/api/v1/leads", token, body, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	first := w.Body.String()

	w = doRequest(t, router, http.MethodPost, "/api/v1/leads", token, body, headers)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first, w.Body.String())
}

func TestChannelPartnerRoutes(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	w := doRequest(t, router, http.MethodPost, "/api/v1/channel-partners", token, map[string]string{
		"name":      "Vikram Mehta",
		"firm_name": "Mehta Estates",
		"phone":     "7777777701",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/channel-partners", token, map[string]string{
		"name":      "Someone Else",
		"firm_name": "Other Firm",
		"phone":     "7777777701",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/channel-partners", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, rows, 1)
}

func TestStatsRoute(t *testing.T) {
	router := newTestRouter(t)
	token := loginAdmin(t, router)

	w := doRequest(t, router, http.MethodPost, "/api/v1/leads", token, map[string]interface{}{
		"first_name": "Asha",
		"last_name":  "Rao",
		"phone":      "9999999902",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/leads/stats", token, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["visit_count"])
	assert.Equal(t, float64(1), data["total_visits_revisits"])
	assert.Equal(t, float64(1), data["pending_count"])
}
