package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/messages"
	"github.com/stretchr/testify/require"
)

type unackedRepo struct{}

func (unackedRepo) Insert(ctx context.Context, m *messages.Message) (string, error) {
	return "", messages.ErrNotAcknowledged
}

func messageRouter(repo messages.Repository) *gin.Engine {
	g := gin.New()
	NewMessageHandler(messages.NewService(repo)).Register(g)
	return g
}

func postJSON(g *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestSubmitValidMessage(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	w := postJSON(g, `{"firstName":"Ada","lastName":"Lovelace","email":"a@l.org","message":"hi","regarding":"SEO"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Equal(t, "Your message has been sent successfully!", body["message"])
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	stored := repo.Get(id)
	require.NotNil(t, stored)
	require.Equal(t, "Not provided", stored.Phone)
	require.Equal(t, "Not provided", stored.Company)
	require.Equal(t, "Not specified", stored.Budget)
	require.WithinDuration(t, time.Now().UTC(), stored.CreatedAt, 5*time.Second)
}

func TestSubmitMissingRequiredField(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	// no message field
	w := postJSON(g, `{"firstName":"Ada","lastName":"Lovelace","email":"a@l.org","regarding":"SEO"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"message":"Required fields are missing"}`, w.Body.String())
	require.Equal(t, 0, repo.Len())
}

func TestSubmitEmptyStringCountsAsMissing(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	w := postJSON(g, `{"firstName":"Ada","lastName":"Lovelace","email":"a@l.org","message":"hi","regarding":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 0, repo.Len())
}

func TestSubmitNullCountsAsMissing(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	w := postJSON(g, `{"firstName":"Ada","lastName":"Lovelace","email":null,"message":"hi","regarding":"SEO"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 0, repo.Len())
}

func TestSubmitIgnoresUnknownFields(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	w := postJSON(g, `{"firstName":"Ada","lastName":"Lovelace","email":"a@l.org","message":"hi","regarding":"SEO","referrer":"twitter","hp":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, repo.Len())
}

func TestSubmitFormEncoded(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	form := url.Values{}
	form.Set("firstName", "Ada")
	form.Set("lastName", "Lovelace")
	form.Set("email", "a@l.org")
	form.Set("message", "hi")
	form.Set("regarding", "SEO")
	form.Set("budget", "$5k")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/message", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	g.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	stored := repo.Get(body["id"].(string))
	require.NotNil(t, stored)
	require.Equal(t, "$5k", stored.Budget)
	require.Equal(t, "Not provided", stored.Phone)
}

func TestSubmitTwiceYieldsDistinctIDs(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	payload := `{"firstName":"Ada","lastName":"Lovelace","email":"a@l.org","message":"hi","regarding":"SEO"}`
	w1 := postJSON(g, payload)
	w2 := postJSON(g, payload)
	require.Equal(t, http.StatusCreated, w1.Code)
	require.Equal(t, http.StatusCreated, w2.Code)

	var b1, b2 map[string]interface{}
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &b1))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &b2))
	require.NotEqual(t, b1["id"], b2["id"])
	require.Equal(t, 2, repo.Len())
}

func TestSubmitUnacknowledgedWrite(t *testing.T) {
	g := messageRouter(unackedRepo{})

	w := postJSON(g, `{"firstName":"Ada","lastName":"Lovelace","email":"a@l.org","message":"hi","regarding":"SEO"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "An error occurred while processing your request", body["message"])
	require.Equal(t, "Failed to insert document", body["error"])
}

func TestSubmitMalformedBody(t *testing.T) {
	repo := messages.NewMemoryRepository()
	g := messageRouter(repo)

	w := postJSON(g, `{"firstName":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 0, repo.Len())
}
