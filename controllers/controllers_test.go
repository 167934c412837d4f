package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/braylark/ingyn-frontend-sub000/config"
	"github.com/braylark/ingyn-frontend-sub000/routes"

	"github.com/gin-gonic/gin"
)

// fakeBackend stands in for the generation API and counts calls per endpoint.
type fakeBackend struct {
	mu        sync.Mutex
	imageHits int
	textHits  int

	imageStatus int
	imageBody   map[string]interface{}
	textStatus  int
	textBody    map[string]interface{}

	server *httptest.Server
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		imageStatus: http.StatusOK,
		imageBody:   map[string]interface{}{"images": []string{"https://img.test/first.png", "https://img.test/second.png"}},
		textStatus:  http.StatusOK,
		textBody:    map[string]interface{}{"text": "Generated caption"},
	}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch r.URL.Path {
		case "/api/v1/generate-image":
			b.imageHits++
			w.WriteHeader(b.imageStatus)
			if b.imageStatus == http.StatusOK {
				json.NewEncoder(w).Encode(b.imageBody)
			}
		case "/api/v1/generate-text":
			b.textHits++
			w.WriteHeader(b.textStatus)
			if b.textStatus == http.StatusOK {
				json.NewEncoder(w).Encode(b.textBody)
			}
		default:
			w.Write([]byte(`{"ok":true}`))
		}
	}))
	return b
}

func (b *fakeBackend) hits() (image, text int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.imageHits, b.textHits
}

func (b *fakeBackend) close() {
	b.server.Close()
}

// newTestServer wires the full router against an isolated in-memory store
// and opens a session.
func newTestServer(t *testing.T, backendURL string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	t.Setenv("DATABASE_DSN", dsn)

	db := config.InitDB()

	r := gin.New()
	routes.SetupRoutes(r, db, &config.Config{Port: "0", GenerationAPIURL: backendURL})

	w := doJSON(t, r, "POST", "/api/session", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("create session: no token in %s", w.Body.String())
	}
	return r, resp.Token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %s: %v", w.Body.String(), err)
	}
	return body
}

func listPosts(t *testing.T, r *gin.Engine, token, collection string) []map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, "GET", "/api/posts?collection="+collection, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list %s posts: status %d, body %s", collection, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	raw, _ := body["posts"].([]interface{})
	posts := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		posts = append(posts, item.(map[string]interface{}))
	}
	return posts
}

func postID(t *testing.T, post map[string]interface{}) uint {
	t.Helper()
	id, ok := post["id"].(float64)
	if !ok {
		t.Fatalf("post has no numeric id: %v", post)
	}
	return uint(id)
}

func drainNotifications(t *testing.T, r *gin.Engine, token string) []map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, "GET", "/api/notifications", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("notifications: status %d", w.Code)
	}
	body := decodeBody(t, w)
	raw, _ := body["notifications"].([]interface{})
	notifications := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		notifications = append(notifications, item.(map[string]interface{}))
	}
	return notifications
}

func hasNotification(notifications []map[string]interface{}, level, substring string) bool {
	for _, n := range notifications {
		message, _ := n["message"].(string)
		if n["level"] == level && strings.Contains(message, substring) {
			return true
		}
	}
	return false
}
