package handler

import (
	"encoding/base64"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/dondesang/dondesang/frontend/internal/apiclient"
	"github.com/dondesang/dondesang/frontend/internal/auth"
	"github.com/dondesang/dondesang/frontend/internal/markdown"
	"github.com/dondesang/dondesang/frontend/internal/middleware"
	"github.com/dondesang/dondesang/frontend/internal/session/sessiontest"
	"github.com/dondesang/dondesang/shared/config"
	"github.com/dondesang/dondesang/shared/jwt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

const (
	adminRecord = `{"id":1,"email":"admin@example.org","role":"admin"}`
	donorRecord = `{"id":7,"email":"donor@example.org","role":"normal"}`
)

// testTemplate dumps what a page would show.
const testTemplate = `view={{.Common.CurrentView}}|error={{.Common.Error}}|success={{.Common.Success}}|data={{printf "%+v" .Data}}`

// fakeAPI records calls and serves canned answers per "METHOD /path".
type fakeAPI struct {
	mu        sync.Mutex
	calls     map[string]int
	bodies    map[string][]byte
	responses map[string]fakeResponse
}

type fakeResponse struct {
	status int
	body   string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:  make(map[string]int),
		bodies: make(map[string][]byte),
		responses: map[string]fakeResponse{
			"GET /groupesanguin/":    {http.StatusOK, `[{"id":1,"nom_groupe":"A+"},{"id":2,"nom_groupe":"O-"}]`},
			"GET /propositionsdon/":  {http.StatusOK, `[{"id":4,"id_utilisateur":7,"localisation_proposition":"Lyon","statut":"en attente","notes":"*mornings*"},{"id":5,"id_utilisateur":8,"statut":"affectée"}]`},
			"GET /demandesdon/":      {http.StatusOK, `[{"id":9,"id_utilisateur":8,"id_groupe_sanguin_requis":2,"quantite_demandee_ml":450,"urgence":"critique","statut":"en attente","description":"surgery"}]`},
			"GET /affectationsdon/":  {http.StatusOK, `[{"id":1,"id_proposition_don":5,"id_demande_don":3,"id_administrateur":1,"date_affectation":"2024-05-01T08:00:00","statut_affectation":"en cours","notes_administrateur":"Created via the admin dashboard."}]`},
			"GET /stats/":            {http.StatusOK, `{"total_utilisateurs":10,"utilisateurs_normaux":8,"administrateurs":2,"total_propositions_don":4,"propositions_affectees":1,"total_demandes_don":3,"demandes_affectees":2,"total_affectations":1}`},
			"POST /propositionsdon/": {http.StatusOK, `{"id":11}`},
			"POST /demandesdon/":     {http.StatusOK, `{"id":12}`},
			"POST /affectationsdon/": {http.StatusOK, `{"id":2}`},
			"POST /utilisateurs/":    {http.StatusOK, `{"id":20}`},
		},
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls[key]++
	f.bodies[key] = body
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

func (f *fakeAPI) respond(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = fakeResponse{status, body}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) body(t *testing.T, key string) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	var m map[string]any
	require.NoError(t, json.Unmarshal(f.bodies[key], &m))
	return m
}

type testEnv struct {
	handler *Handler
	api     *fakeAPI
	storage *sessiontest.MemoryStorage
	router  *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api := newFakeAPI()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	templates := make(map[string]*template.Template)
	for _, name := range append([]string{"loading.html"}, templateNames()...) {
		templates[name] = template.Must(template.New(name).Parse(testTemplate))
	}

	storage := sessiontest.NewMemoryStorage()
	h := New(templates, config.Public{}, markdown.New(), apiclient.New(server.URL), auth.NewProvider(storage), jwt.New(""), nil)

	r := mux.NewRouter()
	r.Use(middleware.LoadSession(h.Auth))
	r.HandleFunc("/", h.IndexHandler).Methods("GET")
	r.HandleFunc("/navigate/{view}", h.NavigateHandler).Methods("GET")
	r.HandleFunc("/login", h.LoginPostHandler).Methods("POST")
	r.HandleFunc("/logout", h.LogoutHandler).Methods("POST")
	r.HandleFunc("/register", h.RegisterPostHandler).Methods("POST")
	r.HandleFunc("/offers", h.OfferPostHandler).Methods("POST")
	r.HandleFunc("/requests", h.RequestPostHandler).Methods("POST")
	r.HandleFunc("/assignments", h.AssignmentPostHandler).Methods("POST")

	return &testEnv{handler: h, api: api, storage: storage, router: r}
}

func templateNames() []string {
	var names []string
	for _, name := range viewTemplates {
		names = append(names, name)
	}
	return names
}

func (e *testEnv) store(t *testing.T, record string) {
	t.Helper()
	require.NoError(t, e.storage.Set(nil, nil, record))
}

func (e *testEnv) get(path, viewCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if viewCookie != "" {
		req.AddCookie(&http.Cookie{Name: "view", Value: viewCookie})
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) post(path string, form url.Values, viewCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if viewCookie != "" {
		req.AddCookie(&http.Cookie{Name: "view", Value: viewCookie})
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func cookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}

func flash(t *testing.T, rr *httptest.ResponseRecorder, name string) string {
	t.Helper()
	c := cookie(rr, name)
	require.NotNil(t, c, "flash %s not set", name)
	decoded, err := base64.StdEncoding.DecodeString(c.Value)
	require.NoError(t, err)
	return string(decoded)
}

func httpGetWithCookies(path string, cookies map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return req
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}
