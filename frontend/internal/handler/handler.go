package handler

import (
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/dondesang/dondesang/frontend/internal/apiclient"
	"github.com/dondesang/dondesang/frontend/internal/auth"
	"github.com/dondesang/dondesang/frontend/internal/markdown"
	"github.com/dondesang/dondesang/shared/config"
	"github.com/dondesang/dondesang/shared/jwt"
)

type Handler struct {
	mu            sync.RWMutex
	Templates     map[string]*template.Template
	Public        config.Public
	TextProcessor *markdown.TextProcessor
	APIClient     *apiclient.APIClient
	Auth          *auth.Provider
	Tokens        jwt.TokenDecoder
	Location      *time.Location // zone of datetime-local inputs
}

func New(templates map[string]*template.Template, publicCfg config.Public, textProcessor *markdown.TextProcessor, apiClient *apiclient.APIClient, provider *auth.Provider, tokens jwt.TokenDecoder, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		Templates:     templates,
		Public:        publicCfg,
		TextProcessor: textProcessor,
		APIClient:     apiClient,
		Auth:          provider,
		Tokens:        tokens,
		Location:      loc,
	}
}

// SetTemplates swaps the template set while requests are being served.
func (h *Handler) SetTemplates(templates map[string]*template.Template) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Templates = templates
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	tmpl, ok := h.Templates[name]
	return tmpl, ok
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
