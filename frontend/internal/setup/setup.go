package setup

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/dondesang/dondesang/frontend/internal/apiclient"
	"github.com/dondesang/dondesang/frontend/internal/auth"
	"github.com/dondesang/dondesang/frontend/internal/handler"
	"github.com/dondesang/dondesang/frontend/internal/markdown"
	"github.com/dondesang/dondesang/frontend/internal/session"
	"github.com/dondesang/dondesang/shared/config"
	"github.com/dondesang/dondesang/shared/csrf"
	"github.com/dondesang/dondesang/shared/domain"
	"github.com/dondesang/dondesang/shared/jwt"
	"github.com/dondesang/dondesang/shared/logger"
	"github.com/dondesang/dondesang/shared/middleware/ratelimiter"
	"github.com/dondesang/dondesang/shared/utils"
)

const (
	baseTemplate           = "base.html"
	partialsTemplate       = "partials.html"
	sessionCookieName      = "dondesang_session"
	templateReloadInterval = 5 * time.Second
	rateLimitExpiration    = 10 * time.Minute
	rateLimitCleanup       = time.Minute
)

type Dependencies struct {
	Handler     *handler.Handler
	Public      config.Public
	Auth        *auth.Provider
	CSRF        *csrf.Signer
	RateLimiter *ratelimiter.UserRateLimiter // nil when throttling is off
	CancelFunc  context.CancelFunc
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	// Create cancellable context for background tasks
	ctx, cancel := context.WithCancel(context.Background())

	hashKey, blockKey, err := utils.DeriveCookieKeys(cfg.Private.SessionSecret)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to derive cookie keys: %w", err)
	}
	storage := session.NewCookieStorage(sessionCookieName, hashKey, blockKey, cfg.Public.SessionMaxAge, cfg.Public.SecureCookies)
	provider := auth.NewProvider(storage)

	csrfKey, err := utils.DeriveCSRFKey(cfg.Private.SessionSecret)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to derive csrf key: %w", err)
	}
	signer, err := csrf.NewSigner(csrfKey)
	if err != nil {
		cancel()
		return nil, err
	}

	templates, err := loadTemplates(cfg.Public.TemplatesPath)
	if err != nil {
		cancel()
		return nil, err
	}
	loc, err := cfg.Public.Location()
	if err != nil {
		cancel()
		return nil, err
	}

	h := handler.New(
		templates,
		cfg.Public,
		markdown.New(),
		apiclient.New(cfg.Public.APIBaseURL),
		provider,
		jwt.New(cfg.Private.TokenSecret),
		loc,
	)
	if os.Getenv("ENV") == "development" {
		startTemplateReloader(ctx, h, cfg.Public.TemplatesPath)
	}

	var limiter *ratelimiter.UserRateLimiter
	if cfg.Public.RateLimit.PerMinute > 0 {
		limiter = ratelimiter.NewUserRateLimiter(cfg.Public.RateLimit.PerMinute, cfg.Public.RateLimit.Burst, rateLimitExpiration)
		limiter.StartCleanup(rateLimitCleanup, ctx.Done())
	}

	return &Dependencies{
		Handler:     h,
		Public:      cfg.Public,
		Auth:        provider,
		CSRF:        signer,
		RateLimiter: limiter,
		CancelFunc:  cancel,
	}, nil
}

func add(a, b int) int { return a + b }

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

func formatTime(t domain.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var funcs = template.FuncMap{
	"add":        add,
	"dict":       dict,
	"formatTime": formatTime,
	"deref":      deref,
}

// loadTemplates parses every page of dir together with the base layout and
// the shared partials.
func loadTemplates(dir string) (map[string]*template.Template, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, f := range files {
		name := f.Name()
		if filepath.Ext(name) != ".html" || name == baseTemplate || name == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(funcs).ParseFiles(
			filepath.Join(dir, baseTemplate),
			filepath.Join(dir, name),
			filepath.Join(dir, partialsTemplate),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

func startTemplateReloader(ctx context.Context, h *handler.Handler, dir string) {
	ticker := time.NewTicker(templateReloadInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				templates, err := loadTemplates(dir)
				if err != nil {
					logger.Log.Error("template reload failed", "error", err)
					continue
				}
				h.SetTemplates(templates)
			}
		}
	}()
}
