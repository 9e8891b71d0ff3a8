// Package proxy implementa los puertos de repositorio sobre la API REST del backend de Comandas,
// expuesta detrás de un proxy (PROXY_BASE_URL). Cada colección vive bajo su prefijo:
// cliente/, funcionario/, produto/.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/comandas-web/internal/domain"
	"github.com/jhoicas/comandas-web/internal/domain/entity"
)

// maxFetchBytes límite de descarga de fotos.
const maxFetchBytes = 10 << 20

type tokenKey struct{}

// WithToken devuelve un contexto que lleva el token del backend de la sesión actual.
// Las llamadas hechas con ese contexto envían Authorization: Bearer <token>.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// Client cliente REST JSON del backend (resty).
type Client struct {
	baseURL *url.URL
	rc      *resty.Client
	log     zerolog.Logger
}

// NewClient construye el cliente. baseURL debe terminar en "/" (se agrega si falta).
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("proxy: base URL inválida: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("proxy: base URL debe ser absoluta: %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	log = log.With().Str("component", "proxy").Logger()
	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})
	return &Client{baseURL: u, rc: rc, log: log}, nil
}

// restyLogger adapta zerolog a la interfaz de logging de resty.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{}) { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }

// errorBody campos con los que el backend describe un error.
type errorBody struct {
	Erro    string `json:"erro"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e errorBody) text() string {
	switch {
	case e.Erro != "":
		return e.Erro
	case e.Message != "":
		return e.Message
	default:
		return e.Error
	}
}

// StatusError respuesta no 2xx del backend. Se compara con errors.Is(err, domain.ErrBackend).
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s %s: status %d: %s", domain.ErrBackend, e.Method, e.Path, e.Status, e.Message)
}

// Unwrap permite errors.Is(err, domain.ErrBackend).
func (e *StatusError) Unwrap() error { return domain.ErrBackend }

// saveResponse respuesta de POST/PUT.
type saveResponse struct {
	ID   entity.ID `json:"id"`
	Erro string    `json:"erro"`
}

// resolve arma la URL absoluta de path (relativo a la base).
func (c *Client) resolve(path string) string {
	return c.baseURL.ResolveReference(&url.URL{Path: path}).String()
}

// request prepara la petición con el contexto y el token de la sesión.
func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	if tok := tokenFrom(ctx); tok != "" {
		req.SetAuthToken(tok)
	}
	return req
}

// do ejecuta la petición; si out no es nil decodifica el JSON de la respuesta.
// Los errores de transporte o de estado no 2xx se registran y se devuelven envueltos en domain.ErrBackend.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req := c.request(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, c.resolve(path))
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend inaccesible")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackend, method, path, err)
	}

	raw := bytes.TrimSpace(resp.Body())
	if status := resp.StatusCode(); status < 200 || status > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.text()
		if msg == "" {
			msg = string(raw)
		}
		c.log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Str("erro", msg).
			Msg("backend respondió con error")
		return &StatusError{Method: method, Path: path, Status: status, Message: msg}
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("backend")

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("respuesta del backend ilegible")
		return fmt.Errorf("%w: %s %s: decodificar respuesta: %v", domain.ErrBackend, method, path, err)
	}
	return nil
}

// FetchBytes descarga un recurso binario (ej. foto de producto). rawURL puede ser absoluto
// o relativo a la base del proxy.
func (c *Client) FetchBytes(ctx context.Context, rawURL string) ([]byte, string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("proxy: URL inválida %q: %w", rawURL, err)
	}
	resp, err := c.request(ctx).
		SetHeader("Accept", "*/*").
		Get(c.baseURL.ResolveReference(ref).String())
	if err != nil {
		return nil, "", fmt.Errorf("%w: GET %s: %v", domain.ErrBackend, rawURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("%w: GET %s: status %d", domain.ErrBackend, rawURL, resp.StatusCode())
	}
	b := resp.Body()
	if len(b) > maxFetchBytes {
		return nil, "", fmt.Errorf("%w: GET %s: recurso mayor a %d bytes", domain.ErrBackend, rawURL, maxFetchBytes)
	}
	return b, resp.Header().Get("Content-Type"), nil
}

// flexInt acepta número o string numérico ("1").
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("grupo inválido %q", s)
	}
	*f = flexInt(n)
	return nil
}

// MarshalJSON siempre como número.
func (f flexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}
