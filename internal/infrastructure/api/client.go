// Package api implementa el cliente REST del backend POS: JSON puro,
// Bearer token en cada petición autenticada y mapeo de respuestas no-2xx
// al mensaje del servidor. Sin reintentos y sin caché.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// Client cliente HTTP del backend. El token se obtiene en cada petición de
// la fuente inyectada (la sesión); un 401 en cualquier respuesta dispara el
// callback de invalidación global antes de propagar el error.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onNoAutorizado func()
	log            *logger.Logger
}

// Option configura el Client.
type Option func(*Client)

// WithTokenSource inyecta la fuente del token (normalmente session.Store.Token).
func WithTokenSource(f func() string) Option {
	return func(c *Client) { c.tokenSource = f }
}

// WithOnNoAutorizado inyecta el callback de invalidación de sesión ante 401.
func WithOnNoAutorizado(f func()) Option {
	return func(c *Client) { c.onNoAutorizado = f }
}

// WithHTTPClient reemplaza el transporte (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New construye el cliente. El timeout es del transporte; no hay reintentos
// ni backoff: una falla se reporta una vez y el reintento es del usuario.
func New(baseURL string, timeout time.Duration, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// token devuelve el token vigente ("" si no hay sesión o fuente).
func (c *Client) token() string {
	if c.tokenSource == nil {
		return ""
	}
	return c.tokenSource()
}

// do ejecuta una petición JSON. token vacío = petición pública. fallback es
// el mensaje genérico si el backend no mandó message en el cuerpo de error.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrRed, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Invalidación global de sesión: el 401 no es solo una falla local.
		// Solo aplica cuando la petición llevaba el token de la sesión; un
		// probe de perfil con un token ajeno no debe tocar la sesión vigente.
		if c.onNoAutorizado != nil && token != "" && token == c.token() {
			c.onNoAutorizado()
		}
		return fmt.Errorf("%w: %s", domain.ErrAutenticacion, mensajeError(raw, "token inválido o expirado"))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.BackendError{Status: resp.StatusCode, Mensaje: mensajeError(raw, fallback)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("deserializar respuesta de %s %s: %w", method, path, err)
		}
	}
	return nil
}

// get/post/patch/delete autenticados con el token de la sesión.
func (c *Client) get(ctx context.Context, path string, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, c.token(), nil, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, c.token(), body, out, fallback)
}

func (c *Client) patch(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPatch, path, c.token(), body, out, fallback)
}

func (c *Client) delete(ctx context.Context, path string, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, c.token(), nil, nil, fallback)
}

// mensajeError extrae {message} del cuerpo de error; si no hay, el fallback.
func mensajeError(raw []byte, fallback string) string {
	var e dto.ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return fallback
}
