package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/kittygram-client/internal/config"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/utils"
	"github.com/MKhiriev/kittygram-client/models"
	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-ID"

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	origin string

	tokens       TokenSource
	newRequestID func() string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the resty implementation of
// [CatalogAdapter]. It normalises adapterCfg.HTTPAddress, applies the request
// timeout and installs hooks that attach the credential from tokens and a
// request ID to every call.
//
// tokens may be nil, in which case every request is anonymous.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	h := &httpCatalogAdapter{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		origin:       assetOrigin(baseURL),
		tokens:       tokens,
		newRequestID: utils.NewRequestID,
		logger:       log,
	}

	h.client.
		OnBeforeRequest(h.beforeRequest).
		OnAfterResponse(h.afterResponse).
		OnError(h.onError)

	return h, nil
}

// List implements [CatalogAdapter].
func (h *httpCatalogAdapter) List(ctx context.Context, page int) (models.CatListResponse, error) {
	if page < 1 {
		page = 1
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/cats/")
	if err != nil {
		return models.CatListResponse{}, fmt.Errorf("list cats request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatListResponse{}, err
	}

	var list models.CatListResponse
	if err = decode(resp, &list); err != nil {
		return models.CatListResponse{}, fmt.Errorf("decode cat list: %w", err)
	}

	for i := range list.Results {
		list.Results[i].ImageURL = resolveImageURL(h.origin, list.Results[i].ImageURL)
	}

	return list, nil
}

// Get implements [CatalogAdapter].
func (h *httpCatalogAdapter) Get(ctx context.Context, id int64) (models.Cat, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(catPath(id))
	if err != nil {
		return models.Cat{}, fmt.Errorf("get cat request: %w: %w", ErrNetwork, err)
	}

	return h.catResult(resp, "get cat")
}

// Create implements [CatalogAdapter].
func (h *httpCatalogAdapter) Create(ctx context.Context, payload models.CatPayload) (models.Cat, error) {
	if payload.Achievements == nil {
		payload.Achievements = []models.AchievementPayload{}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/cats/")
	if err != nil {
		return models.Cat{}, fmt.Errorf("create cat request: %w: %w", ErrNetwork, err)
	}

	return h.catResult(resp, "create cat")
}

// Update implements [CatalogAdapter].
func (h *httpCatalogAdapter) Update(ctx context.Context, id int64, patch models.CatPatch) (models.Cat, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch(catPath(id))
	if err != nil {
		return models.Cat{}, fmt.Errorf("update cat request: %w: %w", ErrNetwork, err)
	}

	return h.catResult(resp, "update cat")
}

// Delete implements [CatalogAdapter].
func (h *httpCatalogAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(catPath(id))
	if err != nil {
		return fmt.Errorf("delete cat request: %w: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Me implements [CatalogAdapter].
func (h *httpCatalogAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users/me/")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}

	return user, nil
}

// Login implements [CatalogAdapter]. Only email and password are sent.
func (h *httpCatalogAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error) {
	body := models.Credentials{Email: creds.Email, Password: creds.Password}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/token/login/")
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("login request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthToken{}, err
	}

	var token models.AuthToken
	if err = decode(resp, &token); err != nil {
		return models.AuthToken{}, fmt.Errorf("decode auth token: %w", err)
	}
	token.Token = strings.TrimSpace(token.Token)
	if token.Token == "" {
		return models.AuthToken{}, fmt.Errorf("login: %w: empty auth_token", ErrServer)
	}

	return token, nil
}

// Logout implements [CatalogAdapter].
func (h *httpCatalogAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/token/logout/")
	if err != nil {
		return fmt.Errorf("logout request: %w: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Register implements [CatalogAdapter].
func (h *httpCatalogAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/users/")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}

	return user, nil
}

func (h *httpCatalogAdapter) catResult(resp *resty.Response, op string) (models.Cat, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Cat{}, err
	}

	var cat models.Cat
	if err := decode(resp, &cat); err != nil {
		return models.Cat{}, fmt.Errorf("%s: decode cat: %w", op, err)
	}
	cat.ImageURL = resolveImageURL(h.origin, cat.ImageURL)

	return cat, nil
}

func (h *httpCatalogAdapter) beforeRequest(_ *resty.Client, req *resty.Request) error {
	if h.tokens != nil {
		if token := strings.TrimSpace(h.tokens.Token()); token != "" {
			req.SetHeader("Authorization", "Token "+token)
		}
	}

	id, ok := utils.GetRequestIDFromContext(req.Context())
	if !ok {
		id = h.newRequestID()
	}
	req.SetHeader(requestIDHeader, id)

	return nil
}

func (h *httpCatalogAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	event := h.logger.Debug()
	if resp.StatusCode() >= http.StatusBadRequest {
		event = h.logger.Warn()
	}

	event.
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("request_id", resp.Request.Header.Get(requestIDHeader)).
		Msg("record service response")

	return nil
}

func (h *httpCatalogAdapter) onError(req *resty.Request, err error) {
	h.logger.Warn().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Msg("record service request failed")
}

func catPath(id int64) string {
	return "/cats/" + strconv.FormatInt(id, 10) + "/"
}

func decode(resp *resty.Response, v any) error {
	if len(resp.Body()) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Body(), v)
}
