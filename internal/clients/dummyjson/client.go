// Package dummyjson - клиент внешнего demo-API (identity-провайдер и
// источник демо-кандидатов). Единственные сетевые вызовы системы.
package dummyjson

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrLoginFailed = errors.New("login failed")

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}
}

// LoginResponse - профиль и opaque-токен identity-провайдера.
// Роли в ответе нет: провайдер ее не знает, роль выбирается на клиенте.
type LoginResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	Token     string `json:"token"`
	// Новые версии API отдают accessToken вместо token
	AccessToken string `json:"accessToken"`
}

// BearerToken возвращает opaque-токен вне зависимости от версии API
func (r *LoginResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

type loginRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	ExpiresInMins int    `json:"expiresInMins"`
}

// Login проверяет учетные данные у провайдера. Неверный пароль и сетевой
// сбой одинаково схлопываются в ErrLoginFailed - каллеру различие не нужно.
func (c *Client) Login(ctx context.Context, username, password string, expiresInMins int) (*LoginResponse, error) {
	var result LoginResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password, ExpiresInMins: expiresInMins}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode())
	}

	return &result, nil
}

// RemoteUser - пользователь demo-API, источник данных для сидинга кандидатов
type RemoteUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Image     string `json:"image"`
	Company   struct {
		Department string `json:"department"`
		Name       string `json:"name"`
		Title      string `json:"title"`
	} `json:"company"`
}

type UsersResponse struct {
	Users []RemoteUser `json:"users"`
	Total int          `json:"total"`
	Skip  int          `json:"skip"`
	Limit int          `json:"limit"`
}

// FetchUsers забирает страницу пользователей demo-API
func (c *Client) FetchUsers(ctx context.Context, limit, skip int) (*UsersResponse, error) {
	var result UsersResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetQueryParam("skip", fmt.Sprintf("%d", skip)).
		SetResult(&result).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch users: status %d", resp.StatusCode())
	}

	return &result, nil
}
