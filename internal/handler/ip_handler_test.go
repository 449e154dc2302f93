package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cicorias/ipcalc/internal/calc"
	"github.com/cicorias/ipcalc/internal/model"
	"github.com/cicorias/ipcalc/internal/resolver"
)

type mockCalcService struct {
	describeFunc func(ctx context.Context, q model.Query) (*model.AddressInfo, error)
}

func (m *mockCalcService) Describe(ctx context.Context, q model.Query) (*model.AddressInfo, error) {
	return m.describeFunc(ctx, q)
}

func TestHandler_AddressInfo(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockResponse *model.AddressInfo
		mockError    error
		expectedCode int
	}{
		{
			name: "success",
			path: "/api/v1/info?address=192.168.1.5/24",
			mockResponse: &model.AddressInfo{
				Family:       "ipv4",
				Address:      "192.168.1.5",
				Netmask:      "255.255.255.0",
				Prefix:       24,
				Network:      "192.168.1.0",
				Broadcast:    "192.168.1.255",
				HostMin:      "192.168.1.1",
				HostMax:      "192.168.1.254",
				Hosts:        "254",
				AddressSpace: "Private Use",
			},
			expectedCode: 200,
		},
		{
			name:         "missing address",
			path:         "/api/v1/info",
			expectedCode: 400,
		},
		{
			name:         "malformed address",
			path:         "/api/v1/info?address=garbage",
			mockError:    fmt.Errorf("wrapped: %w", calc.ErrMalformedAddress),
			expectedCode: 400,
		},
		{
			name:         "bad prefix rejected during parsing",
			path:         "/api/v1/info?address=192.168.1.5/99",
			expectedCode: 400,
		},
		{
			name:         "non-contiguous netmask",
			path:         "/api/v1/info?address=192.168.1.5&netmask=255.0.255.0",
			mockError:    fmt.Errorf("wrapped: %w", calc.ErrNonContiguousMask),
			expectedCode: 400,
		},
		{
			name:         "ambiguous input",
			path:         "/api/v1/info?address=192.168.1.5/24&netmask=255.255.255.0",
			mockError:    fmt.Errorf("wrapped: %w", calc.ErrAmbiguousInput),
			expectedCode: 400,
		},
		{
			name:         "hostname unavailable",
			path:         "/api/v1/info?address=8.8.8.8&hostname=true",
			mockError:    fmt.Errorf("wrapped: %w", resolver.ErrHostnameUnavailable),
			expectedCode: 404,
		},
		{
			name:         "internal error",
			path:         "/api/v1/info?address=8.8.8.8",
			mockError:    fmt.Errorf("boom"),
			expectedCode: 500,
		},
	}

	logger, _ := zap.NewDevelopment()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockCalcService{
				describeFunc: func(ctx context.Context, q model.Query) (*model.AddressInfo, error) {
					return tt.mockResponse, tt.mockError
				},
			}

			h := NewHandler(mockService, logger)
			app := fiber.New()
			h.RegisterRoutes(app)

			req := httptest.NewRequest("GET", tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}

			if resp.StatusCode != tt.expectedCode {
				t.Errorf("expected status code %d, got %d", tt.expectedCode, resp.StatusCode)
			}

			if tt.mockResponse == nil || tt.expectedCode != 200 {
				return
			}

			var body model.AddressInfo
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body != *tt.mockResponse {
				t.Errorf("expected body %+v, got %+v", *tt.mockResponse, body)
			}
		})
	}
}

func TestHandler_HealthCheck(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	h := NewHandler(nil, logger)

	app := fiber.New()
	h.RegisterRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("expected status code 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	if body["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %v", body["status"])
	}
}
