package http

import (
	"context"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/metrics"
	"github.com/MKhiriev/truvoice/internal/service"
	"github.com/MKhiriev/truvoice/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	verifyFn   func(ctx context.Context, req models.VerifyRequest) (models.AuthResult, error)
	resendFn   func(ctx context.Context, req models.ResendRequest) (models.AuthResult, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Verify(ctx context.Context, req models.VerifyRequest) (models.AuthResult, error) {
	return f.verifyFn(ctx, req)
}

func (f *fakeAuthService) ResendCode(ctx context.Context, req models.ResendRequest) (models.AuthResult, error) {
	return f.resendFn(ctx, req)
}

type fakeMessageService struct {
	sendFn   func(ctx context.Context, req models.SendMessageRequest) error
	statusFn func(ctx context.Context, username string) (bool, error)
}

func (f *fakeMessageService) Send(ctx context.Context, req models.SendMessageRequest) error {
	return f.sendFn(ctx, req)
}

func (f *fakeMessageService) AcceptingStatus(ctx context.Context, username string) (bool, error) {
	return f.statusFn(ctx, username)
}

type fakeSuggestionService struct {
	suggestions string
	refineFn    func(ctx context.Context, message string) (string, error)
}

func (f *fakeSuggestionService) Suggest(context.Context) string {
	return f.suggestions
}

func (f *fakeSuggestionService) Refine(ctx context.Context, message string) (string, error) {
	return f.refineFn(ctx, message)
}

// newTestRouterHandler builds a Handler with every service faked out and a
// fresh metrics registry.
func newTestRouterHandler(services *service.Services) (*Handler, *metrics.Metrics) {
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.MessageService == nil {
		services.MessageService = &fakeMessageService{}
	}
	if services.SuggestionService == nil {
		services.SuggestionService = &fakeSuggestionService{suggestions: "a||b||c"}
	}

	m := metrics.New()
	return NewHandler(services, m, config.Server{}, logger.Nop()), m
}
