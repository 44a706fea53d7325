package handler

import (
	"net/http"
	"testing"

	"cortex/config"
	"cortex/internal/domain/entity"
	domainerrors "cortex/internal/domain/errors"
	mockUsecase "cortex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testConnectURL = "https://app.example.com/dashboard/connect"

func createTestConnectionHandler(t *testing.T) (*ConnectionHandler, *mockUsecase.MockConnectionUsecase) {
	uc := mockUsecase.NewMockConnectionUsecase(t)
	cfg := &config.Config{App: &config.AppConfig{ConnectRedirectURL: testConnectURL}}

	return NewConnectionHandler(uc, cfg, newDiscardLogger()), uc
}

func TestConnectionHandler_Authorize(t *testing.T) {
	userID := uuid.New()
	authURL := "https://api.prod.whoop.com/oauth/oauth2/auth?state=s1"

	t.Run("json", func(t *testing.T) {
		h, uc := createTestConnectionHandler(t)
		uc.EXPECT().AuthorizationURL(mock.Anything, userID, entity.ProviderWhoop).Return(authURL, nil).Once()
		c, rec := newTestContext(http.MethodGet, "/api/oauth/whoop", "", userID)
		c.SetParamNames("provider")
		c.SetParamValues("whoop")

		require.NoError(t, h.Authorize(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"url":"https://api.prod.whoop.com/oauth/oauth2/auth?state=s1"`)
	})

	t.Run("redirect", func(t *testing.T) {
		h, uc := createTestConnectionHandler(t)
		uc.EXPECT().AuthorizationURL(mock.Anything, userID, entity.ProviderWhoop).Return(authURL, nil).Once()
		c, rec := newTestContext(http.MethodGet, "/api/oauth/whoop?redirect=true", "", userID)
		c.SetParamNames("provider")
		c.SetParamValues("whoop")

		require.NoError(t, h.Authorize(c))

		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, authURL, rec.Header().Get("Location"))
	})
}

func TestConnectionHandler_Authorize_UnknownProvider(t *testing.T) {
	h, _ := createTestConnectionHandler(t)
	c, _ := newTestContext(http.MethodGet, "/api/oauth/fitbit", "", uuid.New())
	c.SetParamNames("provider")
	c.SetParamValues("fitbit")

	err := h.Authorize(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestConnectionHandler_Callback(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		setup        func(uc *mockUsecase.MockConnectionUsecase)
		wantLocation string
	}{
		{
			name:  "success",
			query: "?code=c1&state=s1",
			setup: func(uc *mockUsecase.MockConnectionUsecase) {
				uc.EXPECT().HandleCallback(mock.Anything, entity.ProviderWithings, "c1", "s1").Return(uuid.New(), nil).Once()
			},
			wantLocation: testConnectURL + "?success=withings",
		},
		{
			name:  "invalid state",
			query: "?code=c1&state=forged",
			setup: func(uc *mockUsecase.MockConnectionUsecase) {
				uc.EXPECT().HandleCallback(mock.Anything, entity.ProviderWithings, "c1", "forged").
					Return(uuid.Nil, errors.WithStack(domainerrors.ErrOAuthStateInvalid)).Once()
			},
			wantLocation: testConnectURL + "?error=invalid_state",
		},
		{
			name:  "exchange failure",
			query: "?code=c1&state=s1",
			setup: func(uc *mockUsecase.MockConnectionUsecase) {
				uc.EXPECT().HandleCallback(mock.Anything, entity.ProviderWithings, "c1", "s1").
					Return(uuid.Nil, domainerrors.ErrOAuthExchangeFailed.WithDetails("status 503")).Once()
			},
			wantLocation: testConnectURL + "?error=token_exchange_failed",
		},
		{
			name:         "consent denied",
			query:        "?error=access_denied&state=s1",
			setup:        func(*mockUsecase.MockConnectionUsecase) {},
			wantLocation: testConnectURL + "?error=access_denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := createTestConnectionHandler(t)
			tt.setup(uc)
			c, rec := newTestContext(http.MethodGet, "/oauth/withings/callback"+tt.query, "", uuid.Nil)
			c.SetParamNames("provider")
			c.SetParamValues("withings")

			require.NoError(t, h.Callback(c))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}

func TestConnectionHandler_ListRequiresUser(t *testing.T) {
	h, _ := createTestConnectionHandler(t)
	c, _ := newTestContext(http.MethodGet, "/api/connections", "", uuid.Nil)

	err := h.List(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
