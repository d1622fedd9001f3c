package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/grantscout/grantscout-backend/mocks"
	"github.com/grantscout/grantscout-backend/models"
)

func TestAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	identity := models.Identity{
		UserId: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Email:  "jane@example.com",
	}

	tests := []struct {
		name             string
		required         bool
		authorization    string
		setupValidator   func(*mocks.JwtValidator)
		expectedStatus   int
		expectedIdentity bool
	}{
		{
			name:          "required with valid token",
			required:      true,
			authorization: "Bearer good-token",
			setupValidator: func(v *mocks.JwtValidator) {
				v.On("ValidateToken", "good-token").Return(identity, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedIdentity: true,
		},
		{
			name:           "required without token",
			required:       true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "required with invalid token",
			required:      true,
			authorization: "Bearer bad-token",
			setupValidator: func(v *mocks.JwtValidator) {
				v.On("ValidateToken", "bad-token").Return(models.Identity{}, models.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			required:       true,
			authorization:  "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "optional without token",
			expectedStatus: http.StatusOK,
		},
		{
			name:          "optional with valid token",
			authorization: "Bearer good-token",
			setupValidator: func(v *mocks.JwtValidator) {
				v.On("ValidateToken", "good-token").Return(identity, nil)
			},
			expectedStatus:   http.StatusOK,
			expectedIdentity: true,
		},
		{
			name:          "optional with invalid token",
			authorization: "Bearer bad-token",
			setupValidator: func(v *mocks.JwtValidator) {
				v.On("ValidateToken", "bad-token").Return(models.Identity{}, models.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(mocks.JwtValidator)
			if tt.setupValidator != nil {
				tt.setupValidator(validator)
			}
			auth := NewAuthentication(validator, nil)

			var gotIdentity bool
			middleware := auth.Optional
			if tt.required {
				middleware = auth.Required
			}

			router := gin.New()
			router.GET("/test", middleware, func(c *gin.Context) {
				got, found := IdentityFromContext(c.Request.Context())
				gotIdentity = found
				if found {
					assert.Equal(t, identity, got)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedIdentity, gotIdentity)
			validator.AssertExpectations(t)
		})
	}
}

func TestParseAuthorizationBearerHeader(t *testing.T) {
	header := http.Header{}
	token, err := ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Empty(t, token)

	header.Set("Authorization", "Bearer abc.def.ghi")
	token, err = ParseAuthorizationBearerHeader(header)
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = ParseAuthorizationBearerHeader(header)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
