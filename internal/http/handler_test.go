package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/mocks"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
)

const validToken = "valid-token"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds the full router around mocked services. Bearer tokens
// other than validToken are rejected.
func newTestRouter(contents *mocks.MockContentService, auth *mocks.MockAuthService) *gin.Engine {
	auth.On("ValidateToken", mock.Anything, validToken).Return(&dto.Claims{Subject: service.AdminSubject}, nil).Maybe()
	auth.On("ValidateToken", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidToken).Maybe()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 1000
	cfg.TokenRateLimit = 1000
	cfg.ContentService = contents
	cfg.AuthService = auth
	return NewRouter(NewHealthHandler(), cfg)
}

func doRequest(router *gin.Engine, method, target string, form url.Values, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestContentHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMock      func(*mocks.MockContentService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "returns entity",
			target: "/get/?content=Experience&id=1",
			setupMock: func(m *mocks.MockContentService) {
				m.On("Get", mock.Anything, "Experience", int64(1)).Return(&model.Experience{
					ID:        1,
					TypeExp:   model.ExperienceWork,
					TimeRange: "01-2020 - Now, 6 years 9 months",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"data":{"id":1,"type_exp":"work","time_range":"01-2020 - Now, 6 years 9 months"}`,
		},
		{
			name:   "unknown content kind",
			target: "/get/?content=Hobby&id=1",
			setupMock: func(m *mocks.MockContentService) {
				m.On("Get", mock.Anything, "Hobby", int64(1)).Return(nil, model.ErrUnknownKind)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Wrong content key",
		},
		{
			name:   "missing entity",
			target: "/get/?content=MyProject&id=404",
			setupMock: func(m *mocks.MockContentService) {
				m.On("Get", mock.Anything, "MyProject", int64(404)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Couldn't find requested content",
		},
		{
			name:           "missing id",
			target:         "/get/?content=MyProject",
			setupMock:      func(*mocks.MockContentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid_request"`,
		},
		{
			name:           "id is not a number",
			target:         "/get/?content=MyProject&id=abc",
			setupMock:      func(*mocks.MockContentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid_request"`,
		},
		{
			name:   "store unavailable",
			target: "/get/?content=Technology&id=1",
			setupMock: func(m *mocks.MockContentService) {
				m.On("Get", mock.Anything, "Technology", int64(1)).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"error":"service_unavailable"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents := new(mocks.MockContentService)
			tt.setupMock(contents)
			router := newTestRouter(contents, new(mocks.MockAuthService))

			w := doRequest(router, http.MethodGet, tt.target, nil, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			contents.AssertExpectations(t)
		})
	}
}

func TestContentHandler_GetAll(t *testing.T) {
	contents := new(mocks.MockContentService)
	contents.On("GetAll", mock.Anything).Return(model.Sections{
		{Key: model.SectionAboutMe, Items: []model.Content{&model.SoftSkill{ID: 1, TypeSoft: model.SoftSkillAboutMe}}},
		{Key: model.SectionProjects},
		{Key: model.SectionTechnicalSkills},
	}, nil)
	router := newTestRouter(contents, new(mocks.MockAuthService))

	w := doRequest(router, http.MethodGet, "/get-all/", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(),
		`"data":{"About me":[{"id":1,"type_soft":"aboutme"}],"My projects":[],"Technical skills":[]}`)
}

func TestContentHandler_Put(t *testing.T) {
	experienceForm := url.Values{
		"content":       {"Experience"},
		"id":            {"3"},
		"type_exp":      {"work"},
		"location":      {"Katowice"},
		"starting_date": {"01-2020"},
		"ending_date":   {"01-2022"},
	}

	tests := []struct {
		name           string
		form           url.Values
		token          string
		setupMock      func(*mocks.MockContentService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "stores entity",
			form:  experienceForm,
			token: validToken,
			setupMock: func(m *mocks.MockContentService) {
				m.On("Put", mock.Anything, mock.MatchedBy(func(req dto.PutContentRequest) bool {
					return req.Content == "Experience" && *req.ID == 3 &&
						req.StartingDate == "01-2020" && req.EndingDate == "01-2022"
				})).Return(&model.Experience{
					ID:        3,
					TypeExp:   model.ExperienceWork,
					Location:  "Katowice",
					TimeRange: "01-2020 - 01-2022, 2 years ",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"time_range":"01-2020 - 01-2022, 2 years "`,
		},
		{
			name:           "missing token",
			form:           experienceForm,
			setupMock:      func(*mocks.MockContentService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Authentication token is required",
		},
		{
			name:           "invalid token",
			form:           experienceForm,
			token:          "forged",
			setupMock:      func(*mocks.MockContentService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:  "validation error names the field",
			form:  url.Values{"content": {"Experience"}, "id": {"3"}, "type_exp": {"hobby"}},
			token: validToken,
			setupMock: func(m *mocks.MockContentService) {
				m.On("Put", mock.Anything, mock.Anything).
					Return(nil, dto.NewValidationError("type_exp", "must be one of work, education"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"details":{"type_exp":"must be one of work, education"}`,
		},
		{
			name:           "missing content",
			form:           url.Values{"id": {"3"}},
			token:          validToken,
			setupMock:      func(*mocks.MockContentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid_request"`,
		},
		{
			name:  "conflict",
			form:  url.Values{"content": {"Technology"}, "id": {"2"}, "technology_name": {"Go"}},
			token: validToken,
			setupMock: func(m *mocks.MockContentService) {
				m.On("Put", mock.Anything, mock.Anything).Return(nil, repository.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"conflict"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents := new(mocks.MockContentService)
			tt.setupMock(contents)
			router := newTestRouter(contents, new(mocks.MockAuthService))

			w := doRequest(router, http.MethodPut, "/put/", tt.form, tt.token)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			contents.AssertExpectations(t)
		})
	}
}

func TestContentHandler_PutText(t *testing.T) {
	form := url.Values{
		"id":          {"10"},
		"object_id":   {"3"},
		"object_type": {"experience"},
		"language":    {"pl"},
		"title":       {"Programista Go"},
		"text":        {"Usługi REST"},
	}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{name: "stores translation", expectedStatus: http.StatusOK, expectedBody: `"title":"Programista Go"`},
		{name: "missing target", err: repository.ErrNotFound, expectedStatus: http.StatusNotFound, expectedBody: `"error":"not_found"`},
		{name: "unknown object type", err: dto.NewValidationError("object_type", "must be one of softskill"), expectedStatus: http.StatusBadRequest, expectedBody: `"object_type"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents := new(mocks.MockContentService)
			call := contents.On("PutText", mock.Anything, mock.MatchedBy(func(req dto.PutTextRequest) bool {
				return *req.ID == 10 && *req.ObjectID == 3 && req.Language == "pl"
			}))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&model.Translation{ID: 10, ObjectID: 3, ObjectType: "experience", Language: "pl", Title: "Programista Go", Text: "Usługi REST"}, nil)
			}
			router := newTestRouter(contents, new(mocks.MockAuthService))

			w := doRequest(router, http.MethodPut, "/put-text/", form, validToken)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			contents.AssertExpectations(t)
		})
	}
}

func TestContentHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		setupMock      func(*mocks.MockContentService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "deletes entity",
			token: validToken,
			setupMock: func(m *mocks.MockContentService) {
				m.On("Delete", mock.Anything, "Experience", int64(3)).
					Return(service.DeletedMessage(model.KindExperience, 3), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Content from Experience with id 3 has been deleted"`,
		},
		{
			name:  "missing entity",
			token: validToken,
			setupMock: func(m *mocks.MockContentService) {
				m.On("Delete", mock.Anything, "Experience", int64(3)).Return("", repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Couldn't find requested content",
		},
		{
			name:           "anonymous request never reaches the service",
			setupMock:      func(*mocks.MockContentService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "unexpected error",
			token: validToken,
			setupMock: func(m *mocks.MockContentService) {
				m.On("Delete", mock.Anything, "Experience", int64(3)).Return("", errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"internal_error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents := new(mocks.MockContentService)
			tt.setupMock(contents)
			router := newTestRouter(contents, new(mocks.MockAuthService))

			w := doRequest(router, http.MethodDelete, "/delete/?content=Experience&id=3", nil, tt.token)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			contents.AssertExpectations(t)
		})
	}
}
