//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"newsletter-delivery/internal/domain/idempotency"
	"newsletter-delivery/internal/handler/api"
	resdto "newsletter-delivery/internal/handler/dto/response"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/cookie"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/usecase/commands"
	"newsletter-delivery/tests/common/httptest"
	commandsmock "newsletter-delivery/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const publishURL = "/admin/newsletters"

type NewsletterHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPublish *commandsmock.MockPublishNewsletterCommands
	ownerID     uuid.UUID
}

func (s *NewsletterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ownerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPublish = commandsmock.NewMockPublishNewsletterCommands(s.mockCtrl)
	handler := api.NewNewsletterHandler(s.mockPublish, config.NewTestConfig())

	s.router.POST(publishURL, func(c *gin.Context) {
		// stands in for RequireAuth
		if c.GetHeader("X-Test-Anonymous") == "" {
			c.Set("user_id", s.ownerID)
		}
		handler.PublishNewsletter(c)
	})
}

func (s *NewsletterHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNewsletterHandlerSuite(t *testing.T) {
	suite.Run(t, new(NewsletterHandlerTestSuite))
}

// renderWith runs the handler's renderer the way the use case does on a fresh claim.
func renderWith(outcome commands.PublishOutcome) func(context.Context, commands.PublishNewsletterParams, commands.ResponseRenderer) (*commands.PublishResult, error) {
	return func(_ context.Context, _ commands.PublishNewsletterParams, render commands.ResponseRenderer) (*commands.PublishResult, error) {
		resp, err := render(outcome)
		if err != nil {
			return nil, err
		}
		return &commands.PublishResult{Response: resp}, nil
	}
}

func validJSONBody() map[string]any {
	return map[string]any{
		"title": "T1",
		"content": map[string]any{
			"html": "<p>hello</p>",
			"text": "hello",
		},
		"idempotency_key": "abc123",
	}
}

func validForm() url.Values {
	return url.Values{
		"title":           {"T1"},
		"html_content":    {"<p>hello</p>"},
		"text_content":    {"hello"},
		"idempotency_key": {"abc123"},
	}
}

func (s *NewsletterHandlerTestSuite) TestPublishNewsletter_JSON() {
	issueID := uuid.New()

	s.Run("success: 200 with accepted body", func() {
		expected := commands.PublishNewsletterParams{
			OwnerID:        s.ownerID,
			IdempotencyKey: "abc123",
			Title:          "T1",
			HTMLContent:    "<p>hello</p>",
			TextContent:    "hello",
		}
		s.mockPublish.EXPECT().PublishNewsletter(gomock.Any(), expected, gomock.Any()).
			DoAndReturn(renderWith(commands.PublishOutcome{IssueID: issueID, DeliveryTasks: 3})).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, publishURL, validJSONBody(), "")

		var body resdto.PublishAcceptedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(issueID, body.IssueID)
		s.Equal("accepted", body.Status)
		s.Equal(int64(3), body.DeliveryTasks)
		s.Equal("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	s.Run("Idempotency-Key header is used when the body has no key", func() {
		body := validJSONBody()
		delete(body, "idempotency_key")

		s.mockPublish.EXPECT().PublishNewsletter(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.PublishNewsletterParams, render commands.ResponseRenderer) (*commands.PublishResult, error) {
				s.Equal("from-header", p.IdempotencyKey)
				return renderWith(commands.PublishOutcome{IssueID: issueID})(nil, p, render)
			}).Times(1)

		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req, err := http.NewRequest(http.MethodPost, publishURL, strings.NewReader(string(raw)))
		s.Require().NoError(err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(api.IdempotencyKeyHeader, "from-header")

		rec := httptest.Serve(s.router, req)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: malformed JSON never reaches the use case", func() {
		req, err := http.NewRequest(http.MethodPost, publishURL, strings.NewReader(`{"title":`))
		s.Require().NoError(err)
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.Serve(s.router, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *NewsletterHandlerTestSuite) TestPublishNewsletter_Form() {
	s.Run("success: 303 to the dashboard with an accepted flash", func() {
		expected := commands.PublishNewsletterParams{
			OwnerID:        s.ownerID,
			IdempotencyKey: "abc123",
			Title:          "T1",
			HTMLContent:    "<p>hello</p>",
			TextContent:    "hello",
		}
		s.mockPublish.EXPECT().PublishNewsletter(gomock.Any(), expected, gomock.Any()).
			DoAndReturn(renderWith(commands.PublishOutcome{IssueID: uuid.New(), DeliveryTasks: 2})).Times(1)

		rec := httptest.PerformFormRequest(s.T(), s.router, publishURL, validForm(), "")

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal(api.DashboardPath, rec.Header().Get("Location"))
		s.Empty(rec.Body.Bytes())

		flash := httptest.ExtractCookie(rec, cookie.FlashCookieName)
		s.Require().NotNil(flash)
		s.Equal(api.AcceptedFlashMessage, cookie.ReadFlash(flash))
	})
}

func (s *NewsletterHandlerTestSuite) TestPublishNewsletter_Replay() {
	saved, err := idempotency.NewSavedResponse(http.StatusSeeOther, []idempotency.Header{
		{Name: "Location", Value: "/admin/dashboard"},
		{Name: "Set-Cookie", Value: "_flash=accepted; Path=/"},
	}, nil)
	s.Require().NoError(err)

	s.mockPublish.EXPECT().PublishNewsletter(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&commands.PublishResult{Response: saved, Replayed: true}, nil).Times(1)

	// 保存済みレスポンスは受信形式に関係なくそのまま返す
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, publishURL, validJSONBody(), "")

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/admin/dashboard", rec.Header().Get("Location"))
	s.Equal([]string{"_flash=accepted; Path=/"}, rec.Header().Values("Set-Cookie"))
	s.Empty(rec.Body.Bytes())
}

func (s *NewsletterHandlerTestSuite) TestPublishNewsletter_Errors() {
	testCases := []struct {
		name         string
		err          error
		expectCode   int
		expectMsg    string
		expectRetry  string
		expectDetail []any
	}{
		{
			name:         "validation → 400 with hints",
			err:          errs.WithHint(errs.Mark(errs.New("empty title"), errs.ErrValidation), "title must not be empty"),
			expectCode:   http.StatusBadRequest,
			expectMsg:    "Invalid publish request",
			expectDetail: []any{"title must not be empty"},
		},
		{
			name:        "conflict → 409 with Retry-After",
			err:         errs.Mark(errs.New("lock timeout"), errs.ErrConflict),
			expectCode:  http.StatusConflict,
			expectMsg:   "still being processed",
			expectRetry: "1",
		},
		{
			name:       "storage → 500",
			err:        errs.Mark(errs.New("connection reset"), errs.ErrStorage),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
		{
			name:       "unknown → 500",
			err:        errs.New("boom"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockPublish.EXPECT().PublishNewsletter(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformFormRequest(s.T(), s.router, publishURL, validForm(), "")

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			s.Equal(tc.expectRetry, rec.Header().Get("Retry-After"))

			if tc.expectDetail != nil {
				var body struct {
					Detail []any `json:"detail"`
				}
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
				s.Equal(tc.expectDetail, body.Detail)
			}
		})
	}
}

func (s *NewsletterHandlerTestSuite) TestPublishNewsletter_Rejected() {
	s.Run("unsupported content type → 415", func() {
		req, err := http.NewRequest(http.MethodPost, publishURL, strings.NewReader("title=T1"))
		s.Require().NoError(err)
		req.Header.Set("Content-Type", "text/plain")

		rec := httptest.Serve(s.router, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnsupportedMediaType, "Unsupported content type")
	})

	s.Run("missing owner → 500", func() {
		req, err := http.NewRequest(http.MethodPost, publishURL, strings.NewReader(validForm().Encode()))
		s.Require().NoError(err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Test-Anonymous", "1")

		rec := httptest.Serve(s.router, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
