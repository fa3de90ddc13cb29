//go:build e2e

package newsletter_test

import (
	"context"
	"net/http"
	stdhttptest "net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"newsletter-delivery/internal/domain/user"
	"newsletter-delivery/internal/handler/api"
	resdto "newsletter-delivery/internal/handler/dto/response"
	"newsletter-delivery/internal/pkg/cookie"
	"newsletter-delivery/internal/usecase/commands"
	"newsletter-delivery/tests/common/dbtest"
	"newsletter-delivery/tests/common/httptest"
	"newsletter-delivery/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const publishURL = "/admin/newsletters"

type NewsletterSuite struct {
	e2e.SharedSuite
}

func TestNewsletterSuite(t *testing.T) {
	suite.Run(t, new(NewsletterSuite))
}

func publishForm(key, title string) url.Values {
	return url.Values{
		"title":           {title},
		"html_content":    {"<p>Newsletter body as HTML</p>"},
		"text_content":    {"Newsletter body as plain text"},
		"idempotency_key": {key},
	}
}

func publishJSON(key, title string) map[string]any {
	return map[string]any{
		"title": title,
		"content": map[string]any{
			"html": "<p>Newsletter body as HTML</p>",
			"text": "Newsletter body as plain text",
		},
		"idempotency_key": key,
	}
}

type snapshot struct {
	Code   int
	Header http.Header
	Body   string
}

func snapshotOf(rec *stdhttptest.ResponseRecorder) snapshot {
	return snapshot{Code: rec.Code, Header: rec.Header().Clone(), Body: rec.Body.String()}
}

// drain runs the worker step until nothing is due.
func (s *NewsletterSuite) drain(ctx context.Context) []commands.ExecutionOutcome {
	var outcomes []commands.ExecutionOutcome
	for range 100 {
		outcome, err := s.Delivery.TryExecuteTask(ctx)
		s.Require().NoError(err)
		if outcome == commands.EmptyQueue {
			return outcomes
		}
		outcomes = append(outcomes, outcome)
	}
	s.FailNow("delivery queue did not drain")
	return nil
}

func (s *NewsletterSuite) pendingTasks() int {
	var n int
	if err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM issue_delivery_queue").Scan(&n); err != nil {
		return -1
	}
	return n
}

// =============================================================================
// Publish
// =============================================================================

func (s *NewsletterSuite) TestPublish_FormSubmissionIsReplayed() {
	t := s.T()
	emails := dbtest.CreateConfirmedSubscribers(t, s.DB, 3)
	dbtest.CreateSubscriber(t, s.DB, "pending@example.com", dbtest.StatusPendingConfirmation)
	_, token := s.JWT.NewOperator(t)

	first := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("abc123", "T1"), token)
	s.Require().Equal(http.StatusSeeOther, first.Code, first.Body.String())
	s.Equal(api.DashboardPath, first.Header().Get("Location"))
	flash := httptest.ExtractCookie(first, cookie.FlashCookieName)
	s.Require().NotNil(flash)
	s.Contains(cookie.ReadFlash(flash), "accepted")

	second := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("abc123", "T1"), token)
	if diff := cmp.Diff(snapshotOf(first), snapshotOf(second)); diff != "" {
		t.Errorf("replayed response differs (-first +second):\n%s", diff)
	}

	s.Equal(1, dbtest.CountIssues(t, s.DB))
	s.Equal(1, dbtest.CountIdempotencyRecords(t, s.DB))
	s.Equal(len(emails), dbtest.CountDeliveryTasks(t, s.DB))
}

func (s *NewsletterSuite) TestPublish_JSONSubmission() {
	t := s.T()
	emails := dbtest.CreateConfirmedSubscribers(t, s.DB, 2)
	_, token := s.JWT.NewOperator(t)

	first := httptest.PerformRequest(t, s.Router, http.MethodPost, publishURL, publishJSON("json-1", "JSON issue"), token)

	var body resdto.PublishAcceptedResponse
	httptest.AssertSuccessResponse(t, first, http.StatusOK, &body)
	s.Equal("accepted", body.Status)
	s.Equal(int64(len(emails)), body.DeliveryTasks)
	s.Equal(emails, dbtest.DeliveryRecipients(t, s.DB, body.IssueID))

	for range 3 {
		again := httptest.PerformRequest(t, s.Router, http.MethodPost, publishURL, publishJSON("json-1", "JSON issue"), token)
		s.Equal(snapshotOf(first), snapshotOf(again))
	}
	s.Equal(1, dbtest.CountIssues(t, s.DB))
	s.Equal(len(emails), dbtest.CountDeliveryTasks(t, s.DB))
}

func (s *NewsletterSuite) TestPublish_KeysAreScopedPerOwner() {
	t := s.T()
	emails := dbtest.CreateConfirmedSubscribers(t, s.DB, 2)
	_, tokenA := s.JWT.NewOperator(t)
	_, tokenB := s.JWT.NewOperator(t)

	recA := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("shared-key", "A"), tokenA)
	recB := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("shared-key", "B"), tokenB)

	s.Equal(http.StatusSeeOther, recA.Code)
	s.Equal(http.StatusSeeOther, recB.Code)
	s.Equal(2, dbtest.CountIssues(t, s.DB))
	s.Equal(2, dbtest.CountIdempotencyRecords(t, s.DB))
	s.Equal(2*len(emails), dbtest.CountDeliveryTasks(t, s.DB))
}

func (s *NewsletterSuite) TestPublish_ValidationLeavesNoRecord() {
	dbtest.CreateConfirmedSubscribers(s.T(), s.DB, 1)

	cases := []struct {
		name string
		form url.Values
	}{
		{name: "タイトルなし", form: publishForm("key-1", "")},
		{name: "キーなし", form: publishForm("", "T1")},
		{name: "キーに空白", form: publishForm("has space", "T1")},
		{name: "キーが長すぎる", form: publishForm(strings.Repeat("k", 51), "T1")},
		{name: "本文なし", form: url.Values{"title": {"T1"}, "idempotency_key": {"key-2"}}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			t := s.T()
			_, token := s.JWT.NewOperator(t)

			rec := httptest.PerformFormRequest(t, s.Router, publishURL, tc.form, token)
			httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "")

			s.Equal(0, dbtest.CountIdempotencyRecords(t, s.DB))
			s.Equal(0, dbtest.CountIssues(t, s.DB))
		})
	}
}

func (s *NewsletterSuite) TestPublish_ConcurrentDuplicatesGetOneResponse() {
	t := s.T()
	emails := dbtest.CreateConfirmedSubscribers(t, s.DB, 5)
	_, token := s.JWT.NewOperator(t)

	const callers = 5
	results := make([]snapshot, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			rec := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("dup-key", "T1"), token)
			results[i] = snapshotOf(rec)
		}()
	}
	close(start)
	wg.Wait()

	s.Require().Equal(http.StatusSeeOther, results[0].Code, results[0].Body)
	for i := 1; i < callers; i++ {
		if diff := cmp.Diff(results[0], results[i]); diff != "" {
			t.Errorf("caller %d saw a different response (-first +other):\n%s", i, diff)
		}
	}
	s.Equal(1, dbtest.CountIssues(t, s.DB))
	s.Equal(len(emails), dbtest.CountDeliveryTasks(t, s.DB))
}

func (s *NewsletterSuite) TestPublish_InFlightClaimConflictsThenRollsBack() {
	t := s.T()
	dbtest.CreateConfirmedSubscribers(t, s.DB, 2)
	ownerID, token := s.JWT.NewOperator(t)
	ctx := context.Background()

	// 別インスタンスが処理中のクレームを再現する
	peer, err := s.DB.Begin(ctx)
	s.Require().NoError(err)
	_, err = peer.Exec(ctx, "INSERT INTO idempotency (user_id, idempotency_key) VALUES ($1, $2)", ownerID, "in-flight")
	s.Require().NoError(err)

	started := time.Now()
	rec := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("in-flight", "T1"), token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")
	s.Equal("1", rec.Header().Get("Retry-After"))
	s.GreaterOrEqual(time.Since(started), s.Config.Idempotency.LockTimeout/2)

	s.Require().NoError(peer.Rollback(ctx))

	// the abandoned claim is gone, so the retry is a fresh first attempt
	retry := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("in-flight", "T1"), token)
	s.Equal(http.StatusSeeOther, retry.Code, retry.Body.String())
	s.Equal(1, dbtest.CountIssues(t, s.DB))
	s.Equal(2, dbtest.CountDeliveryTasks(t, s.DB))
}

func (s *NewsletterSuite) TestPublish_RequiresOperator() {
	t := s.T()

	rec := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("k", "T1"), "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	viewer := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)
	rec = httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("k", "T1"), viewer)
	s.Equal(http.StatusForbidden, rec.Code)

	s.Equal(0, dbtest.CountIdempotencyRecords(t, s.DB))
}

// =============================================================================
// Delivery
// =============================================================================

func (s *NewsletterSuite) TestDelivery_DrainsQueueOncePerSubscriber() {
	t := s.T()
	ctx := context.Background()
	emails := dbtest.CreateConfirmedSubscribers(t, s.DB, 3)
	_, token := s.JWT.NewOperator(t)

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, publishURL, publishJSON("deliver-1", "Weekly digest"), token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	outcomes := s.drain(ctx)
	s.Equal([]commands.ExecutionOutcome{commands.TaskCompleted, commands.TaskCompleted, commands.TaskCompleted}, outcomes)
	s.Equal(0, dbtest.CountDeliveryTasks(t, s.DB))

	sent := s.EmailAPI.Sent()
	s.Require().Len(sent, len(emails))
	recipients := make([]string, 0, len(sent))
	for _, m := range sent {
		recipients = append(recipients, m.To)
		s.Equal("Weekly digest", m.Subject)
		s.Equal(s.Config.Email.Sender, m.From)
		s.Equal("<p>Newsletter body as HTML</p>", m.HtmlBody)
		s.Equal("Newsletter body as plain text", m.TextBody)
	}
	s.ElementsMatch(emails, recipients)

	// 再送しても再キューされない
	again := httptest.PerformRequest(t, s.Router, http.MethodPost, publishURL, publishJSON("deliver-1", "Weekly digest"), token)
	s.Equal(snapshotOf(rec), snapshotOf(again))
	s.Equal(0, dbtest.CountDeliveryTasks(t, s.DB))
	s.Empty(s.drain(ctx))
	s.Len(s.EmailAPI.Sent(), len(emails))
}

func (s *NewsletterSuite) TestDelivery_FailuresAreRetriedOrDropped() {
	t := s.T()
	ctx := context.Background()
	dbtest.CreateSubscriber(t, s.DB, "ok@example.com", dbtest.StatusConfirmed)
	dbtest.CreateSubscriber(t, s.DB, "rejected@example.com", dbtest.StatusConfirmed)
	dbtest.CreateSubscriber(t, s.DB, "flaky@example.com", dbtest.StatusConfirmed)
	dbtest.CreateSubscriber(t, s.DB, "not-an-email", dbtest.StatusConfirmed)
	s.EmailAPI.FailFor("rejected@example.com", http.StatusUnprocessableEntity)
	s.EmailAPI.FailFor("flaky@example.com", http.StatusServiceUnavailable)
	_, token := s.JWT.NewOperator(t)

	rec := httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("failures", "T1"), token)
	s.Require().Equal(http.StatusSeeOther, rec.Code, rec.Body.String())
	s.Equal(4, dbtest.CountDeliveryTasks(t, s.DB))

	// retries wait out a short backoff, so keep stepping until the queue is empty
	s.Require().Eventually(func() bool {
		for range 20 {
			outcome, err := s.Delivery.TryExecuteTask(ctx)
			if err != nil || outcome == commands.EmptyQueue {
				break
			}
		}
		return s.pendingTasks() == 0
	}, 10*time.Second, 20*time.Millisecond)

	sent := s.EmailAPI.Sent()
	s.Require().Len(sent, 1)
	s.Equal("ok@example.com", sent[0].To)

	s.Equal(1, s.EmailAPI.Attempts("rejected@example.com"))
	s.Equal(int(s.Config.Delivery.MaxRetries), s.EmailAPI.Attempts("flaky@example.com"))
	s.Equal(0, s.EmailAPI.Attempts("not-an-email"))
}

func (s *NewsletterSuite) TestMetrics_ExposesPublishOutcomes() {
	t := s.T()
	_, token := s.JWT.NewOperator(t)

	httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("metrics-1", "T1"), token)
	httptest.PerformFormRequest(t, s.Router, publishURL, publishForm("metrics-1", "T1"), token)

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `newsletter_publish_requests_total{outcome="accepted"}`)
	s.Contains(rec.Body.String(), `newsletter_publish_requests_total{outcome="replayed"}`)
}
