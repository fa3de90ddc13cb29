package api

import (
	"encoding/json"
	"net/http"

	"newsletter-delivery/internal/domain/idempotency"
	reqdto "newsletter-delivery/internal/handler/dto/request"
	resdto "newsletter-delivery/internal/handler/dto/response"
	"newsletter-delivery/internal/handler/httperr"
	"newsletter-delivery/internal/handler/middleware"
	"newsletter-delivery/internal/pkg/config"
	"newsletter-delivery/internal/pkg/cookie"
	"newsletter-delivery/internal/pkg/errs"
	"newsletter-delivery/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	DashboardPath        = "/admin/dashboard"
	AcceptedFlashMessage = "The newsletter issue has been accepted - emails will go out shortly."

	conflictRetryAfter = "1"
)

type NewsletterHandler struct {
	publishCommands commands.PublishNewsletterCommands
	cookieCfg       config.CookieConfig
}

func NewNewsletterHandler(publishCommands commands.PublishNewsletterCommands, cfg config.Config) *NewsletterHandler {
	return &NewsletterHandler{
		publishCommands: publishCommands,
		cookieCfg:       cfg.Cookie,
	}
}

// @Summary Publish newsletter issue
// @Description Accepts a newsletter issue and queues one delivery per confirmed subscriber.
// @Description Retrying with the same idempotency key replays the first response verbatim.
// @Tags newsletters
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Used when the body carries no idempotency_key"
// @Param request body reqdto.PublishNewsletterRequest false "JSON submission"
// @Param title formData string false "Issue title"
// @Param html_content formData string false "HTML body"
// @Param text_content formData string false "Plain text body"
// @Param idempotency_key formData string false "Idempotency key"
// @Success 200 {object} resdto.PublishAcceptedResponse
// @Success 303 "Redirect to the dashboard with an accepted flash"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 415 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/newsletters [post]
func (h *NewsletterHandler) PublishNewsletter(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("owner missing from context"), "Internal server error", nil)
		return
	}

	submission, render, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	params := submission.ToParams(ownerID, c.GetHeader(IdempotencyKeyHeader))
	result, err := h.publishCommands.PublishNewsletter(c.Request.Context(), params, render)
	if err != nil {
		abortWithPublishError(c, err)
		return
	}

	writeSavedResponse(c, result.Response)
}

// bindSubmission normalizes the body into one shape and picks the response the caller expects.
func (h *NewsletterHandler) bindSubmission(c *gin.Context) (reqdto.PublishSubmission, commands.ResponseRenderer, bool) {
	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		var form reqdto.PublishNewsletterForm
		if err := c.ShouldBindWith(&form, binding.Form); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request format", nil)
			return nil, nil, false
		}
		return form, h.renderRedirect, true
	case binding.MIMEJSON:
		var req reqdto.PublishNewsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request format", nil)
			return nil, nil, false
		}
		return req, renderJSON, true
	default:
		httperr.AbortWithError(c, http.StatusUnsupportedMediaType,
			errs.Mark(errs.New("unsupported content type"), errs.ErrValidation),
			"Unsupported content type", gin.H{"accepted": []string{binding.MIMEJSON, binding.MIMEPOSTForm}})
		return nil, nil, false
	}
}

func (h *NewsletterHandler) renderRedirect(_ commands.PublishOutcome) (idempotency.SavedResponse, error) {
	header := http.Header{}
	header.Set("Location", DashboardPath)
	header.Add("Set-Cookie", cookie.Flash(h.cookieCfg, AcceptedFlashMessage).String())
	return idempotency.NewSavedResponse(http.StatusSeeOther, idempotency.HeadersFrom(header), nil)
}

func renderJSON(outcome commands.PublishOutcome) (idempotency.SavedResponse, error) {
	body, err := json.Marshal(resdto.FromPublishOutcome(outcome))
	if err != nil {
		return idempotency.SavedResponse{}, errs.Wrap(err, "marshal publish response")
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json; charset=utf-8")
	return idempotency.NewSavedResponse(http.StatusOK, idempotency.HeadersFrom(header), body)
}

func writeSavedResponse(c *gin.Context, resp idempotency.SavedResponse) {
	for _, h := range resp.Headers {
		c.Writer.Header().Add(h.Name, h.Value)
	}
	c.Status(resp.StatusCode)
	c.Writer.WriteHeaderNow()
	if len(resp.Body) > 0 {
		_, _ = c.Writer.Write(resp.Body)
	}
}

func abortWithPublishError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid publish request", errs.Hints(err))
	case errs.Is(err, errs.ErrConflict):
		c.Header("Retry-After", conflictRetryAfter)
		httperr.AbortWithError(c, http.StatusConflict, err, "A request with this idempotency key is still being processed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
