package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	resp "contact_service/internal/lib/api/response"
	sl "contact_service/internal/lib/logger/sl"
	"contact_service/internal/mailer"
	"contact_service/internal/models"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgSubmitted          = "Submitted"
	msgFailedToSubmit     = "Failed to submit"
	msgErrorOccurred      = "An error occurred"
	msgVerificationFailed = "reCAPTCHA verification failed"
	msgDecodeFailed       = "Failed to decode request"
)

type Request struct {
	Name           string `json:"InputName" validate:"required,min=4"`
	Email          string `json:"InputEmail" validate:"email"`
	Subject        string `json:"InputSubject" validate:"required,min=8"`
	Message        string `json:"InputMessage" validate:"required,min=10"`
	RecaptchaToken string `json:"recaptchaToken" validate:"required"`
}

func (r Request) Submission() models.Submission {
	return models.Submission{
		Name:           r.Name,
		Email:          r.Email,
		Subject:        r.Subject,
		Message:        r.Message,
		RecaptchaToken: r.RecaptchaToken,
	}
}

var Messages = resp.Messages{
	"InputName": {
		"required": "Name is required",
		"min":      "Name should contain at least 4 characters",
	},
	"InputEmail": {
		"email": "Enter a valid email address",
	},
	"InputSubject": {
		"required": "Subject is required",
		"min":      "Subject should contain at least 8 characters",
	},
	"InputMessage": {
		"required": "Message is required",
		"min":      "Message should contain at least 10 characters",
	},
	"recaptchaToken": {
		"required": "reCAPTCHA token is required",
	},
}

// Adapter is the verification and mail side of a submission.
type Adapter interface {
	Verify(ctx context.Context, token string) bool
	SendMail(ctx context.Context, to, subject, body, token string) (bool, error)
}

// NewValidator returns a validator that names fields by their json tag,
// so errors carry the form field names clients sent.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func New(
	log *slog.Logger,
	validate *validator.Validate,
	adapter Adapter,
	ownerEmail string,
	senderName string,
	timeout time.Duration,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.email.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		req, err := decode(r)
		if err != nil {
			log.Error("Failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Errors(resp.FieldError{Field: "body", Message: msgDecodeFailed}))

			return
		}

		log.Info("Request body decoded")

		if err := validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if !errors.As(err, &validateErr) {
				log.Error("Failed to validate request", sl.Err(err))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, resp.Error(msgErrorOccurred))

				return
			}

			log.Info("Invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError(validateErr, Messages))

			return
		}

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		sub := req.Submission()

		if !adapter.Verify(ctx, sub.RecaptchaToken) {
			log.Info("reCAPTCHA verification failed")

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(msgVerificationFailed))

			return
		}

		notification := mailer.Notification(ownerEmail, sub)
		if _, err := adapter.SendMail(ctx, notification.To, notification.Subject, notification.Body, sub.RecaptchaToken); err != nil {
			log.Error("Failed to send notification email", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(msgErrorOccurred))

			return
		}

		log.Info("Notification sent", slog.String("from", sub.Email))

		confirmation := mailer.Confirmation(sub, senderName)
		ok, err := adapter.SendMail(ctx, confirmation.To, confirmation.Subject, confirmation.Body, sub.RecaptchaToken)
		if err != nil || !ok {
			if err != nil {
				log.Error("Failed to send confirmation email", sl.Err(err))
			} else {
				log.Error("Confirmation email was not accepted")
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error(msgFailedToSubmit))

			return
		}

		log.Info("Submission handled")

		render.JSON(w, r, resp.OK(msgSubmitted))
	}
}

// decode reads a JSON or urlencoded/multipart form body.
func decode(r *http.Request) (Request, error) {
	var req Request

	switch {
	case render.GetRequestContentType(r) == render.ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req = formRequest(r.PostForm.Get)
	case strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"):
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return req, err
		}
		req = formRequest(r.PostFormValue)
	default:
		var body map[string]any
		if err := render.DecodeJSON(r.Body, &body); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
		req = formRequest(func(key string) string {
			return scalar(body[key])
		})
	}

	return req, nil
}

// scalar renders a JSON scalar the way it was written. Objects, arrays and
// null read as empty so the field fails validation.
func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func formRequest(get func(string) string) Request {
	return Request{
		Name:           get("InputName"),
		Email:          get("InputEmail"),
		Subject:        get("InputSubject"),
		Message:        get("InputMessage"),
		RecaptchaToken: get("recaptchaToken"),
	}
}
