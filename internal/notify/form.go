package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"storefront/internal/model"
)

// FormFields maps order attributes to the remote form's input names.
type FormFields struct {
	OrderID  string
	Name     string
	Email    string
	Phone    string
	Country  string
	Plan     string
	Currency string
	Price    string
	Duration string
	Note     string
}

// DefaultFormFields are the entry ids of the sales team's order form.
var DefaultFormFields = FormFields{
	OrderID:  "entry.1678666027",
	Name:     "entry.177162094",
	Email:    "entry.1838168850",
	Phone:    "entry.345722898",
	Country:  "entry.1335973341",
	Plan:     "entry.242041475",
	Currency: "entry.1085468524",
	Price:    "entry.155608386",
	Duration: "entry.141265833",
	Note:     "entry.1159579805",
}

// FormSubmitter mirrors orders into a remote form. Failures are logged,
// never returned.
type FormSubmitter struct {
	actionURL string
	fields    FormFields
	client    *http.Client
	cb        *gobreaker.CircuitBreaker
	settle    time.Duration
}

func NewFormSubmitter(actionURL string, fields FormFields) *FormSubmitter {
	st := gobreaker.Settings{
		Name:        "RemoteForm",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &FormSubmitter{
		actionURL: actionURL,
		fields:    fields,
		client:    &http.Client{Timeout: 10 * time.Second},
		cb:        gobreaker.NewCircuitBreaker(st),
		settle:    600 * time.Millisecond,
	}
}

func (s *FormSubmitter) Enabled() bool {
	return s != nil && s.actionURL != ""
}

// Submit posts the order as multipart form data. If that request cannot be
// sent it falls back to a plain urlencoded form post and then waits a short
// settle delay. Each transport is tried once.
func (s *FormSubmitter) Submit(ctx context.Context, d model.OrderDraft) {
	if !s.Enabled() {
		return
	}

	payload := s.payload(d)

	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.postMultipart(ctx, payload)
	})
	if err == nil {
		return
	}
	slog.Warn("form submission failed, falling back to urlencoded post", "order_id", d.OrderID, "error", err)

	if err := s.postURLEncoded(ctx, payload); err != nil {
		slog.Error("form fallback submission failed", "order_id", d.OrderID, "error", err)
	}

	select {
	case <-time.After(s.settle):
	case <-ctx.Done():
	}
}

func (s *FormSubmitter) payload(d model.OrderDraft) url.Values {
	v := url.Values{}
	v.Set(s.fields.OrderID, d.OrderID)
	v.Set(s.fields.Name, d.Name)
	v.Set(s.fields.Email, d.Email)
	v.Set(s.fields.Phone, d.Phone)
	v.Set(s.fields.Country, d.Country)
	v.Set(s.fields.Plan, d.PlanTitle)
	v.Set(s.fields.Currency, d.Currency)
	v.Set(s.fields.Price, strconv.FormatFloat(d.Price, 'f', 2, 64))
	v.Set(s.fields.Duration, strconv.Itoa(d.Duration))
	v.Set(s.fields.Note, d.Note)
	v.Set("submit", "Submit")
	return v
}

func (s *FormSubmitter) postMultipart(ctx context.Context, payload url.Values) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, vals := range payload {
		for _, v := range vals {
			if err := mw.WriteField(k, v); err != nil {
				return fmt.Errorf("write field: %w", err)
			}
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	return s.post(ctx, mw.FormDataContentType(), &body)
}

func (s *FormSubmitter) postURLEncoded(ctx context.Context, payload url.Values) error {
	return s.post(ctx, "application/x-www-form-urlencoded", strings.NewReader(payload.Encode()))
}

// post discards the response; the remote form is write-only for us.
func (s *FormSubmitter) post(ctx context.Context, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.actionURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
