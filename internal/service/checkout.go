package service

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"storefront/internal/currency"
	"storefront/internal/i18n"
	"storefront/internal/model"
	"storefront/internal/notify"
	"storefront/internal/orderid"
)

var (
	emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

type CheckoutRequest struct {
	PlanID   string `json:"planId"`
	Currency string `json:"currency"`
	Lang     string `json:"lang"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Note     string `json:"note"`
}

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

type CheckoutResult struct {
	Order       model.Order `json:"order"`
	Message     string      `json:"message"`
	WhatsAppURL string      `json:"whatsappUrl"`
	PaymentLink string      `json:"paymentLink,omitempty"`
}

type CheckoutService struct {
	store         *OrderStore
	forms         *notify.FormSubmitter
	tr            i18n.Translator
	whatsappPhone string
	paymentLink   string
	formTimeout   time.Duration

	inflight sync.WaitGroup
}

func NewCheckoutService(store *OrderStore, forms *notify.FormSubmitter, tr i18n.Translator, whatsappPhone, paymentLink string) *CheckoutService {
	return &CheckoutService{
		store:         store,
		forms:         forms,
		tr:            tr,
		whatsappPhone: whatsappPhone,
		paymentLink:   paymentLink,
		formTimeout:   15 * time.Second,
	}
}

func Validate(req CheckoutRequest) *ValidationError {
	fields := map[string]string{}

	if _, ok := model.FindPlan(req.PlanID); !ok {
		fields["planId"] = "unknown plan"
	}
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		fields["name"] = "required"
	case utf8.RuneCountInString(name) < 2:
		fields["name"] = "name too short"
	}
	switch email := strings.TrimSpace(req.Email); {
	case email == "":
		fields["email"] = "required"
	case !emailRe.MatchString(email):
		fields["email"] = "invalid email"
	}
	switch phone := strings.TrimSpace(req.Phone); {
	case phone == "":
		fields["phone"] = "required"
	case !phoneRe.MatchString(phone):
		fields["phone"] = "invalid phone number"
	}
	switch country := normalizeCountry(req.Country); {
	case country == "":
		fields["country"] = "required"
	case !model.IsKnownCountry(country):
		fields["country"] = "unsupported country"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func normalizeCountry(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

// Checkout records the order, mirrors it to the remote form in the
// background and returns the WhatsApp hand-off.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest, userAgent string) (CheckoutResult, error) {
	if verr := Validate(req); verr != nil {
		return CheckoutResult{}, verr
	}

	plan, _ := model.FindPlan(req.PlanID)
	cur := strings.ToUpper(strings.TrimSpace(req.Currency))
	if !currency.IsSupported(cur) {
		cur = currency.Default
	}
	locale := i18n.ResolveLocale(req.Lang)

	draft := model.OrderDraft{
		OrderID:   orderid.Generate(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Country:   normalizeCountry(req.Country),
		PlanID:    plan.ID,
		PlanTitle: plan.Title,
		Price:     currency.Convert(plan.Price, currency.Default, cur),
		Currency:  cur,
		Duration:  plan.DurationDays,
		Note:      strings.TrimSpace(req.Note),
		Status:    model.StatusPending,
	}

	order := s.store.Save(ctx, draft)
	s.mirror(draft)

	msg := notify.ComposeMessage(draft, s.tr, locale)
	return CheckoutResult{
		Order:       order,
		Message:     msg,
		WhatsAppURL: notify.ChatLink(s.whatsappPhone, msg, notify.IsMobile(userAgent)),
		PaymentLink: s.paymentLink,
	}, nil
}

func (s *CheckoutService) mirror(draft model.OrderDraft) {
	if !s.forms.Enabled() {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.formTimeout)
		defer cancel()
		s.forms.Submit(ctx, draft)
	}()
}

// Wait blocks until background form submissions have finished.
func (s *CheckoutService) Wait() {
	s.inflight.Wait()
}
