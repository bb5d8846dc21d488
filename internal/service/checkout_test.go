package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/i18n"
	"storefront/internal/model"
	"storefront/internal/notify"
	"storefront/internal/storage"
)

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		PlanID:   "p12",
		Currency: "gbp",
		Lang:     "fr",
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "+33600000000",
		Country:  "fr",
		Note:     "  ",
	}
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(validRequest()))

	bad := CheckoutRequest{PlanID: "p99", Name: "J", Email: "jane@", Phone: "0600", Country: "US"}
	verr := Validate(bad)
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{
		"planId":  "unknown plan",
		"name":    "name too short",
		"email":   "invalid email",
		"phone":   "invalid phone number",
		"country": "unsupported country",
	}, verr.Fields)
	assert.Equal(t, "invalid fields: country, email, name, phone, planId", verr.Error())

	verr = Validate(CheckoutRequest{PlanID: "p1"})
	require.NotNil(t, verr)
	for _, f := range []string{"name", "email", "phone", "country"} {
		assert.Equal(t, "required", verr.Fields[f], f)
	}
}

func TestCheckout(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
	}))
	defer srv.Close()

	ctx := context.Background()
	store := NewOrderStore(storage.NewMemory())
	svc := NewCheckoutService(store, notify.NewFormSubmitter(srv.URL, notify.DefaultFormFields), i18n.Default, "+33 7 00 00 00 00", "https://pay.example/link")

	res, err := svc.Checkout(ctx, validRequest(), "Mozilla/5.0 (iPhone)")
	require.NoError(t, err)
	svc.Wait()

	o := res.Order
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{4}$`), o.OrderID)
	assert.Equal(t, "GBP", o.Currency)
	assert.InDelta(t, 49.99*0.85, o.Price, 1e-9)
	assert.Equal(t, 365, o.Duration)
	assert.Equal(t, "12 Months", o.PlanTitle)
	assert.Equal(t, "FR", o.Country)
	assert.Equal(t, "", o.Note)
	assert.Equal(t, model.StatusPending, o.Status)

	stored, ok := store.FindByOrderID(ctx, o.OrderID)
	require.True(t, ok)
	assert.Equal(t, o, stored)

	assert.Contains(t, res.Message, o.OrderID)
	assert.Contains(t, res.Message, "1 an")
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/33700000000?text="))
	u, err := url.Parse(res.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, res.Message, u.Query().Get("text"))
	assert.Equal(t, "https://pay.example/link", res.PaymentLink)
	assert.Equal(t, int32(1), posts.Load())
}

func TestCheckout_UnsupportedCurrencyAndDesktop(t *testing.T) {
	svc := NewCheckoutService(NewOrderStore(storage.NewMemory()), notify.NewFormSubmitter("", notify.DefaultFormFields), i18n.Default, "+100", "")

	req := validRequest()
	req.Currency = "USD"
	req.PlanID = "p1"
	res, err := svc.Checkout(context.Background(), req, "Mozilla/5.0 (Windows NT 10.0)")
	require.NoError(t, err)
	svc.Wait()

	assert.Equal(t, "EUR", res.Order.Currency)
	assert.Equal(t, 9.99, res.Order.Price)
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://api.whatsapp.com/send?phone=100&text="))
}

func TestCheckout_Invalid(t *testing.T) {
	store := NewOrderStore(storage.NewMemory())
	svc := NewCheckoutService(store, nil, i18n.Default, "+100", "")

	_, err := svc.Checkout(context.Background(), CheckoutRequest{PlanID: "p1"}, "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, store.ListAll(context.Background()))
}
