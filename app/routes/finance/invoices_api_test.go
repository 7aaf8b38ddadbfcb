package finance

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
)

func TestBillingErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", billing.ErrNotFound, fiber.StatusNotFound},
		{"duplicate invoice", billing.ErrDuplicateInvoice, fiber.StatusConflict},
		{"no fee structure", billing.ErrNoFeeStructure, fiber.StatusUnprocessableEntity},
		{"invalid amount", billing.ErrInvalidAmount, fiber.StatusBadRequest},
		{"exceeds amount due", billing.ErrExceedsAmountDue, fiber.StatusBadRequest},
		{"unknown", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, billingError(tt.err, "fallback").Code)
		})
	}
}

func TestGetInvoiceAPINotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT i.id, i.student_id`).
		WithArgs("inv-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	app := fiber.New()
	app.Get("/api/invoices/:id", func(c *fiber.Ctx) error {
		return GetInvoiceAPI(c, db)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/invoices/inv-missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGenerateInvoiceAPIRejectsBadRequest(t *testing.T) {
	app := fiber.New()
	app.Post("/api/invoices/generate", func(c *fiber.Ctx) error {
		return GenerateInvoiceAPI(c, nil)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing year", `{"student_id":"6a6f9d63-6a3c-4a08-9d6c-0f1c1a1b2c3d"}`},
		{"not a uuid", `{"student_id":"abc","academic_year_id":"def"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/invoices/generate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRecordPaymentAPIRejectsNonNumericAmount(t *testing.T) {
	app := fiber.New()
	app.Post("/api/invoices/:id/payments", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, nil)
	})

	req := httptest.NewRequest("POST", "/api/invoices/inv-1/payments",
		strings.NewReader(`{"amount_paid":"abc","payment_method":"cash"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
