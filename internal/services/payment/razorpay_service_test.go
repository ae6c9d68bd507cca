package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestVerifySignature_ValidSignature - подпись, выданная тем же секретом, проходит
func TestVerifySignature_ValidSignature(t *testing.T) {
	t.Parallel()

	svc := NewRazorpayService("rzp_test_key", "super_secret")

	sig := svc.SignPayload("order_ABC123", "pay_XYZ789")
	assert.Len(t, sig, 64, "hex-подпись SHA256 всегда 64 символа")

	assert.True(t, svc.VerifySignature("order_ABC123", "pay_XYZ789", sig))
}

// TestVerifySignature_Tampered - любое искажение входа ломает подпись
func TestVerifySignature_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewRazorpayService("rzp_test_key", "super_secret")
	sig := svc.SignPayload("order_ABC123", "pay_XYZ789")

	// Подмена orderId
	assert.False(t, svc.VerifySignature("order_ABC124", "pay_XYZ789", sig))
	// Подмена paymentId
	assert.False(t, svc.VerifySignature("order_ABC123", "pay_XYZ780", sig))
	// Искажение самой подписи
	assert.False(t, svc.VerifySignature("order_ABC123", "pay_XYZ789", sig[:63]+"0"))
	// Пустая подпись
	assert.False(t, svc.VerifySignature("order_ABC123", "pay_XYZ789", ""))
}

// TestVerifySignature_DifferentSecret - подпись чужим секретом не проходит
func TestVerifySignature_DifferentSecret(t *testing.T) {
	t.Parallel()

	svc := NewRazorpayService("rzp_test_key", "super_secret")
	other := NewRazorpayService("rzp_test_key", "another_secret")

	sig := other.SignPayload("order_ABC123", "pay_XYZ789")
	assert.False(t, svc.VerifySignature("order_ABC123", "pay_XYZ789", sig))
}

// TestSignPayload_Deterministic - один вход, одна подпись
func TestSignPayload_Deterministic(t *testing.T) {
	t.Parallel()

	svc := NewRazorpayService("rzp_test_key", "super_secret")
	assert.Equal(t,
		svc.SignPayload("order_A", "pay_B"),
		svc.SignPayload("order_A", "pay_B"),
	)
	assert.NotEqual(t,
		svc.SignPayload("order_A", "pay_B"),
		svc.SignPayload("order_B", "pay_A"),
	)
}

// TestReceiptID_Format - receipt строится из хвоста id и метки времени
func TestReceiptID_Format(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	receipt := ReceiptID("a1b2c3d4-e5f6-7890-abcd-112233445566", now)

	assert.True(t, strings.HasPrefix(receipt, "rcpt_445566_"), "receipt: %s", receipt)
	assert.LessOrEqual(t, len(receipt), 40)
}

// TestReceiptID_ShortID - короткий id не обрезается
func TestReceiptID_ShortID(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1748779200000)
	receipt := ReceiptID("abc", now)

	assert.Equal(t, "rcpt_abc_1748779200000", receipt)
	assert.LessOrEqual(t, len(receipt), 40)
}

// TestReceiptID_NeverExceedsProviderLimit - лимит провайдера соблюдается всегда
func TestReceiptID_NeverExceedsProviderLimit(t *testing.T) {
	t.Parallel()

	longID := strings.Repeat("x", 200)
	receipt := ReceiptID(longID, time.Now())
	assert.LessOrEqual(t, len(receipt), 40)
}

// TestReceiptID_DistinctPerMillisecond - разные метки времени дают разные receipt
func TestReceiptID_DistinctPerMillisecond(t *testing.T) {
	t.Parallel()

	base := time.UnixMilli(1748779200000)
	r1 := ReceiptID("intern-1", base)
	r2 := ReceiptID("intern-1", base.Add(time.Millisecond))
	assert.NotEqual(t, r1, r2)
}
