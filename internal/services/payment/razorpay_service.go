package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway - платёжный провайдер, видимый сервисному слою.
// Интерфейс позволяет подменять Razorpay фейком в тестах.
type Gateway interface {
	CreateOrder(ctx context.Context, req *OrderRequest) (*ProviderOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	Key() string
}

// OrderRequest - параметры создания ордера у провайдера
type OrderRequest struct {
	AmountPaise int64             // сумма в минорных единицах
	Currency    string            // "INR"
	Receipt     string            // <= 40 символов
	Notes       map[string]string // метаданные покупки
}

// ProviderOrder - ответ провайдера на создание ордера
type ProviderOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// RazorpayService - клиент Razorpay Orders API.
// keySecret - серверный секрет: используется для basic auth и HMAC,
// никогда не логируется и не попадает в ответы клиенту.
type RazorpayService struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   "https://api.razorpay.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Key возвращает публичный ключ для чекаут-виджета на клиенте
func (r *RazorpayService) Key() string {
	return r.keyID
}

// CreateOrder создает ордер на стороне провайдера.
// Локальное состояние не меняется; при ошибке запрос безопасно повторить.
func (r *RazorpayService) CreateOrder(ctx context.Context, req *OrderRequest) (*ProviderOrder, error) {
	payload := map[string]interface{}{
		"amount":   req.AmountPaise,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    req.Notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(r.keyID, r.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay orders api returned %d: %s", resp.StatusCode, respBody)
	}

	var order ProviderOrder
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// SignPayload формирует HMAC-SHA256 подпись над "orderId|paymentId".
// Тот же алгоритм использует провайдер на своей стороне.
func (r *RazorpayService) SignPayload(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(r.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature сверяет клиентскую подпись с пересчитанной.
// Сравнение через hmac.Equal, чтобы не утекать позицию расхождения по времени.
func (r *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	expected := r.SignPayload(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// receiptMaxLen - лимит провайдера на длину receipt
const receiptMaxLen = 40

// ReceiptID детерминированно выводит receipt из хвоста id аккаунта и
// миллисекундной метки времени: две покупки одного аккаунта в одну
// миллисекунду не поддерживаются, что приемлемо для ручного чекаута.
func ReceiptID(internID string, now time.Time) string {
	short := internID
	if len(short) > 6 {
		short = short[len(short)-6:]
	}
	receipt := fmt.Sprintf("rcpt_%s_%d", short, now.UnixMilli())
	if len(receipt) > receiptMaxLen {
		receipt = receipt[:receiptMaxLen]
	}
	return receipt
}
