package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для ошибок бизнес-логики платёжного домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (оборачивают ошибки нижних слоёв)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Payments (платёжный домен) ---

// ErrOrderCreationFailed - провайдер не смог создать платёжный ордер.
// Локальное состояние при этом не меняется, запрос можно безопасно повторить.
func ErrOrderCreationFailed(err error) *AppError {
	return Wrap(err, CodeOrderCreationFailed, "payment", "Error creating payment order", http.StatusBadGateway)
}

// ErrAccountNotFound - аутентифицированный пользователь не найден в базе.
// Это сбой провижининга, а не пользовательская ошибка.
func ErrAccountNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "payment", "Intern account not found", http.StatusNotFound)
}

// ErrPaymentOrderNotFound - ордер с таким orderId не создавался на сервере.
func ErrPaymentOrderNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "payment", "Payment order not found", http.StatusNotFound)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (частые, статичные ошибки)
// =========================================================================

// ErrInvalidSignature - подпись платежа не прошла проверку HMAC.
// Жёсткий отказ: никакие изменения в леджере не выполняются.
var ErrInvalidSignature = New(
	CodeInvalidSignature,
	"payment",
	"Invalid payment signature",
	http.StatusBadRequest,
)

// ErrOrderOwnershipMismatch - ордер принадлежит другому аккаунту.
var ErrOrderOwnershipMismatch = New(
	CodeForbidden,
	"payment",
	"Payment order belongs to another account",
	http.StatusForbidden,
)

// ErrPaymentBusy - не удалось взять пер-аккаунтную блокировку на верификацию.
// Мутации не было, клиент может повторить запрос.
var ErrPaymentBusy = New(
	CodePaymentConflict,
	"payment",
	"Another payment is being processed for this account, retry shortly",
	http.StatusConflict,
)

// ErrPlanMismatch - параметры покупки не совпадают с каталогом планов.
var ErrPlanMismatch = New(
	CodeValidationFailed,
	"payment",
	"Plan parameters do not match the plan catalog",
	http.StatusBadRequest,
)

// --- Access gate ---

// ErrPlanRequired - у аккаунта нет активного плана для закрытой фичи.
var ErrPlanRequired = New(
	CodeForbidden,
	"access",
	"An active plan is required to access this feature",
	http.StatusForbidden,
)

// ErrFreeQuotaExceeded - исчерпан бесплатный лимит откликов на вакансии.
var ErrFreeQuotaExceeded = New(
	CodeLimitExceeded,
	"access",
	"Free job application limit reached, purchase a plan to continue",
	http.StatusForbidden,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrInvalidCredentials - неверная пара логин/пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен не прошёл проверку или истёк.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
