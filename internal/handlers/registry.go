package handlers

// AppHandlers - контейнер готовых хэндлеров для регистрации маршрутов
type AppHandlers struct {
	PaymentHandler *PaymentHandler
	ContentHandler *ContentHandler
	JobHandler     *JobHandler
}
