package api

// CalculateRequest представляет запрос на выполнение математической операции
// Операнды — указатели, чтобы отличать отсутствующее поле от нуля
type CalculateRequest struct {
	Operation string   `json:"operation"` // add, subtract, multiply, divide, power, sqrt
	Operand1  *float64 `json:"operand1"`  // первый операнд, обязателен
	Operand2  *float64 `json:"operand2"`  // второй операнд, обязателен кроме sqrt
	UserID    string   `json:"user_id"`   // опциональный ID пользователя
}

// OperationResponse представляет выполненную операцию в ответе API
// Timestamp сериализуется как ISO-8601 UTC с микросекундной точностью
type OperationResponse struct {
	OperationID string   `json:"operation_id"`
	Operation   string   `json:"operation"`
	Operand1    float64  `json:"operand1"`
	Operand2    *float64 `json:"operand2,omitempty"`
	Result      float64  `json:"result"`
	Timestamp   string   `json:"timestamp"`
	UserID      string   `json:"user_id,omitempty"`
	Status      string   `json:"status"`
}

// HistoryResponse представляет ответ на запрос истории операций
type HistoryResponse struct {
	TotalOperations int                 `json:"total_operations"`
	Operations      []OperationResponse `json:"operations"`
	RetrievedAt     string              `json:"retrieved_at"`
	Status          string              `json:"status"`
}
