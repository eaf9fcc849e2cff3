package api

// InfoResponse представляет описание API для GET /api/info
type InfoResponse struct {
	APIName             string            `json:"api_name"`
	Version             string            `json:"version"`
	Endpoints           map[string]string `json:"endpoints"`
	SupportedOperations []string          `json:"supported_operations"`
	Timestamp           string            `json:"timestamp"`
}
