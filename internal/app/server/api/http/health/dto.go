package health

import "time"

type indexOutput struct {
	Body IndexResponse
}

// IndexResponse описание сервиса для корневого маршрута
type IndexResponse struct {
	Message   string            `json:"message" example:"Church Data Collection API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status    string    `json:"status" example:"ok" doc:"Health status of the service"`
	Timestamp time.Time `json:"timestamp" doc:"Server time"`
}
