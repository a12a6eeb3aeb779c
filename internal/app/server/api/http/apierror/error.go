package apierror

import (
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

const (
	InternalMessage = "Internal server error"
	NotFoundMessage = "Route not found"
)

// Error тело ответа об ошибке: {"error": "...", "details": [...]}
type Error struct {
	Status  int      `json:"-"`
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

// New заменяет huma.NewError. Подробности 5xx ошибок клиенту не отдаются.
func New(status int, msg string, errs ...error) huma.StatusError {
	if status >= http.StatusInternalServerError {
		return &Error{Status: status, Message: InternalMessage}
	}

	e := &Error{Status: status, Message: msg}
	for _, err := range errs {
		if err != nil {
			e.Details = append(e.Details, err.Error())
		}
	}
	return e
}

// Install переключает huma на формат ошибок сервиса
func Install() {
	huma.NewError = New
}

// Write пишет ошибку в обход huma: для chi-обработчиков и middleware
func Write(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&Error{Status: status, Message: msg})
}

// NotFound обработчик неизвестных маршрутов
func NotFound(w http.ResponseWriter, _ *http.Request) {
	Write(w, http.StatusNotFound, NotFoundMessage)
}

// MethodNotAllowed обработчик неподдерживаемых методов
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	Write(w, http.StatusMethodNotAllowed, "Method not allowed")
}
