package sync

import (
	"churchdata/internal/domain/member"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"

	completedMessage = "Sync completed"
)

// Report итог синхронизации пакета. Порядок results совпадает с порядком входных записей.
type Report struct {
	Message    string  `json:"message"`
	Total      int     `json:"total"`
	Successful int     `json:"successful"`
	Failed     int     `json:"failed"`
	Results    Results `json:"results"`
}

type Results struct {
	Success []SuccessItem `json:"success"`
	Failed  []FailedItem  `json:"failed"`
}

// SuccessItem сохраненная запись
type SuccessItem struct {
	ID     string         `json:"id"`
	Action string         `json:"action" enum:"created,updated"`
	Data   *member.Member `json:"data"`
}

// FailedItem запись, которую не удалось сохранить
type FailedItem struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

func newReport(total int) *Report {
	return &Report{
		Message: completedMessage,
		Total:   total,
		Results: Results{
			Success: []SuccessItem{},
			Failed:  []FailedItem{},
		},
	}
}

func (r *Report) succeed(id, action string, m *member.Member) {
	r.Results.Success = append(r.Results.Success, SuccessItem{ID: id, Action: action, Data: m})
	r.Successful++
}

func (r *Report) fail(id string, err error) {
	r.Results.Failed = append(r.Results.Failed, FailedItem{ID: id, Error: err.Error()})
	r.Failed++
}
